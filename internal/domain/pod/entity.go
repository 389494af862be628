package pod

import "time"

// FinancialPod groups people and projects under a leader for cost/profit
// attribution independent of the client/project hierarchy.
type FinancialPod struct {
	ID        string
	Name      string
	LeaderID  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	LeaderName *string
}

// Membership and project mappings are interval-versioned. A nil EndDate
// means the entry is active.
type Membership struct {
	ID        string
	PodID     string
	PersonID  string
	StartDate time.Time
	EndDate   *time.Time

	PersonName *string
}

type ProjectMapping struct {
	ID        string
	PodID     string
	ProjectID string
	StartDate time.Time
	EndDate   *time.Time

	ProjectName *string
}

// ActiveIn reports whether the interval overlaps the month starting at
// firstOfMonth.
func activeIn(start time.Time, end *time.Time, firstOfMonth time.Time) bool {
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	if start.After(lastOfMonth) {
		return false
	}
	return end == nil || !end.Before(firstOfMonth)
}

func (m Membership) ActiveIn(firstOfMonth time.Time) bool {
	return activeIn(m.StartDate, m.EndDate, firstOfMonth)
}

func (m ProjectMapping) ActiveIn(firstOfMonth time.Time) bool {
	return activeIn(m.StartDate, m.EndDate, firstOfMonth)
}

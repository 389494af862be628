package calendar

import "time"

type HolidayType string

const (
	HolidayTypePublic   HolidayType = "public"
	HolidayTypeOptional HolidayType = "optional"
)

// Holiday. Only public holidays reduce standard working hours.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	Type      HolidayType
	CreatedAt time.Time
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Leave is a person's leave record synced from the HR platform or entered
// by hand. Days carries the recorded day count, which may be fractional for
// half-day leave and smaller than the raw date span.
type Leave struct {
	ID        string
	PersonID  string
	StartDate time.Time
	EndDate   time.Time
	Status    LeaveStatus
	Days      float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OverlapDays computes the day overlap between the leave and [firstDay,
// lastDay], clamped to the leave's own recorded day count so half-day or
// partial leave records are not over-counted.
func (l Leave) OverlapDays(firstDay, lastDay time.Time) float64 {
	start := l.StartDate
	if start.Before(firstDay) {
		start = firstDay
	}
	end := l.EndDate
	if end.After(lastDay) {
		end = lastDay
	}
	if end.Before(start) {
		return 0
	}
	days := float64(end.Sub(start)/(24*time.Hour)) + 1
	if days > l.Days {
		return l.Days
	}
	return days
}

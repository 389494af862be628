package person

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classification buckets a person's salary cost for P&L purposes. It is set
// once when the person is created or imported, never inferred from the
// free-text department name.
type Classification string

const (
	ClassificationOperational Classification = "operational"
	ClassificationSupport     Classification = "support"
)

type Person struct {
	ID                string
	FullName          string
	Email             string
	EmployeeCode      string
	Title             string
	Department        string
	Classification    Classification
	Billable          bool
	UtilizationTarget float64 // percentage, e.g. 80
	StartDate         time.Time
	EndDate           *time.Time
	ManagerID         *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EmployedIn reports whether the person's employment window covers any part
// of the month starting at firstOfMonth.
func (p Person) EmployedIn(firstOfMonth time.Time) bool {
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	if p.StartDate.After(lastOfMonth) {
		return false
	}
	return p.EndDate == nil || !p.EndDate.Before(firstOfMonth)
}

// ManagerHistory versions manager assignments over time. A nil EndDate means
// the assignment is current.
type ManagerHistory struct {
	ID        string
	PersonID  string
	ManagerID string
	StartDate time.Time
	EndDate   *time.Time
}

// PersonSalary is the salary cost recorded for a person in a calendar month.
// Unique on (person, month); Month is always the first day of the month.
type PersonSalary struct {
	ID             string
	PersonID       string
	Month          time.Time
	Amount         decimal.Decimal
	IsSupportStaff bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	PersonName   *string
	EmployeeCode *string
}

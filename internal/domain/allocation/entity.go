package allocation

import "time"

// Allocation records a person's time commitment to a project for a calendar
// month. Month is always the first day of the month. Hours are kept as
// float64: timesheet tools export fractional hours and no currency math
// happens here.
type Allocation struct {
	ID               string
	PersonID         string
	ProjectID        string
	Month            time.Time
	HoursBillable    float64
	HoursNonBillable float64
	StartDate        *time.Time
	EndDate          *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	PersonName  *string
	ProjectName *string
}

// TimesheetEntry is a raw imported timesheet row. RowHash is a SHA-256 of
// the normalized row used for duplicate detection across imports.
type TimesheetEntry struct {
	ID        string
	PersonID  string
	ProjectID string
	Date      time.Time
	Hours     float64
	TaskType  *string
	Notes     *string
	RowHash   string
	CreatedAt time.Time
}

// HoursSummary is the per-person monthly sum the utilization engine reads.
type HoursSummary struct {
	PersonID         string
	HoursBillable    float64
	HoursNonBillable float64
}

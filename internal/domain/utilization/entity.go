package utilization

import "time"

// StandardMonthlyHours is the working-hour baseline for a month before
// holidays and leave are subtracted. Policy constant, not derived from the
// actual number of working days in the month.
const StandardMonthlyHours = 160.0

// HoursPerDay converts holiday and leave days to hours.
const HoursPerDay = 8.0

// MonthlyUtilization is a derived row, unique on (person, month). It is
// fully recomputable from allocations, holidays and leave; deleting and
// regenerating it is always safe.
type MonthlyUtilization struct {
	ID                     string
	PersonID               string
	Month                  time.Time
	WorkingHours           float64
	WorkedHours            float64
	BillableHours          float64
	UtilizationPct         float64
	BillableUtilizationPct float64
	LeaveDays              float64
	HolidayDays            int
	CreatedAt              time.Time
	UpdatedAt              time.Time

	// Joined fields
	PersonName *string
}

package utilization

import (
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/utilization"
)

// CalcInput carries everything the monthly calculation needs, already
// fetched. Keeping the math free of I/O makes it testable in isolation.
type CalcInput struct {
	PersonID       string
	Month          time.Time
	Billable       float64
	NonBillable    float64
	PublicHolidays int
	LeaveDays      float64
}

// Calculate derives a person's utilization row for a month.
//
// The available hours start from the 160-hour baseline and shrink by eight
// hours per public holiday and per approved leave day. Percentages are
// against available hours; a month fully consumed by holidays and leave
// yields 0 working hours and 0% utilization rather than a division error.
func Calculate(in CalcInput) utilization.MonthlyUtilization {
	working := utilization.StandardMonthlyHours -
		float64(in.PublicHolidays)*utilization.HoursPerDay -
		in.LeaveDays*utilization.HoursPerDay
	if working < 0 {
		working = 0
	}

	worked := in.Billable + in.NonBillable

	var utilPct, billablePct float64
	if working > 0 {
		utilPct = worked / working * 100
		billablePct = in.Billable / working * 100
	}

	return utilization.MonthlyUtilization{
		PersonID:               in.PersonID,
		Month:                  in.Month,
		WorkingHours:           working,
		WorkedHours:            worked,
		BillableHours:          in.Billable,
		UtilizationPct:         utilPct,
		BillableUtilizationPct: billablePct,
		LeaveDays:              in.LeaveDays,
		HolidayDays:            in.PublicHolidays,
	}
}

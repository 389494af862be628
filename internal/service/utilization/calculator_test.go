package utilization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func monthOf(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func TestCalculateFullMonth(t *testing.T) {
	result := Calculate(CalcInput{
		PersonID: "p1",
		Month:    monthOf(2025, time.September),
		Billable: 120,
	})

	assert.Equal(t, 160.0, result.WorkingHours)
	assert.Equal(t, 120.0, result.WorkedHours)
	assert.Equal(t, 75.0, result.UtilizationPct)
	assert.Equal(t, 75.0, result.BillableUtilizationPct)
}

func TestCalculateHolidaysAndLeaveReduceWorkingHours(t *testing.T) {
	result := Calculate(CalcInput{
		PersonID:       "p1",
		Month:          monthOf(2025, time.October),
		Billable:       100,
		NonBillable:    20,
		PublicHolidays: 2,
		LeaveDays:      3,
	})

	// 160 - 2*8 - 3*8 = 120
	assert.Equal(t, 120.0, result.WorkingHours)
	assert.Equal(t, 120.0, result.WorkedHours)
	assert.Equal(t, 100.0, result.UtilizationPct)
	assert.InDelta(t, 83.33, result.BillableUtilizationPct, 0.01)
	assert.Equal(t, 3.0, result.LeaveDays)
	assert.Equal(t, 2, result.HolidayDays)
}

func TestCalculateZeroWorkingHours(t *testing.T) {
	result := Calculate(CalcInput{
		PersonID:       "p1",
		Month:          monthOf(2025, time.December),
		Billable:       8,
		PublicHolidays: 10,
		LeaveDays:      15,
	})

	assert.Equal(t, 0.0, result.WorkingHours)
	assert.Equal(t, 0.0, result.UtilizationPct)
	assert.Equal(t, 0.0, result.BillableUtilizationPct)
	assert.Equal(t, 8.0, result.WorkedHours)
}

func TestCalculateIsDeterministic(t *testing.T) {
	in := CalcInput{
		PersonID:       "p1",
		Month:          monthOf(2025, time.September),
		Billable:       90.5,
		NonBillable:    10.25,
		PublicHolidays: 1,
		LeaveDays:      0.5,
	}

	first := Calculate(in)
	second := Calculate(in)
	assert.Equal(t, first, second)
}

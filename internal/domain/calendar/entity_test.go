package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapDaysFullyInside(t *testing.T) {
	l := Leave{
		StartDate: day(2025, time.September, 10),
		EndDate:   day(2025, time.September, 12),
		Days:      3,
	}

	got := l.OverlapDays(day(2025, time.September, 1), day(2025, time.September, 30))
	assert.Equal(t, 3.0, got)
}

func TestOverlapDaysSpansMonthBoundary(t *testing.T) {
	l := Leave{
		StartDate: day(2025, time.August, 28),
		EndDate:   day(2025, time.September, 3),
		Days:      7,
	}

	// Only the September part counts.
	got := l.OverlapDays(day(2025, time.September, 1), day(2025, time.September, 30))
	assert.Equal(t, 3.0, got)
}

func TestOverlapDaysClampedToRecordedCount(t *testing.T) {
	// Half-day leave spanning one calendar day.
	l := Leave{
		StartDate: day(2025, time.September, 15),
		EndDate:   day(2025, time.September, 15),
		Days:      0.5,
	}

	got := l.OverlapDays(day(2025, time.September, 1), day(2025, time.September, 30))
	assert.Equal(t, 0.5, got)
}

func TestOverlapDaysOutsideRange(t *testing.T) {
	l := Leave{
		StartDate: day(2025, time.August, 1),
		EndDate:   day(2025, time.August, 5),
		Days:      5,
	}

	got := l.OverlapDays(day(2025, time.September, 1), day(2025, time.September, 30))
	assert.Equal(t, 0.0, got)
}

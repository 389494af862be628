package person

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmployedIn(t *testing.T) {
	sept := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	midSept := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)
	endAug := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)
	oct := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		end   *time.Time
		want  bool
	}{
		{"active, no end date", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil, true},
		{"starts mid-month", midSept, nil, true},
		{"starts next month", oct, nil, false},
		{"ended before month", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), &endAug, false},
		{"ends mid-month", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), &midSept, true},
	}

	for _, c := range cases {
		p := Person{StartDate: c.start, EndDate: c.end}
		assert.Equal(t, c.want, p.EmployedIn(sept), c.name)
	}
}

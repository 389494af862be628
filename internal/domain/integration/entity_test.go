package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNeedsRefresh(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"expired", now.Add(-time.Hour), true},
		{"expiring inside window", now.Add(2 * time.Minute), true},
		{"valid beyond window", now.Add(time.Hour), false},
	}

	for _, c := range cases {
		s := Settings{ExpiresAt: c.expiresAt}
		assert.Equal(t, c.want, s.NeedsRefresh(now), c.name)
	}
}

package calendar

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
	// CountPublicInRange counts type="public" holidays with date in range.
	CountPublicInRange(ctx context.Context, from, to time.Time) (int, error)
	Delete(ctx context.Context, id string) error
}

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	// ListApprovedOverlapping returns approved leaves for the person that
	// overlap [from, to]: start in range, end in range, or spanning it.
	ListApprovedOverlapping(ctx context.Context, personID string, from, to time.Time) ([]Leave, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus) error
	Delete(ctx context.Context, id string) error
}

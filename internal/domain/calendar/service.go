package calendar

import (
	"context"
	"time"
)

type CalendarService interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (Holiday, error)
	ListHolidays(ctx context.Context, from, to time.Time) ([]Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error

	CreateLeave(ctx context.Context, req CreateLeaveRequest) (Leave, error)
	ListLeaves(ctx context.Context, personID string, from, to time.Time) ([]Leave, error)
	SetLeaveStatus(ctx context.Context, id string, status LeaveStatus) error
	DeleteLeave(ctx context.Context, id string) error
}

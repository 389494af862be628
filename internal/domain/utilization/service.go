package utilization

import (
	"context"
	"time"
)

type Service interface {
	// Recalculate rebuilds one person's utilization row for a month from
	// allocations, holidays and approved leave.
	Recalculate(ctx context.Context, personID string, month time.Time) (Response, error)
	// RecalculateMonth runs the calculation for everyone employed in the
	// month. Individual failures are collected, not fatal.
	RecalculateMonth(ctx context.Context, month time.Time) (BatchResult, error)
	// RecalculateLastN reruns the monthly calculation for the current month
	// and the months-1 before it. Each month is processed independently, so
	// one month failing never stops the rest.
	RecalculateLastN(ctx context.Context, months int) ([]BatchResult, error)
	GetByPersonMonth(ctx context.Context, personID string, month time.Time) (Response, error)
	ListByMonth(ctx context.Context, month time.Time) ([]Response, error)
	ListByPerson(ctx context.Context, personID string, months int) ([]Response, error)
}

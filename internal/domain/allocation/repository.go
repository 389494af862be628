package allocation

import (
	"context"
	"time"
)

type AllocationRepository interface {
	Create(ctx context.Context, a Allocation) (Allocation, error)
	GetByID(ctx context.Context, id string) (Allocation, error)
	ListByMonth(ctx context.Context, month time.Time) ([]Allocation, error)
	ListByPersonMonth(ctx context.Context, personID string, month time.Time) ([]Allocation, error)
	// SumHoursForMonth returns billable/non-billable totals per person for
	// the month, already grouped by the database.
	SumHoursForMonth(ctx context.Context, personID string, month time.Time) (HoursSummary, error)
	Update(ctx context.Context, a Allocation) error
	Delete(ctx context.Context, id string) error
}

type TimesheetRepository interface {
	InsertBatch(ctx context.Context, entries []TimesheetEntry) (int64, error)
	// DeleteRange backs the delete-then-insert import strategy, scoped to
	// the imported date range.
	DeleteRange(ctx context.Context, from, to time.Time) (int64, error)
	ListByPersonRange(ctx context.Context, personID string, from, to time.Time) ([]TimesheetEntry, error)
}

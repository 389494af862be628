package utilization

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert is keyed on (person, month); recalculating a month overwrites
	// the previous row.
	Upsert(ctx context.Context, u MonthlyUtilization) (MonthlyUtilization, error)
	GetByPersonMonth(ctx context.Context, personID string, month time.Time) (MonthlyUtilization, error)
	ListByMonth(ctx context.Context, month time.Time) ([]MonthlyUtilization, error)
	ListByPerson(ctx context.Context, personID string, from, to time.Time) ([]MonthlyUtilization, error)
	DeleteByMonth(ctx context.Context, month time.Time) (int64, error)
}

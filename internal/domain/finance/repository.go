package finance

import (
	"context"
	"time"
)

type BillRepository interface {
	Create(ctx context.Context, b Bill) (Bill, error)
	GetByID(ctx context.Context, id string) (Bill, error)
	// GetByIDForUpdate locks the bill row for the duration of the enclosing
	// transaction. Allocation validation reads go through this.
	GetByIDForUpdate(ctx context.Context, id string) (Bill, error)
	GetByExternalID(ctx context.Context, externalID string) (Bill, error)
	ListByBilledForMonth(ctx context.Context, month time.Time) ([]Bill, error)
	List(ctx context.Context, filter BillFilter) ([]Bill, int64, error)
	Update(ctx context.Context, b Bill) error
	UpsertByExternalID(ctx context.Context, b Bill) (Bill, error)
	Delete(ctx context.Context, id string) error
}

type BillFilter struct {
	VendorName *string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]Expense, error)
	Update(ctx context.Context, e Expense) error
	Delete(ctx context.Context, id string) error
}

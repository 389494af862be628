package finance

import (
	"context"
	"time"
)

type FinanceService interface {
	CreateBill(ctx context.Context, req CreateBillRequest) (Bill, error)
	GetBill(ctx context.Context, id string) (Bill, error)
	ListBills(ctx context.Context, filter BillFilter) ([]Bill, int64, error)
	UpdateBill(ctx context.Context, req UpdateBillRequest) (Bill, error)
	DeleteBill(ctx context.Context, id string) error

	CreateExpense(ctx context.Context, req CreateExpenseRequest) (Expense, error)
	ListExpenses(ctx context.Context, from, to time.Time) ([]Expense, error)
	UpdateExpense(ctx context.Context, req UpdateExpenseRequest) (Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

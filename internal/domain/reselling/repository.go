package reselling

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv ResellingInvoice) (ResellingInvoice, error)
	GetByID(ctx context.Context, id string) (ResellingInvoice, error)
	ListByMonth(ctx context.Context, month time.Time) ([]ResellingInvoice, error)
	Update(ctx context.Context, inv ResellingInvoice) error
	// UpdateTotals writes only the derived fields. The recompute path is the
	// single writer of these columns.
	UpdateTotals(ctx context.Context, inv ResellingInvoice) error
	Delete(ctx context.Context, id string) error
}

type AllocationRepository interface {
	Create(ctx context.Context, a BillAllocation) (BillAllocation, error)
	GetByID(ctx context.Context, id string) (BillAllocation, error)
	GetByInvoiceAndBill(ctx context.Context, invoiceID, billID string) (BillAllocation, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]BillAllocation, error)
	// SumPercentageForBill totals allocation_percentage for a bill,
	// optionally excluding one allocation (the update path excludes the row
	// being edited).
	SumPercentageForBill(ctx context.Context, billID string, excludeID *string) (decimal.Decimal, error)
	Update(ctx context.Context, a BillAllocation) error
	Delete(ctx context.Context, id string) error
}

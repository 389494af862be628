package reselling

import (
	"context"
	"time"
)

type Service interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (InvoiceResponse, error)
	ListInvoicesByMonth(ctx context.Context, month time.Time) ([]InvoiceResponse, error)
	UpdateInvoice(ctx context.Context, id string, req CreateInvoiceRequest) (InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id string) error

	// AddAllocation validates against the bill's remaining headroom and
	// recomputes the invoice totals, all in one transaction.
	AddAllocation(ctx context.Context, req AddAllocationRequest) (InvoiceResponse, error)
	UpdateAllocation(ctx context.Context, req UpdateAllocationRequest) (InvoiceResponse, error)
	DeleteAllocation(ctx context.Context, id string) (InvoiceResponse, error)
}

package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a vendor invoice pulled from the accounting platform or entered by
// hand. BilledForMonth is the accounting-period attribution (first day of
// month) and may differ from BillDate: vendor invoices are often booked
// against a different period than their issue date.
type Bill struct {
	ID                   string
	VendorName           string
	BillNumber           string
	BillDate             time.Time
	BilledForMonth       *time.Time
	SubTotal             *decimal.Decimal
	Total                decimal.Decimal
	IncludeInCalculation bool
	ExternalID           *string // id on the accounting platform, when synced
	CreatedAt            time.Time
	UpdatedAt            time.Time

	LineItems []BillLineItem
}

// AllocatableAmount is the base for reselling allocations: sub_total when
// present, otherwise total.
func (b Bill) AllocatableAmount() decimal.Decimal {
	if b.SubTotal != nil {
		return *b.SubTotal
	}
	return b.Total
}

type BillLineItem struct {
	ID          string
	BillID      string
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

type Expense struct {
	ID                   string
	Description          string
	Category             string
	Date                 time.Time
	Amount               decimal.Decimal
	IncludeInCalculation bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

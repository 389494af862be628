package reselling

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResellingInvoice is revenue recognized for reselling a third-party
// product. TotalOEMCost, TotalCost, GrossProfit and ProfitMarginPct are
// derived from the invoice's bill allocations and stored for read
// efficiency; they are only ever written by the recompute path.
type ResellingInvoice struct {
	ID              string
	ClientID        *string
	ProductName     string
	InvoiceNumber   string
	Month           time.Time // first day of the invoiced month
	InvoiceAmount   decimal.Decimal
	ResourceCost    decimal.Decimal
	OtherExpenses   decimal.Decimal
	TotalOEMCost    decimal.Decimal
	TotalCost       decimal.Decimal
	GrossProfit     decimal.Decimal
	ProfitMarginPct decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Allocations []BillAllocation
}

// BillAllocation assigns a percentage slice of a vendor bill's sub-total to
// a reselling invoice. The sum of AllocationPercentage across a bill's
// allocations never exceeds 100.
type BillAllocation struct {
	ID                   string
	ResellingInvoiceID   string
	BillID               string
	ProductID            *string
	AllocationPercentage decimal.Decimal
	AllocatedAmount      decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ComputeAllocatedAmount returns base × pct / 100.
func ComputeAllocatedAmount(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(decimal.NewFromInt(100))
}

// RecomputeTotals rebuilds the invoice's derived fields from its allocation
// amounts. Margin is 0 when the invoice amount is 0.
func (inv *ResellingInvoice) RecomputeTotals(allocated []decimal.Decimal) {
	oem := decimal.Zero
	for _, a := range allocated {
		oem = oem.Add(a)
	}
	inv.TotalOEMCost = oem
	inv.TotalCost = oem.Add(inv.ResourceCost).Add(inv.OtherExpenses)
	inv.GrossProfit = inv.InvoiceAmount.Sub(inv.TotalCost)
	if inv.InvoiceAmount.IsZero() {
		inv.ProfitMarginPct = decimal.Zero
		return
	}
	inv.ProfitMarginPct = inv.GrossProfit.Div(inv.InvoiceAmount).Mul(decimal.NewFromInt(100))
}

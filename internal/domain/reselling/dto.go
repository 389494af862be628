package reselling

import (
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	ClientID      *string         `json:"client_id,omitempty"`
	ProductName   string          `json:"product_name"`
	InvoiceNumber string          `json:"invoice_number"`
	Month         string          `json:"month"` // "2006-01"
	InvoiceAmount decimal.Decimal `json:"invoice_amount"`
	ResourceCost  decimal.Decimal `json:"resource_cost"`
	OtherExpenses decimal.Decimal `json:"other_expenses"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductName) {
		errs = append(errs, validator.ValidationError{Field: "product_name", Message: "is required"})
	}
	if validator.IsEmpty(r.InvoiceNumber) {
		errs = append(errs, validator.ValidationError{Field: "invoice_number", Message: "is required"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}
	if r.InvoiceAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "invoice_amount", Message: "must be non-negative"})
	}
	if r.ResourceCost.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "resource_cost", Message: "must be non-negative"})
	}
	if r.OtherExpenses.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "other_expenses", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddAllocationRequest struct {
	ResellingInvoiceID   string          `json:"reselling_invoice_id"`
	BillID               string          `json:"bill_id"`
	ProductID            *string         `json:"product_id,omitempty"`
	AllocationPercentage decimal.Decimal `json:"allocation_percentage"`
}

func (r *AddAllocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ResellingInvoiceID) {
		errs = append(errs, validator.ValidationError{Field: "reselling_invoice_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidUUID(r.BillID) {
		errs = append(errs, validator.ValidationError{Field: "bill_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidPercentage(r.AllocationPercentage) {
		errs = append(errs, validator.ValidationError{Field: "allocation_percentage", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAllocationRequest struct {
	ID                   string
	AllocationPercentage decimal.Decimal `json:"allocation_percentage"`
}

func (r *UpdateAllocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPercentage(r.AllocationPercentage) {
		errs = append(errs, validator.ValidationError{Field: "allocation_percentage", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InvoiceResponse struct {
	ID              string               `json:"id"`
	ClientID        *string              `json:"client_id,omitempty"`
	ProductName     string               `json:"product_name"`
	InvoiceNumber   string               `json:"invoice_number"`
	Month           string               `json:"month"`
	InvoiceAmount   decimal.Decimal      `json:"invoice_amount"`
	ResourceCost    decimal.Decimal      `json:"resource_cost"`
	OtherExpenses   decimal.Decimal      `json:"other_expenses"`
	TotalOEMCost    decimal.Decimal      `json:"total_oem_cost"`
	TotalCost       decimal.Decimal      `json:"total_cost"`
	GrossProfit     decimal.Decimal      `json:"gross_profit"`
	ProfitMarginPct decimal.Decimal      `json:"profit_margin_pct"`
	Allocations     []AllocationResponse `json:"allocations,omitempty"`
}

type AllocationResponse struct {
	ID                   string          `json:"id"`
	ResellingInvoiceID   string          `json:"reselling_invoice_id"`
	BillID               string          `json:"bill_id"`
	ProductID            *string         `json:"product_id,omitempty"`
	AllocationPercentage decimal.Decimal `json:"allocation_percentage"`
	AllocatedAmount      decimal.Decimal `json:"allocated_amount"`
}

func ToInvoiceResponse(inv ResellingInvoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:              inv.ID,
		ClientID:        inv.ClientID,
		ProductName:     inv.ProductName,
		InvoiceNumber:   inv.InvoiceNumber,
		Month:           inv.Month.Format("2006-01"),
		InvoiceAmount:   inv.InvoiceAmount,
		ResourceCost:    inv.ResourceCost,
		OtherExpenses:   inv.OtherExpenses,
		TotalOEMCost:    inv.TotalOEMCost,
		TotalCost:       inv.TotalCost,
		GrossProfit:     inv.GrossProfit,
		ProfitMarginPct: inv.ProfitMarginPct,
	}
	for _, a := range inv.Allocations {
		resp.Allocations = append(resp.Allocations, AllocationResponse{
			ID:                   a.ID,
			ResellingInvoiceID:   a.ResellingInvoiceID,
			BillID:               a.BillID,
			ProductID:            a.ProductID,
			AllocationPercentage: a.AllocationPercentage,
			AllocatedAmount:      a.AllocatedAmount,
		})
	}
	return resp
}

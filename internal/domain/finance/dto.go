package finance

import (
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateBillRequest struct {
	VendorName           string           `json:"vendor_name"`
	BillNumber           string           `json:"bill_number"`
	BillDate             string           `json:"bill_date"`
	BilledForMonth       *string          `json:"billed_for_month,omitempty"` // "2006-01"
	SubTotal             *decimal.Decimal `json:"sub_total,omitempty"`
	Total                decimal.Decimal  `json:"total"`
	IncludeInCalculation *bool            `json:"include_in_calculation,omitempty"`
	LineItems            []LineItemInput  `json:"line_items,omitempty"`
}

type LineItemInput struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *CreateBillRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.VendorName) {
		errs = append(errs, validator.ValidationError{Field: "vendor_name", Message: "is required"})
	}
	if validator.IsEmpty(r.BillNumber) {
		errs = append(errs, validator.ValidationError{Field: "bill_number", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.BillDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "bill_date", Message: "must be YYYY-MM-DD"})
	}
	if r.BilledForMonth != nil {
		if _, ok := validator.IsValidMonth(*r.BilledForMonth); !ok {
			errs = append(errs, validator.ValidationError{Field: "billed_for_month", Message: "must be YYYY-MM"})
		}
	}
	if r.Total.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total", Message: "must be non-negative"})
	}
	if r.SubTotal != nil && r.SubTotal.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "sub_total", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBillRequest struct {
	ID                   string
	BilledForMonth       *string          `json:"billed_for_month,omitempty"`
	SubTotal             *decimal.Decimal `json:"sub_total,omitempty"`
	Total                *decimal.Decimal `json:"total,omitempty"`
	IncludeInCalculation *bool            `json:"include_in_calculation,omitempty"`
}

type UpdateExpenseRequest struct {
	ID                   string
	Description          *string          `json:"description,omitempty"`
	Category             *string          `json:"category,omitempty"`
	Date                 *string          `json:"date,omitempty"`
	Amount               *decimal.Decimal `json:"amount,omitempty"`
	IncludeInCalculation *bool            `json:"include_in_calculation,omitempty"`
}

type CreateExpenseRequest struct {
	Description          string          `json:"description"`
	Category             string          `json:"category"`
	Date                 string          `json:"date"`
	Amount               decimal.Decimal `json:"amount"`
	IncludeInCalculation *bool           `json:"include_in_calculation,omitempty"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

package project

import (
	"fmt"

	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateProjectRequest struct {
	ClientID  string  `json:"client_id"`
	Name      string  `json:"name"`
	Code      *string `json:"code,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ClientID) {
		errs = append(errs, validator.ValidationError{Field: "client_id", Message: "must be a valid UUID"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	ID       string
	Name     *string `json:"name,omitempty"`
	Code     *string `json:"code,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// CostEntry is one row of a bulk monthly cost update.
type CostEntry struct {
	ProjectID string          `json:"project_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
}

// BulkCostUpdateRequest replaces all project cost entries for a month.
type BulkCostUpdateRequest struct {
	Month   string      `json:"month"` // "2006-01"
	Entries []CostEntry `json:"entries"`
}

func (r *BulkCostUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}
	for i, e := range r.Entries {
		if !validator.IsValidUUID(e.ProjectID) {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("entries[%d].project_id", i), Message: "must be a valid UUID"})
		}
		if e.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("entries[%d].amount", i), Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

package allocation

import (
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
)

type CreateAllocationRequest struct {
	PersonID         string  `json:"person_id"`
	ProjectID        string  `json:"project_id"`
	Month            string  `json:"month"` // "2006-01"
	HoursBillable    float64 `json:"hours_billable"`
	HoursNonBillable float64 `json:"hours_non_billable"`
	StartDate        *string `json:"start_date,omitempty"`
	EndDate          *string `json:"end_date,omitempty"`
}

func (r *CreateAllocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.PersonID) {
		errs = append(errs, validator.ValidationError{Field: "person_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidUUID(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM"})
	}
	if r.HoursBillable < 0 {
		errs = append(errs, validator.ValidationError{Field: "hours_billable", Message: "must be non-negative"})
	}
	if r.HoursNonBillable < 0 {
		errs = append(errs, validator.ValidationError{Field: "hours_non_billable", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAllocationRequest struct {
	ID               string
	HoursBillable    *float64 `json:"hours_billable,omitempty"`
	HoursNonBillable *float64 `json:"hours_non_billable,omitempty"`
}

func (r *UpdateAllocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HoursBillable != nil && *r.HoursBillable < 0 {
		errs = append(errs, validator.ValidationError{Field: "hours_billable", Message: "must be non-negative"})
	}
	if r.HoursNonBillable != nil && *r.HoursNonBillable < 0 {
		errs = append(errs, validator.ValidationError{Field: "hours_non_billable", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

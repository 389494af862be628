package client

import "github.com/dataprecision/margindesk-sub001/internal/pkg/validator"

type CreateClientRequest struct {
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Country      *string `json:"country,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.ContactEmail != nil && !validator.IsValidEmail(*r.ContactEmail) {
		errs = append(errs, validator.ValidationError{Field: "contact_email", Message: "must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateClientRequest struct {
	ID           string
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Country      *string `json:"country,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

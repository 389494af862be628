package person

import (
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePersonRequest struct {
	FullName          string  `json:"full_name"`
	Email             string  `json:"email"`
	EmployeeCode      string  `json:"employee_code"`
	Title             string  `json:"title"`
	Department        string  `json:"department"`
	Classification    string  `json:"classification"`
	Billable          *bool   `json:"billable,omitempty"`
	UtilizationTarget float64 `json:"utilization_target"`
	StartDate         string  `json:"start_date"`
	ManagerID         *string `json:"manager_id,omitempty"`
}

func (r *CreatePersonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Classification != string(ClassificationOperational) && r.Classification != string(ClassificationSupport) {
		errs = append(errs, validator.ValidationError{Field: "classification", Message: "must be 'operational' or 'support'"})
	}
	if r.UtilizationTarget < 0 || r.UtilizationTarget > 100 {
		errs = append(errs, validator.ValidationError{Field: "utilization_target", Message: "must be between 0 and 100"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePersonRequest struct {
	ID                string
	FullName          *string  `json:"full_name,omitempty"`
	Title             *string  `json:"title,omitempty"`
	Department        *string  `json:"department,omitempty"`
	Billable          *bool    `json:"billable,omitempty"`
	UtilizationTarget *float64 `json:"utilization_target,omitempty"`
	ManagerID         *string  `json:"manager_id,omitempty"`
}

type OffboardPersonRequest struct {
	EndDate string `json:"end_date"`
}

type SetSalaryRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r *SetSalaryRequest) Validate() error {
	if r.Amount.IsNegative() {
		return validator.ValidationErrors{
			{Field: "amount", Message: "must be non-negative"},
		}
	}
	return nil
}

type PersonResponse struct {
	ID                string     `json:"id"`
	FullName          string     `json:"full_name"`
	Email             string     `json:"email"`
	EmployeeCode      string     `json:"employee_code"`
	Title             string     `json:"title"`
	Department        string     `json:"department"`
	Classification    string     `json:"classification"`
	Billable          bool       `json:"billable"`
	UtilizationTarget float64    `json:"utilization_target"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	ManagerID         *string    `json:"manager_id,omitempty"`
}

func ToResponse(p Person) PersonResponse {
	return PersonResponse{
		ID:                p.ID,
		FullName:          p.FullName,
		Email:             p.Email,
		EmployeeCode:      p.EmployeeCode,
		Title:             p.Title,
		Department:        p.Department,
		Classification:    string(p.Classification),
		Billable:          p.Billable,
		UtilizationTarget: p.UtilizationTarget,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		ManagerID:         p.ManagerID,
	}
}

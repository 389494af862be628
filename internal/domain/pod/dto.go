package pod

import (
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePodRequest struct {
	Name     string `json:"name"`
	LeaderID string `json:"leader_id"`
}

func (r *CreatePodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidUUID(r.LeaderID) {
		errs = append(errs, validator.ValidationError{Field: "leader_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddMemberRequest struct {
	PersonID  string `json:"person_id"`
	StartDate string `json:"start_date"`
}

func (r *AddMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.PersonID) {
		errs = append(errs, validator.ValidationError{Field: "person_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MapProjectRequest struct {
	ProjectID string `json:"project_id"`
	StartDate string `json:"start_date"`
}

func (r *MapProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlySummaryResponse aggregates a pod's costs and revenue for a month
// from active member salaries and mapped-project cost entries.
type MonthlySummaryResponse struct {
	PodID           string          `json:"pod_id"`
	PodName         string          `json:"pod_name"`
	Month           string          `json:"month"`
	MemberCount     int             `json:"member_count"`
	ProjectCount    int             `json:"project_count"`
	SalaryCost      decimal.Decimal `json:"salary_cost"`
	ProjectRevenue  decimal.Decimal `json:"project_revenue"`
	NetContribution decimal.Decimal `json:"net_contribution"`
}

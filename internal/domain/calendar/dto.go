package calendar

import "github.com/dataprecision/margindesk-sub001/internal/pkg/validator"

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Type != string(HolidayTypePublic) && r.Type != string(HolidayTypeOptional) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'public' or 'optional'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLeaveRequest struct {
	PersonID  string  `json:"person_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Days      float64 `json:"days"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.PersonID) {
		errs = append(errs, validator.ValidationError{Field: "person_id", Message: "must be a valid UUID"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if r.Days <= 0 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

package person

import (
	"context"
	"fmt"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
)

type PersonServiceImpl struct {
	personRepo person.PersonRepository
	salaryRepo person.SalaryRepository
}

func NewPersonService(personRepo person.PersonRepository, salaryRepo person.SalaryRepository) person.PersonService {
	return &PersonServiceImpl{
		personRepo: personRepo,
		salaryRepo: salaryRepo,
	}
}

// Create implements person.PersonService.
func (s *PersonServiceImpl) Create(ctx context.Context, req person.CreatePersonRequest) (person.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return person.PersonResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	billable := true
	if req.Billable != nil {
		billable = *req.Billable
	}

	created, err := s.personRepo.Create(ctx, person.Person{
		FullName:          req.FullName,
		Email:             req.Email,
		EmployeeCode:      req.EmployeeCode,
		Title:             req.Title,
		Department:        req.Department,
		Classification:    person.Classification(req.Classification),
		Billable:          billable,
		UtilizationTarget: req.UtilizationTarget,
		StartDate:         startDate,
		ManagerID:         req.ManagerID,
	})
	if err != nil {
		return person.PersonResponse{}, err
	}

	if req.ManagerID != nil {
		err = s.personRepo.AddManagerHistory(ctx, person.ManagerHistory{
			PersonID:  created.ID,
			ManagerID: *req.ManagerID,
			StartDate: startDate,
		})
		if err != nil {
			return person.PersonResponse{}, fmt.Errorf("failed to record manager history: %w", err)
		}
	}

	return person.ToResponse(created), nil
}

// Get implements person.PersonService.
func (s *PersonServiceImpl) Get(ctx context.Context, id string) (person.PersonResponse, error) {
	p, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return person.PersonResponse{}, err
	}
	return person.ToResponse(p), nil
}

// List implements person.PersonService.
func (s *PersonServiceImpl) List(ctx context.Context, filter person.PersonFilter) ([]person.PersonResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 25
	}

	people, total, err := s.personRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]person.PersonResponse, 0, len(people))
	for _, p := range people {
		responses = append(responses, person.ToResponse(p))
	}
	return responses, total, nil
}

// Update implements person.PersonService. Manager changes close the current
// history entry and open a new one.
func (s *PersonServiceImpl) Update(ctx context.Context, req person.UpdatePersonRequest) (person.PersonResponse, error) {
	p, err := s.personRepo.GetByID(ctx, req.ID)
	if err != nil {
		return person.PersonResponse{}, err
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Department != nil {
		p.Department = *req.Department
	}
	if req.Billable != nil {
		p.Billable = *req.Billable
	}
	if req.UtilizationTarget != nil {
		if *req.UtilizationTarget < 0 || *req.UtilizationTarget > 100 {
			return person.PersonResponse{}, validator.ValidationErrors{
				{Field: "utilization_target", Message: "must be between 0 and 100"},
			}
		}
		p.UtilizationTarget = *req.UtilizationTarget
	}

	managerChanged := req.ManagerID != nil && (p.ManagerID == nil || *p.ManagerID != *req.ManagerID)
	if managerChanged {
		p.ManagerID = req.ManagerID
	}

	if err := s.personRepo.Update(ctx, p); err != nil {
		return person.PersonResponse{}, err
	}

	if managerChanged {
		err = s.personRepo.AddManagerHistory(ctx, person.ManagerHistory{
			PersonID:  p.ID,
			ManagerID: *req.ManagerID,
			StartDate: time.Now().UTC().Truncate(24 * time.Hour),
		})
		if err != nil {
			return person.PersonResponse{}, fmt.Errorf("failed to record manager history: %w", err)
		}
	}

	return person.ToResponse(p), nil
}

// Offboard implements person.PersonService.
func (s *PersonServiceImpl) Offboard(ctx context.Context, id string, req person.OffboardPersonRequest) error {
	endDate, ok := validator.IsValidDate(req.EndDate)
	if !ok {
		return validator.ValidationErrors{
			{Field: "end_date", Message: "must be YYYY-MM-DD"},
		}
	}
	return s.personRepo.Offboard(ctx, id, endDate)
}

// SetSalary implements person.PersonService.
func (s *PersonServiceImpl) SetSalary(ctx context.Context, personID string, month time.Time, req person.SetSalaryRequest) (person.PersonSalary, error) {
	if err := req.Validate(); err != nil {
		return person.PersonSalary{}, err
	}

	p, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		return person.PersonSalary{}, err
	}

	return s.salaryRepo.Upsert(ctx, person.PersonSalary{
		PersonID:       p.ID,
		Month:          time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC),
		Amount:         req.Amount,
		IsSupportStaff: p.Classification == person.ClassificationSupport,
	})
}

// ListSalariesByMonth implements person.PersonService.
func (s *PersonServiceImpl) ListSalariesByMonth(ctx context.Context, month time.Time) ([]person.PersonSalary, error) {
	return s.salaryRepo.ListByMonth(ctx, month)
}

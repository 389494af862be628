package allocation

import (
	"context"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/allocation"
	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/domain/project"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
)

type AllocationServiceImpl struct {
	allocationRepo allocation.AllocationRepository
	personRepo     person.PersonRepository
	projectRepo    project.ProjectRepository
}

func NewAllocationService(
	allocationRepo allocation.AllocationRepository,
	personRepo person.PersonRepository,
	projectRepo project.ProjectRepository,
) allocation.AllocationService {
	return &AllocationServiceImpl{
		allocationRepo: allocationRepo,
		personRepo:     personRepo,
		projectRepo:    projectRepo,
	}
}

// Create implements allocation.AllocationService.
func (s *AllocationServiceImpl) Create(ctx context.Context, req allocation.CreateAllocationRequest) (allocation.Allocation, error) {
	if err := req.Validate(); err != nil {
		return allocation.Allocation{}, err
	}

	if _, err := s.personRepo.GetByID(ctx, req.PersonID); err != nil {
		return allocation.Allocation{}, err
	}
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return allocation.Allocation{}, err
	}

	month, _ := validator.IsValidMonth(req.Month)
	a := allocation.Allocation{
		PersonID:         req.PersonID,
		ProjectID:        req.ProjectID,
		Month:            month,
		HoursBillable:    req.HoursBillable,
		HoursNonBillable: req.HoursNonBillable,
	}
	if req.StartDate != nil {
		startDate, _ := validator.IsValidDate(*req.StartDate)
		a.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, _ := validator.IsValidDate(*req.EndDate)
		a.EndDate = &endDate
	}

	return s.allocationRepo.Create(ctx, a)
}

// Get implements allocation.AllocationService.
func (s *AllocationServiceImpl) Get(ctx context.Context, id string) (allocation.Allocation, error) {
	return s.allocationRepo.GetByID(ctx, id)
}

// ListByMonth implements allocation.AllocationService.
func (s *AllocationServiceImpl) ListByMonth(ctx context.Context, month time.Time) ([]allocation.Allocation, error) {
	return s.allocationRepo.ListByMonth(ctx, month)
}

// ListByPersonMonth implements allocation.AllocationService.
func (s *AllocationServiceImpl) ListByPersonMonth(ctx context.Context, personID string, month time.Time) ([]allocation.Allocation, error) {
	return s.allocationRepo.ListByPersonMonth(ctx, personID, month)
}

// Update implements allocation.AllocationService.
func (s *AllocationServiceImpl) Update(ctx context.Context, req allocation.UpdateAllocationRequest) (allocation.Allocation, error) {
	if err := req.Validate(); err != nil {
		return allocation.Allocation{}, err
	}

	a, err := s.allocationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return allocation.Allocation{}, err
	}

	if req.HoursBillable != nil {
		a.HoursBillable = *req.HoursBillable
	}
	if req.HoursNonBillable != nil {
		a.HoursNonBillable = *req.HoursNonBillable
	}

	if err := s.allocationRepo.Update(ctx, a); err != nil {
		return allocation.Allocation{}, err
	}
	return a, nil
}

// Delete implements allocation.AllocationService.
func (s *AllocationServiceImpl) Delete(ctx context.Context, id string) error {
	return s.allocationRepo.Delete(ctx, id)
}

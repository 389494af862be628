package pod

import (
	"context"
	"errors"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/domain/pod"
	"github.com/dataprecision/margindesk-sub001/internal/domain/project"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PodServiceImpl struct {
	podRepo     pod.PodRepository
	personRepo  person.PersonRepository
	salaryRepo  person.SalaryRepository
	projectRepo project.ProjectRepository
	costRepo    project.CostRepository
}

func NewPodService(
	podRepo pod.PodRepository,
	personRepo person.PersonRepository,
	salaryRepo person.SalaryRepository,
	projectRepo project.ProjectRepository,
	costRepo project.CostRepository,
) pod.PodService {
	return &PodServiceImpl{
		podRepo:     podRepo,
		personRepo:  personRepo,
		salaryRepo:  salaryRepo,
		projectRepo: projectRepo,
		costRepo:    costRepo,
	}
}

// Create implements pod.PodService.
func (s *PodServiceImpl) Create(ctx context.Context, req pod.CreatePodRequest) (pod.FinancialPod, error) {
	if err := req.Validate(); err != nil {
		return pod.FinancialPod{}, err
	}

	if _, err := s.personRepo.GetByID(ctx, req.LeaderID); err != nil {
		return pod.FinancialPod{}, err
	}

	return s.podRepo.Create(ctx, pod.FinancialPod{
		Name:     req.Name,
		LeaderID: req.LeaderID,
	})
}

// Get implements pod.PodService.
func (s *PodServiceImpl) Get(ctx context.Context, id string) (pod.FinancialPod, error) {
	return s.podRepo.GetByID(ctx, id)
}

// List implements pod.PodService.
func (s *PodServiceImpl) List(ctx context.Context) ([]pod.FinancialPod, error) {
	return s.podRepo.List(ctx)
}

// Delete implements pod.PodService.
func (s *PodServiceImpl) Delete(ctx context.Context, id string) error {
	return s.podRepo.Delete(ctx, id)
}

// AddMember implements pod.PodService.
func (s *PodServiceImpl) AddMember(ctx context.Context, podID string, req pod.AddMemberRequest) (pod.Membership, error) {
	if err := req.Validate(); err != nil {
		return pod.Membership{}, err
	}

	if _, err := s.podRepo.GetByID(ctx, podID); err != nil {
		return pod.Membership{}, err
	}
	if _, err := s.personRepo.GetByID(ctx, req.PersonID); err != nil {
		return pod.Membership{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	return s.podRepo.AddMembership(ctx, pod.Membership{
		PodID:     podID,
		PersonID:  req.PersonID,
		StartDate: startDate,
	})
}

// RemoveMember implements pod.PodService. Memberships are closed, never
// deleted, so historical summaries stay intact.
func (s *PodServiceImpl) RemoveMember(ctx context.Context, membershipID string, endDate time.Time) error {
	return s.podRepo.EndMembership(ctx, membershipID, endDate)
}

// ListMembers implements pod.PodService.
func (s *PodServiceImpl) ListMembers(ctx context.Context, podID string, activeIn *time.Time) ([]pod.Membership, error) {
	if _, err := s.podRepo.GetByID(ctx, podID); err != nil {
		return nil, err
	}
	return s.podRepo.ListMemberships(ctx, podID, activeIn)
}

// MapProject implements pod.PodService.
func (s *PodServiceImpl) MapProject(ctx context.Context, podID string, req pod.MapProjectRequest) (pod.ProjectMapping, error) {
	if err := req.Validate(); err != nil {
		return pod.ProjectMapping{}, err
	}

	if _, err := s.podRepo.GetByID(ctx, podID); err != nil {
		return pod.ProjectMapping{}, err
	}
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return pod.ProjectMapping{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	return s.podRepo.AddProjectMapping(ctx, pod.ProjectMapping{
		PodID:     podID,
		ProjectID: req.ProjectID,
		StartDate: startDate,
	})
}

// UnmapProject implements pod.PodService.
func (s *PodServiceImpl) UnmapProject(ctx context.Context, mappingID string, endDate time.Time) error {
	return s.podRepo.EndProjectMapping(ctx, mappingID, endDate)
}

// ListProjects implements pod.PodService.
func (s *PodServiceImpl) ListProjects(ctx context.Context, podID string, activeIn *time.Time) ([]pod.ProjectMapping, error) {
	if _, err := s.podRepo.GetByID(ctx, podID); err != nil {
		return nil, err
	}
	return s.podRepo.ListProjectMappings(ctx, podID, activeIn)
}

// MonthlySummary implements pod.PodService. Members without a salary record
// for the month contribute zero cost rather than failing the rollup.
func (s *PodServiceImpl) MonthlySummary(ctx context.Context, podID string, month time.Time) (pod.MonthlySummaryResponse, error) {
	p, err := s.podRepo.GetByID(ctx, podID)
	if err != nil {
		return pod.MonthlySummaryResponse{}, err
	}

	firstDay := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	members, err := s.podRepo.ListMemberships(ctx, podID, &firstDay)
	if err != nil {
		return pod.MonthlySummaryResponse{}, err
	}

	salaryCost := decimal.Zero
	for _, m := range members {
		sal, err := s.salaryRepo.GetByPersonMonth(ctx, m.PersonID, firstDay)
		if err != nil {
			if errors.Is(err, person.ErrSalaryNotFound) {
				continue
			}
			return pod.MonthlySummaryResponse{}, err
		}
		salaryCost = salaryCost.Add(sal.Amount)
	}

	mappings, err := s.podRepo.ListProjectMappings(ctx, podID, &firstDay)
	if err != nil {
		return pod.MonthlySummaryResponse{}, err
	}

	revenue := decimal.Zero
	for _, m := range mappings {
		costs, err := s.costRepo.ListByProject(ctx, m.ProjectID, firstDay, firstDay)
		if err != nil {
			return pod.MonthlySummaryResponse{}, err
		}
		for _, c := range costs {
			revenue = revenue.Add(c.Amount)
		}
	}

	return pod.MonthlySummaryResponse{
		PodID:           p.ID,
		PodName:         p.Name,
		Month:           firstDay.Format("2006-01"),
		MemberCount:     len(members),
		ProjectCount:    len(mappings),
		SalaryCost:      salaryCost,
		ProjectRevenue:  revenue,
		NetContribution: revenue.Sub(salaryCost),
	}, nil
}

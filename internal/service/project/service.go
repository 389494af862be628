package project

import (
	"context"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/project"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/validator"
	"github.com/dataprecision/margindesk-sub001/internal/repository/postgresql"
)

type ProjectServiceImpl struct {
	db          *database.DB
	projectRepo project.ProjectRepository
	costRepo    project.CostRepository
}

func NewProjectService(db *database.DB, projectRepo project.ProjectRepository, costRepo project.CostRepository) project.ProjectService {
	return &ProjectServiceImpl{
		db:          db,
		projectRepo: projectRepo,
		costRepo:    costRepo,
	}
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	p := project.Project{
		ClientID: req.ClientID,
		Name:     req.Name,
		Code:     req.Code,
		IsActive: true,
	}
	if req.StartDate != nil {
		startDate, _ := validator.IsValidDate(*req.StartDate)
		p.StartDate = &startDate
	}

	return s.projectRepo.Create(ctx, p)
}

// Get implements project.ProjectService.
func (s *ProjectServiceImpl) Get(ctx context.Context, id string) (project.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context, activeOnly bool) ([]project.Project, error) {
	return s.projectRepo.List(ctx, activeOnly)
}

// Update implements project.ProjectService.
func (s *ProjectServiceImpl) Update(ctx context.Context, req project.UpdateProjectRequest) (project.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, req.ID)
	if err != nil {
		return project.Project{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Code != nil {
		p.Code = req.Code
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.projectRepo.Update(ctx, p); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

// Delete implements project.ProjectService.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}

// BulkCostUpdate implements project.ProjectService. All entries for the month
// are replaced atomically so a failed row never leaves a partial month.
func (s *ProjectServiceImpl) BulkCostUpdate(ctx context.Context, req project.BulkCostUpdateRequest) ([]project.ProjectCost, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	month, _ := validator.IsValidMonth(req.Month)

	costs := make([]project.ProjectCost, 0, len(req.Entries))
	for _, e := range req.Entries {
		costType := project.CostType(e.Type)
		if costType == "" {
			costType = project.CostTypeRevenue
		}
		costs = append(costs, project.ProjectCost{
			ProjectID: e.ProjectID,
			Month:     month,
			Type:      costType,
			Amount:    e.Amount,
		})
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, c := range costs {
			if _, err := s.projectRepo.GetByID(txCtx, c.ProjectID); err != nil {
				return err
			}
		}
		return s.costRepo.ReplaceForMonth(txCtx, month, costs)
	})
	if err != nil {
		return nil, err
	}

	return s.costRepo.ListByMonth(ctx, month)
}

// ListCostsByMonth implements project.ProjectService.
func (s *ProjectServiceImpl) ListCostsByMonth(ctx context.Context, month time.Time) ([]project.ProjectCost, error) {
	return s.costRepo.ListByMonth(ctx, month)
}

// ListCostsByProject implements project.ProjectService.
func (s *ProjectServiceImpl) ListCostsByProject(ctx context.Context, projectID string, from, to time.Time) ([]project.ProjectCost, error) {
	return s.costRepo.ListByProject(ctx, projectID, from, to)
}

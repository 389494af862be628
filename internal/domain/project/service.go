package project

import (
	"context"
	"time"
)

type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (Project, error)
	Get(ctx context.Context, id string) (Project, error)
	List(ctx context.Context, activeOnly bool) ([]Project, error)
	Update(ctx context.Context, req UpdateProjectRequest) (Project, error)
	Delete(ctx context.Context, id string) error

	// BulkCostUpdate replaces all monthly cost entries for the request's
	// month in a single transaction.
	BulkCostUpdate(ctx context.Context, req BulkCostUpdateRequest) ([]ProjectCost, error)
	ListCostsByMonth(ctx context.Context, month time.Time) ([]ProjectCost, error)
	ListCostsByProject(ctx context.Context, projectID string, from, to time.Time) ([]ProjectCost, error)
}

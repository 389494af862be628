package project

import (
	"context"
	"time"
)

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	GetByClientAndName(ctx context.Context, clientID, name string) (Project, error)
	List(ctx context.Context, activeOnly bool) ([]Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id string) error
}

type CostRepository interface {
	Upsert(ctx context.Context, c ProjectCost) (ProjectCost, error)
	ListByMonth(ctx context.Context, month time.Time) ([]ProjectCost, error)
	ListByProject(ctx context.Context, projectID string, from, to time.Time) ([]ProjectCost, error)
	// ReplaceForMonth deletes and re-inserts all cost entries for a month.
	// Callers run it inside a transaction.
	ReplaceForMonth(ctx context.Context, month time.Time, costs []ProjectCost) error
	Delete(ctx context.Context, id string) error
}

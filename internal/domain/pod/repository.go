package pod

import (
	"context"
	"time"
)

type PodRepository interface {
	Create(ctx context.Context, p FinancialPod) (FinancialPod, error)
	GetByID(ctx context.Context, id string) (FinancialPod, error)
	List(ctx context.Context) ([]FinancialPod, error)
	Update(ctx context.Context, p FinancialPod) error
	Delete(ctx context.Context, id string) error

	AddMembership(ctx context.Context, m Membership) (Membership, error)
	EndMembership(ctx context.Context, id string, endDate time.Time) error
	ListMemberships(ctx context.Context, podID string, activeIn *time.Time) ([]Membership, error)

	AddProjectMapping(ctx context.Context, m ProjectMapping) (ProjectMapping, error)
	EndProjectMapping(ctx context.Context, id string, endDate time.Time) error
	ListProjectMappings(ctx context.Context, podID string, activeIn *time.Time) ([]ProjectMapping, error)
}

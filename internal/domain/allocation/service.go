package allocation

import (
	"context"
	"time"
)

type AllocationService interface {
	Create(ctx context.Context, req CreateAllocationRequest) (Allocation, error)
	Get(ctx context.Context, id string) (Allocation, error)
	ListByMonth(ctx context.Context, month time.Time) ([]Allocation, error)
	ListByPersonMonth(ctx context.Context, personID string, month time.Time) ([]Allocation, error)
	Update(ctx context.Context, req UpdateAllocationRequest) (Allocation, error)
	Delete(ctx context.Context, id string) error
}

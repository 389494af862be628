package person

import (
	"context"
	"time"
)

type PersonService interface {
	Create(ctx context.Context, req CreatePersonRequest) (PersonResponse, error)
	Get(ctx context.Context, id string) (PersonResponse, error)
	List(ctx context.Context, filter PersonFilter) ([]PersonResponse, int64, error)
	Update(ctx context.Context, req UpdatePersonRequest) (PersonResponse, error)
	Offboard(ctx context.Context, id string, req OffboardPersonRequest) error

	SetSalary(ctx context.Context, personID string, month time.Time, req SetSalaryRequest) (PersonSalary, error)
	ListSalariesByMonth(ctx context.Context, month time.Time) ([]PersonSalary, error)
}

package person

import (
	"context"
	"time"
)

type PersonRepository interface {
	Create(ctx context.Context, p Person) (Person, error)
	GetByID(ctx context.Context, id string) (Person, error)
	GetByEmail(ctx context.Context, email string) (Person, error)
	GetByEmployeeCode(ctx context.Context, code string) (Person, error)
	List(ctx context.Context, filter PersonFilter) ([]Person, int64, error)
	// ListEmployedIn returns people whose employment window covers the month
	// starting at firstOfMonth (end date null or on/after it).
	ListEmployedIn(ctx context.Context, firstOfMonth time.Time) ([]Person, error)
	Update(ctx context.Context, p Person) error
	// Offboard sets the person's end date. People referenced elsewhere are
	// never hard-deleted.
	Offboard(ctx context.Context, id string, endDate time.Time) error
	AddManagerHistory(ctx context.Context, h ManagerHistory) error
	GetManagerHistory(ctx context.Context, personID string) ([]ManagerHistory, error)
}

type PersonFilter struct {
	Department *string
	Billable   *bool
	ActiveOnly bool
	Search     string
	Page       int
	Limit      int
}

type SalaryRepository interface {
	Upsert(ctx context.Context, s PersonSalary) (PersonSalary, error)
	GetByPersonMonth(ctx context.Context, personID string, month time.Time) (PersonSalary, error)
	ListByMonth(ctx context.Context, month time.Time) ([]PersonSalary, error)
	// DeleteByMonth backs the delete-then-insert salary import strategy.
	DeleteByMonth(ctx context.Context, month time.Time) (int64, error)
}

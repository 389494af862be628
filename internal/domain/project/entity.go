package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID        string
	ClientID  string
	Name      string
	Code      *string
	IsActive  bool
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	ClientName *string
}

// CostType distinguishes monthly revenue-recognition entries.
type CostType string

const (
	CostTypeRevenue   CostType = "revenue"
	CostTypeRetainer  CostType = "retainer"
	CostTypeMilestone CostType = "milestone"
)

// ProjectCost is a monthly revenue-recognition entry per project, distinct
// from time allocations. Month is always the first day of the month.
type ProjectCost struct {
	ID        string
	ProjectID string
	Month     time.Time
	Type      CostType
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

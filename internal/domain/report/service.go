package report

import (
	"context"
	"time"
)

type Service interface {
	// BuildProfitLoss aggregates the monthly P&L report. Read-only.
	BuildProfitLoss(ctx context.Context, month time.Time) (ProfitLossResponse, error)
}

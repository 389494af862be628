package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/utilization"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type utilizationRepository struct {
	db *database.DB
}

func NewUtilizationRepository(db *database.DB) utilization.Repository {
	return &utilizationRepository{db: db}
}

const utilizationColumns = `id, person_id, month, working_hours, worked_hours,
	billable_hours, utilization_pct, billable_utilization_pct, leave_days,
	holiday_days, created_at, updated_at`

func scanUtilization(row pgx.Row, joined bool) (utilization.MonthlyUtilization, error) {
	var u utilization.MonthlyUtilization
	dest := []interface{}{
		&u.ID, &u.PersonID, &u.Month, &u.WorkingHours, &u.WorkedHours,
		&u.BillableHours, &u.UtilizationPct, &u.BillableUtilizationPct,
		&u.LeaveDays, &u.HolidayDays, &u.CreatedAt, &u.UpdatedAt,
	}
	if joined {
		dest = append(dest, &u.PersonName)
	}
	return u, row.Scan(dest...)
}

func (r *utilizationRepository) Upsert(ctx context.Context, u utilization.MonthlyUtilization) (utilization.MonthlyUtilization, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO monthly_utilization (id, person_id, month, working_hours,
			worked_hours, billable_hours, utilization_pct,
			billable_utilization_pct, leave_days, holiday_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (person_id, month) DO UPDATE SET
			working_hours = EXCLUDED.working_hours,
			worked_hours = EXCLUDED.worked_hours,
			billable_hours = EXCLUDED.billable_hours,
			utilization_pct = EXCLUDED.utilization_pct,
			billable_utilization_pct = EXCLUDED.billable_utilization_pct,
			leave_days = EXCLUDED.leave_days,
			holiday_days = EXCLUDED.holiday_days,
			updated_at = NOW()
		RETURNING %s
	`, utilizationColumns)

	upserted, err := scanUtilization(q.QueryRow(ctx, query,
		uuid.NewString(), u.PersonID, u.Month, u.WorkingHours, u.WorkedHours,
		u.BillableHours, u.UtilizationPct, u.BillableUtilizationPct,
		u.LeaveDays, u.HolidayDays,
	), false)
	if err != nil {
		return utilization.MonthlyUtilization{}, fmt.Errorf("failed to upsert utilization: %w", err)
	}

	return upserted, nil
}

func (r *utilizationRepository) GetByPersonMonth(ctx context.Context, personID string, month time.Time) (utilization.MonthlyUtilization, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM monthly_utilization WHERE person_id = $1 AND month = $2
	`, utilizationColumns)

	u, err := scanUtilization(q.QueryRow(ctx, query, personID, month), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return utilization.MonthlyUtilization{}, utilization.ErrNotFound
		}
		return utilization.MonthlyUtilization{}, fmt.Errorf("failed to get utilization: %w", err)
	}

	return u, nil
}

func (r *utilizationRepository) ListByMonth(ctx context.Context, month time.Time) ([]utilization.MonthlyUtilization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT mu.id, mu.person_id, mu.month, mu.working_hours, mu.worked_hours,
			mu.billable_hours, mu.utilization_pct, mu.billable_utilization_pct,
			mu.leave_days, mu.holiday_days, mu.created_at, mu.updated_at, p.full_name
		FROM monthly_utilization mu
		JOIN people p ON p.id = mu.person_id
		WHERE mu.month = $1
		ORDER BY p.full_name
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list utilization: %w", err)
	}
	defer rows.Close()

	var records []utilization.MonthlyUtilization
	for rows.Next() {
		u, err := scanUtilization(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan utilization: %w", err)
		}
		records = append(records, u)
	}

	return records, nil
}

func (r *utilizationRepository) ListByPerson(ctx context.Context, personID string, from, to time.Time) ([]utilization.MonthlyUtilization, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM monthly_utilization
		WHERE person_id = $1 AND month >= $2 AND month <= $3
		ORDER BY month
	`, utilizationColumns)

	rows, err := q.Query(ctx, query, personID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list utilization: %w", err)
	}
	defer rows.Close()

	var records []utilization.MonthlyUtilization
	for rows.Next() {
		u, err := scanUtilization(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan utilization: %w", err)
		}
		records = append(records, u)
	}

	return records, nil
}

func (r *utilizationRepository) DeleteByMonth(ctx context.Context, month time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM monthly_utilization WHERE month = $1`, month)
	if err != nil {
		return 0, fmt.Errorf("failed to delete utilization for month: %w", err)
	}

	return tag.RowsAffected(), nil
}

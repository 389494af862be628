package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/allocation"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type allocationRepository struct {
	db *database.DB
}

func NewAllocationRepository(db *database.DB) allocation.AllocationRepository {
	return &allocationRepository{db: db}
}

func (r *allocationRepository) Create(ctx context.Context, a allocation.Allocation) (allocation.Allocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO allocations (id, person_id, project_id, month, hours_billable,
			hours_non_billable, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, person_id, project_id, month, hours_billable,
			hours_non_billable, start_date, end_date, created_at, updated_at
	`

	var created allocation.Allocation
	err := q.QueryRow(ctx, query,
		uuid.NewString(), a.PersonID, a.ProjectID, a.Month,
		a.HoursBillable, a.HoursNonBillable, a.StartDate, a.EndDate,
	).Scan(
		&created.ID, &created.PersonID, &created.ProjectID, &created.Month,
		&created.HoursBillable, &created.HoursNonBillable,
		&created.StartDate, &created.EndDate, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_allocations_person_project_month") {
			return allocation.Allocation{}, allocation.ErrAllocationExists
		}
		return allocation.Allocation{}, fmt.Errorf("failed to create allocation: %w", err)
	}

	return created, nil
}

func (r *allocationRepository) GetByID(ctx context.Context, id string) (allocation.Allocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.person_id, a.project_id, a.month, a.hours_billable,
			   a.hours_non_billable, a.start_date, a.end_date, a.created_at,
			   a.updated_at, p.full_name, pr.name
		FROM allocations a
		JOIN people p ON a.person_id = p.id
		JOIN projects pr ON a.project_id = pr.id
		WHERE a.id = $1
	`

	var a allocation.Allocation
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.PersonID, &a.ProjectID, &a.Month, &a.HoursBillable,
		&a.HoursNonBillable, &a.StartDate, &a.EndDate, &a.CreatedAt,
		&a.UpdatedAt, &a.PersonName, &a.ProjectName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return allocation.Allocation{}, allocation.ErrAllocationNotFound
		}
		return allocation.Allocation{}, fmt.Errorf("failed to get allocation: %w", err)
	}

	return a, nil
}

func (r *allocationRepository) ListByMonth(ctx context.Context, month time.Time) ([]allocation.Allocation, error) {
	return r.list(ctx, `WHERE a.month = $1`, month)
}

func (r *allocationRepository) ListByPersonMonth(ctx context.Context, personID string, month time.Time) ([]allocation.Allocation, error) {
	return r.list(ctx, `WHERE a.person_id = $1 AND a.month = $2`, personID, month)
}

func (r *allocationRepository) list(ctx context.Context, where string, args ...interface{}) ([]allocation.Allocation, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT a.id, a.person_id, a.project_id, a.month, a.hours_billable,
			   a.hours_non_billable, a.start_date, a.end_date, a.created_at,
			   a.updated_at, p.full_name, pr.name
		FROM allocations a
		JOIN people p ON a.person_id = p.id
		JOIN projects pr ON a.project_id = pr.id
		%s
		ORDER BY p.full_name, pr.name
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}
	defer rows.Close()

	var allocations []allocation.Allocation
	for rows.Next() {
		var a allocation.Allocation
		if err := rows.Scan(
			&a.ID, &a.PersonID, &a.ProjectID, &a.Month, &a.HoursBillable,
			&a.HoursNonBillable, &a.StartDate, &a.EndDate, &a.CreatedAt,
			&a.UpdatedAt, &a.PersonName, &a.ProjectName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		allocations = append(allocations, a)
	}

	return allocations, nil
}

func (r *allocationRepository) SumHoursForMonth(ctx context.Context, personID string, month time.Time) (allocation.HoursSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours_billable), 0), COALESCE(SUM(hours_non_billable), 0)
		FROM allocations
		WHERE person_id = $1 AND month = $2
	`

	summary := allocation.HoursSummary{PersonID: personID}
	err := q.QueryRow(ctx, query, personID, month).Scan(
		&summary.HoursBillable, &summary.HoursNonBillable,
	)
	if err != nil {
		return allocation.HoursSummary{}, fmt.Errorf("failed to sum allocation hours: %w", err)
	}

	return summary, nil
}

func (r *allocationRepository) Update(ctx context.Context, a allocation.Allocation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE allocations
		SET hours_billable = $2, hours_non_billable = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, a.ID, a.HoursBillable, a.HoursNonBillable).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return allocation.ErrAllocationNotFound
		}
		return fmt.Errorf("failed to update allocation: %w", err)
	}

	return nil
}

func (r *allocationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM allocations WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return allocation.ErrAllocationNotFound
		}
		return fmt.Errorf("failed to delete allocation: %w", err)
	}

	return nil
}

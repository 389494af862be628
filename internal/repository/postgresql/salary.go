package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) person.SalaryRepository {
	return &salaryRepository{db: db}
}

func (r *salaryRepository) Upsert(ctx context.Context, s person.PersonSalary) (person.PersonSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO person_salaries (id, person_id, month, amount, is_support_staff)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (person_id, month) DO UPDATE SET
			amount = EXCLUDED.amount,
			is_support_staff = EXCLUDED.is_support_staff,
			updated_at = NOW()
		RETURNING id, person_id, month, amount, is_support_staff, created_at, updated_at
	`

	var out person.PersonSalary
	err := q.QueryRow(ctx, query,
		uuid.NewString(), s.PersonID, s.Month, s.Amount, s.IsSupportStaff,
	).Scan(
		&out.ID, &out.PersonID, &out.Month, &out.Amount, &out.IsSupportStaff,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return person.PersonSalary{}, fmt.Errorf("failed to upsert salary: %w", err)
	}

	return out, nil
}

func (r *salaryRepository) GetByPersonMonth(ctx context.Context, personID string, month time.Time) (person.PersonSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, person_id, month, amount, is_support_staff, created_at, updated_at
		FROM person_salaries
		WHERE person_id = $1 AND month = $2
	`

	var s person.PersonSalary
	err := q.QueryRow(ctx, query, personID, month).Scan(
		&s.ID, &s.PersonID, &s.Month, &s.Amount, &s.IsSupportStaff,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return person.PersonSalary{}, person.ErrSalaryNotFound
		}
		return person.PersonSalary{}, fmt.Errorf("failed to get salary: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) ListByMonth(ctx context.Context, month time.Time) ([]person.PersonSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.person_id, s.month, s.amount, s.is_support_staff,
			   s.created_at, s.updated_at, p.full_name, p.employee_code
		FROM person_salaries s
		JOIN people p ON s.person_id = p.id
		WHERE s.month = $1
		ORDER BY p.full_name
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	defer rows.Close()

	var salaries []person.PersonSalary
	for rows.Next() {
		var s person.PersonSalary
		if err := rows.Scan(
			&s.ID, &s.PersonID, &s.Month, &s.Amount, &s.IsSupportStaff,
			&s.CreatedAt, &s.UpdatedAt, &s.PersonName, &s.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		salaries = append(salaries, s)
	}

	return salaries, nil
}

func (r *salaryRepository) DeleteByMonth(ctx context.Context, month time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM person_salaries WHERE month = $1`, month)
	if err != nil {
		return 0, fmt.Errorf("failed to delete salaries for month: %w", err)
	}

	return tag.RowsAffected(), nil
}

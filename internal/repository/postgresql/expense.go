package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/finance"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) finance.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, e finance.Expense) (finance.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (id, description, category, date, amount, include_in_calculation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, description, category, date, amount, include_in_calculation, created_at, updated_at
	`

	var created finance.Expense
	err := q.QueryRow(ctx, query,
		uuid.NewString(), e.Description, e.Category, e.Date, e.Amount, e.IncludeInCalculation,
	).Scan(
		&created.ID, &created.Description, &created.Category, &created.Date,
		&created.Amount, &created.IncludeInCalculation, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return finance.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return created, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (finance.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, description, category, date, amount, include_in_calculation, created_at, updated_at
		FROM expenses
		WHERE id = $1
	`

	var e finance.Expense
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Description, &e.Category, &e.Date, &e.Amount,
		&e.IncludeInCalculation, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return finance.Expense{}, finance.ErrExpenseNotFound
		}
		return finance.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) ListByRange(ctx context.Context, from, to time.Time) ([]finance.Expense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, description, category, date, amount, include_in_calculation, created_at, updated_at
		FROM expenses
		WHERE date BETWEEN $1 AND $2
		ORDER BY date
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []finance.Expense
	for rows.Next() {
		var e finance.Expense
		if err := rows.Scan(
			&e.ID, &e.Description, &e.Category, &e.Date, &e.Amount,
			&e.IncludeInCalculation, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

func (r *expenseRepository) Update(ctx context.Context, e finance.Expense) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET description = $2, category = $3, date = $4, amount = $5,
			include_in_calculation = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, e.ID, e.Description, e.Category, e.Date, e.Amount, e.IncludeInCalculation).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return finance.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to update expense: %w", err)
	}

	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM expenses WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return finance.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/calendar"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, h calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, date, name, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, date, name, type, created_at
	`

	var created calendar.Holiday
	err := q.QueryRow(ctx, query, uuid.NewString(), h.Date, h.Name, h.Type).Scan(
		&created.ID, &created.Date, &created.Name, &created.Type, &created.CreatedAt,
	)
	if err != nil {
		return calendar.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

func (r *holidayRepository) ListByRange(ctx context.Context, from, to time.Time) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, type, created_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Type, &h.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}

func (r *holidayRepository) CountPublicInRange(ctx context.Context, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM holidays
		WHERE type = $1 AND date >= $2 AND date <= $3
	`

	var count int
	if err := q.QueryRow(ctx, query, calendar.HolidayTypePublic, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count public holidays: %w", err)
	}

	return count, nil
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM holidays WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	return nil
}

// ========== LEAVES ==========

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) calendar.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, person_id, start_date, end_date, status, days, created_at, updated_at`

func scanLeave(row pgx.Row) (calendar.Leave, error) {
	var l calendar.Leave
	err := row.Scan(
		&l.ID, &l.PersonID, &l.StartDate, &l.EndDate, &l.Status, &l.Days,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *leaveRepository) Create(ctx context.Context, l calendar.Leave) (calendar.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO leaves (id, person_id, start_date, end_date, status, days)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, leaveColumns)

	created, err := scanLeave(q.QueryRow(ctx, query,
		uuid.NewString(), l.PersonID, l.StartDate, l.EndDate, l.Status, l.Days,
	))
	if err != nil {
		return calendar.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return created, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (calendar.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM leaves WHERE id = $1`, leaveColumns)

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.Leave{}, calendar.ErrLeaveNotFound
		}
		return calendar.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) ListApprovedOverlapping(ctx context.Context, personID string, from, to time.Time) ([]calendar.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leaves
		WHERE person_id = $1 AND status = $2
			AND start_date <= $3 AND end_date >= $4
		ORDER BY start_date
	`, leaveColumns)

	rows, err := q.Query(ctx, query, personID, calendar.LeaveStatusApproved, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []calendar.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, nil
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status calendar.LeaveStatus) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE leaves SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING id
	`, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update leave status: %w", err)
	}

	return nil
}

func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM leaves WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return calendar.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to delete leave: %w", err)
	}

	return nil
}

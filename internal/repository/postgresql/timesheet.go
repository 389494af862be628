package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/allocation"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) allocation.TimesheetRepository {
	return &timesheetRepository{db: db}
}

func (r *timesheetRepository) InsertBatch(ctx context.Context, entries []allocation.TimesheetEntry) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var inserted int64
	for _, e := range entries {
		tag, err := q.Exec(ctx, `
			INSERT INTO timesheet_entries (id, person_id, project_id, date, hours,
				task_type, notes, row_hash)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (row_hash) DO NOTHING
		`, uuid.NewString(), e.PersonID, e.ProjectID, e.Date, e.Hours,
			e.TaskType, e.Notes, e.RowHash)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert timesheet entry: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

func (r *timesheetRepository) DeleteRange(ctx context.Context, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timesheet_entries WHERE date BETWEEN $1 AND $2`, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to delete timesheet range: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *timesheetRepository) ListByPersonRange(ctx context.Context, personID string, from, to time.Time) ([]allocation.TimesheetEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, person_id, project_id, date, hours, task_type, notes, row_hash, created_at
		FROM timesheet_entries
		WHERE person_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`, personID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []allocation.TimesheetEntry
	for rows.Next() {
		var e allocation.TimesheetEntry
		if err := rows.Scan(
			&e.ID, &e.PersonID, &e.ProjectID, &e.Date, &e.Hours,
			&e.TaskType, &e.Notes, &e.RowHash, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type personRepository struct {
	db *database.DB
}

func NewPersonRepository(db *database.DB) person.PersonRepository {
	return &personRepository{db: db}
}

const personColumns = `id, full_name, email, employee_code, title, department,
	classification, billable, utilization_target, start_date, end_date,
	manager_id, created_at, updated_at`

func scanPerson(row pgx.Row) (person.Person, error) {
	var p person.Person
	err := row.Scan(
		&p.ID, &p.FullName, &p.Email, &p.EmployeeCode, &p.Title, &p.Department,
		&p.Classification, &p.Billable, &p.UtilizationTarget, &p.StartDate,
		&p.EndDate, &p.ManagerID, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *personRepository) Create(ctx context.Context, p person.Person) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO people (id, full_name, email, employee_code, title, department,
			classification, billable, utilization_target, start_date, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, personColumns)

	created, err := scanPerson(q.QueryRow(ctx, query,
		uuid.NewString(), p.FullName, p.Email, p.EmployeeCode, p.Title,
		p.Department, p.Classification, p.Billable, p.UtilizationTarget,
		p.StartDate, p.ManagerID,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_people_employee_code") {
			return person.Person{}, person.ErrEmployeeCodeExists
		}
		if strings.Contains(err.Error(), "uk_people_email") {
			return person.Person{}, person.ErrEmailExists
		}
		return person.Person{}, fmt.Errorf("failed to create person: %w", err)
	}

	return created, nil
}

func (r *personRepository) GetByID(ctx context.Context, id string) (person.Person, error) {
	return r.getBy(ctx, "id", id)
}

func (r *personRepository) GetByEmail(ctx context.Context, email string) (person.Person, error) {
	return r.getBy(ctx, "email", email)
}

func (r *personRepository) GetByEmployeeCode(ctx context.Context, code string) (person.Person, error) {
	return r.getBy(ctx, "employee_code", code)
}

func (r *personRepository) getBy(ctx context.Context, column, value string) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM people WHERE %s = $1`, personColumns, column)

	p, err := scanPerson(q.QueryRow(ctx, query, value))
	if err != nil {
		if err == pgx.ErrNoRows {
			return person.Person{}, person.ErrPersonNotFound
		}
		return person.Person{}, fmt.Errorf("failed to get person: %w", err)
	}

	return p, nil
}

func (r *personRepository) List(ctx context.Context, filter person.PersonFilter) ([]person.Person, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM people WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Department != nil {
		baseQuery += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Billable != nil {
		baseQuery += fmt.Sprintf(" AND billable = $%d", argIdx)
		args = append(args, *filter.Billable)
		argIdx++
	}
	if filter.ActiveOnly {
		baseQuery += " AND (end_date IS NULL OR end_date >= CURRENT_DATE)"
	}
	if filter.Search != "" {
		baseQuery += fmt.Sprintf(" AND (full_name ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count people: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf("SELECT %s%s ORDER BY full_name LIMIT $%d OFFSET $%d",
		personColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []person.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}

	return people, totalCount, nil
}

func (r *personRepository) ListEmployedIn(ctx context.Context, firstOfMonth time.Time) ([]person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM people
		WHERE start_date <= $1 AND (end_date IS NULL OR end_date >= $2)
		ORDER BY full_name
	`, personColumns)

	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	rows, err := q.Query(ctx, query, lastOfMonth, firstOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list employed people: %w", err)
	}
	defer rows.Close()

	var people []person.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}

	return people, nil
}

func (r *personRepository) Update(ctx context.Context, p person.Person) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE people
		SET full_name = $2, title = $3, department = $4, billable = $5,
			utilization_target = $6, manager_id = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		p.ID, p.FullName, p.Title, p.Department, p.Billable,
		p.UtilizationTarget, p.ManagerID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return person.ErrPersonNotFound
		}
		return fmt.Errorf("failed to update person: %w", err)
	}

	return nil
}

func (r *personRepository) Offboard(ctx context.Context, id string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE people SET end_date = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query, id, endDate).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return person.ErrPersonNotFound
		}
		return fmt.Errorf("failed to offboard person: %w", err)
	}

	return nil
}

func (r *personRepository) AddManagerHistory(ctx context.Context, h person.ManagerHistory) error {
	q := GetQuerier(ctx, r.db)

	// Close the currently open assignment before opening a new one.
	_, err := q.Exec(ctx, `
		UPDATE manager_history SET end_date = $2
		WHERE person_id = $1 AND end_date IS NULL
	`, h.PersonID, h.StartDate)
	if err != nil {
		return fmt.Errorf("failed to close manager history: %w", err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO manager_history (id, person_id, manager_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), h.PersonID, h.ManagerID, h.StartDate, h.EndDate)
	if err != nil {
		return fmt.Errorf("failed to add manager history: %w", err)
	}

	return nil
}

func (r *personRepository) GetManagerHistory(ctx context.Context, personID string) ([]person.ManagerHistory, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, person_id, manager_id, start_date, end_date
		FROM manager_history
		WHERE person_id = $1
		ORDER BY start_date DESC
	`, personID)
	if err != nil {
		return nil, fmt.Errorf("failed to get manager history: %w", err)
	}
	defer rows.Close()

	var history []person.ManagerHistory
	for rows.Next() {
		var h person.ManagerHistory
		if err := rows.Scan(&h.ID, &h.PersonID, &h.ManagerID, &h.StartDate, &h.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan manager history: %w", err)
		}
		history = append(history, h)
	}

	return history, nil
}

package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/project"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, client_id, name, code, is_active, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, client_id, name, code, is_active, start_date, end_date, created_at, updated_at
	`

	var created project.Project
	err := q.QueryRow(ctx, query,
		uuid.NewString(), p.ClientID, p.Name, p.Code, p.IsActive, p.StartDate, p.EndDate,
	).Scan(
		&created.ID, &created.ClientID, &created.Name, &created.Code,
		&created.IsActive, &created.StartDate, &created.EndDate,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_projects_client_name") {
			return project.Project{}, project.ErrProjectExists
		}
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.client_id, pr.name, pr.code, pr.is_active, pr.start_date,
			   pr.end_date, pr.created_at, pr.updated_at, c.name
		FROM projects pr
		JOIN clients c ON pr.client_id = c.id
		WHERE pr.id = $1
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Code, &p.IsActive, &p.StartDate,
		&p.EndDate, &p.CreatedAt, &p.UpdatedAt, &p.ClientName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (r *projectRepository) GetByClientAndName(ctx context.Context, clientID, name string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, client_id, name, code, is_active, start_date, end_date, created_at, updated_at
		FROM projects
		WHERE client_id = $1 AND name = $2
	`

	var p project.Project
	err := q.QueryRow(ctx, query, clientID, name).Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Code, &p.IsActive, &p.StartDate,
		&p.EndDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (r *projectRepository) List(ctx context.Context, activeOnly bool) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.client_id, pr.name, pr.code, pr.is_active, pr.start_date,
			   pr.end_date, pr.created_at, pr.updated_at, c.name
		FROM projects pr
		JOIN clients c ON pr.client_id = c.id
	`
	if activeOnly {
		query += " WHERE pr.is_active = true"
	}
	query += " ORDER BY c.name, pr.name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(
			&p.ID, &p.ClientID, &p.Name, &p.Code, &p.IsActive, &p.StartDate,
			&p.EndDate, &p.CreatedAt, &p.UpdatedAt, &p.ClientName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $2, code = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, p.ID, p.Name, p.Code, p.IsActive).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to update project: %w", err)
	}

	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM projects WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// ========== PROJECT COSTS ==========

type costRepository struct {
	db *database.DB
}

func NewCostRepository(db *database.DB) project.CostRepository {
	return &costRepository{db: db}
}

func (r *costRepository) Upsert(ctx context.Context, c project.ProjectCost) (project.ProjectCost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO project_costs (id, project_id, month, type, amount)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (project_id, month, type) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = NOW()
		RETURNING id, project_id, month, type, amount, created_at, updated_at
	`

	var out project.ProjectCost
	err := q.QueryRow(ctx, query,
		uuid.NewString(), c.ProjectID, c.Month, c.Type, c.Amount,
	).Scan(
		&out.ID, &out.ProjectID, &out.Month, &out.Type, &out.Amount,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return project.ProjectCost{}, fmt.Errorf("failed to upsert project cost: %w", err)
	}

	return out, nil
}

func (r *costRepository) ListByMonth(ctx context.Context, month time.Time) ([]project.ProjectCost, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, project_id, month, type, amount, created_at, updated_at
		FROM project_costs
		WHERE month = $1
	`, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list project costs: %w", err)
	}
	defer rows.Close()

	return scanCosts(rows)
}

func (r *costRepository) ListByProject(ctx context.Context, projectID string, from, to time.Time) ([]project.ProjectCost, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, project_id, month, type, amount, created_at, updated_at
		FROM project_costs
		WHERE project_id = $1 AND month BETWEEN $2 AND $3
		ORDER BY month
	`, projectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list project costs: %w", err)
	}
	defer rows.Close()

	return scanCosts(rows)
}

func scanCosts(rows pgx.Rows) ([]project.ProjectCost, error) {
	var costs []project.ProjectCost
	for rows.Next() {
		var c project.ProjectCost
		if err := rows.Scan(
			&c.ID, &c.ProjectID, &c.Month, &c.Type, &c.Amount,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project cost: %w", err)
		}
		costs = append(costs, c)
	}
	return costs, nil
}

func (r *costRepository) ReplaceForMonth(ctx context.Context, month time.Time, costs []project.ProjectCost) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM project_costs WHERE month = $1`, month); err != nil {
		return fmt.Errorf("failed to clear project costs for month: %w", err)
	}

	for _, c := range costs {
		_, err := q.Exec(ctx, `
			INSERT INTO project_costs (id, project_id, month, type, amount)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.NewString(), c.ProjectID, month, c.Type, c.Amount)
		if err != nil {
			return fmt.Errorf("failed to insert project cost: %w", err)
		}
	}

	return nil
}

func (r *costRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM project_costs WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.ErrProjectCostNotFound
		}
		return fmt.Errorf("failed to delete project cost: %w", err)
	}

	return nil
}

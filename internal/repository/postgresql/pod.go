package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/pod"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type podRepository struct {
	db *database.DB
}

func NewPodRepository(db *database.DB) pod.PodRepository {
	return &podRepository{db: db}
}

func (r *podRepository) Create(ctx context.Context, p pod.FinancialPod) (pod.FinancialPod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO financial_pods (id, name, leader_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, leader_id, created_at, updated_at
	`

	var created pod.FinancialPod
	err := q.QueryRow(ctx, query, uuid.NewString(), p.Name, p.LeaderID).Scan(
		&created.ID, &created.Name, &created.LeaderID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_financial_pods_name") {
			return pod.FinancialPod{}, pod.ErrPodNameExists
		}
		return pod.FinancialPod{}, fmt.Errorf("failed to create pod: %w", err)
	}

	return created, nil
}

func (r *podRepository) GetByID(ctx context.Context, id string) (pod.FinancialPod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT fp.id, fp.name, fp.leader_id, fp.created_at, fp.updated_at, p.full_name
		FROM financial_pods fp
		JOIN people p ON p.id = fp.leader_id
		WHERE fp.id = $1
	`

	var found pod.FinancialPod
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.Name, &found.LeaderID, &found.CreatedAt, &found.UpdatedAt,
		&found.LeaderName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pod.FinancialPod{}, pod.ErrPodNotFound
		}
		return pod.FinancialPod{}, fmt.Errorf("failed to get pod: %w", err)
	}

	return found, nil
}

func (r *podRepository) List(ctx context.Context) ([]pod.FinancialPod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT fp.id, fp.name, fp.leader_id, fp.created_at, fp.updated_at, p.full_name
		FROM financial_pods fp
		JOIN people p ON p.id = fp.leader_id
		ORDER BY fp.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}
	defer rows.Close()

	var pods []pod.FinancialPod
	for rows.Next() {
		var p pod.FinancialPod
		err := rows.Scan(&p.ID, &p.Name, &p.LeaderID, &p.CreatedAt, &p.UpdatedAt, &p.LeaderName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pod: %w", err)
		}
		pods = append(pods, p)
	}

	return pods, nil
}

func (r *podRepository) Update(ctx context.Context, p pod.FinancialPod) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE financial_pods
		SET name = $2, leader_id = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, p.ID, p.Name, p.LeaderID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pod.ErrPodNotFound
		}
		if strings.Contains(err.Error(), "uk_financial_pods_name") {
			return pod.ErrPodNameExists
		}
		return fmt.Errorf("failed to update pod: %w", err)
	}

	return nil
}

func (r *podRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM financial_pods WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pod.ErrPodNotFound
		}
		return fmt.Errorf("failed to delete pod: %w", err)
	}

	return nil
}

func (r *podRepository) AddMembership(ctx context.Context, m pod.Membership) (pod.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pod_memberships (id, pod_id, person_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, pod_id, person_id, start_date, end_date
	`

	var created pod.Membership
	err := q.QueryRow(ctx, query, uuid.NewString(), m.PodID, m.PersonID, m.StartDate, m.EndDate).Scan(
		&created.ID, &created.PodID, &created.PersonID, &created.StartDate, &created.EndDate,
	)
	if err != nil {
		return pod.Membership{}, fmt.Errorf("failed to add pod membership: %w", err)
	}

	return created, nil
}

func (r *podRepository) EndMembership(ctx context.Context, id string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE pod_memberships SET end_date = $2 WHERE id = $1 RETURNING id
	`, id, endDate).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pod.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to end pod membership: %w", err)
	}

	return nil
}

func (r *podRepository) ListMemberships(ctx context.Context, podID string, activeIn *time.Time) ([]pod.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pm.id, pm.pod_id, pm.person_id, pm.start_date, pm.end_date, p.full_name
		FROM pod_memberships pm
		JOIN people p ON p.id = pm.person_id
		WHERE pm.pod_id = $1
	`
	args := []interface{}{podID}
	if activeIn != nil {
		lastOfMonth := activeIn.AddDate(0, 1, -1)
		query += ` AND pm.start_date <= $2 AND (pm.end_date IS NULL OR pm.end_date >= $3)`
		args = append(args, lastOfMonth, *activeIn)
	}
	query += ` ORDER BY pm.start_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pod memberships: %w", err)
	}
	defer rows.Close()

	var memberships []pod.Membership
	for rows.Next() {
		var m pod.Membership
		err := rows.Scan(&m.ID, &m.PodID, &m.PersonID, &m.StartDate, &m.EndDate, &m.PersonName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pod membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	return memberships, nil
}

func (r *podRepository) AddProjectMapping(ctx context.Context, m pod.ProjectMapping) (pod.ProjectMapping, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pod_project_mappings (id, pod_id, project_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, pod_id, project_id, start_date, end_date
	`

	var created pod.ProjectMapping
	err := q.QueryRow(ctx, query, uuid.NewString(), m.PodID, m.ProjectID, m.StartDate, m.EndDate).Scan(
		&created.ID, &created.PodID, &created.ProjectID, &created.StartDate, &created.EndDate,
	)
	if err != nil {
		return pod.ProjectMapping{}, fmt.Errorf("failed to add pod project mapping: %w", err)
	}

	return created, nil
}

func (r *podRepository) EndProjectMapping(ctx context.Context, id string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx, `
		UPDATE pod_project_mappings SET end_date = $2 WHERE id = $1 RETURNING id
	`, id, endDate).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pod.ErrMappingNotFound
		}
		return fmt.Errorf("failed to end pod project mapping: %w", err)
	}

	return nil
}

func (r *podRepository) ListProjectMappings(ctx context.Context, podID string, activeIn *time.Time) ([]pod.ProjectMapping, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pm.id, pm.pod_id, pm.project_id, pm.start_date, pm.end_date, pr.name
		FROM pod_project_mappings pm
		JOIN projects pr ON pr.id = pm.project_id
		WHERE pm.pod_id = $1
	`
	args := []interface{}{podID}
	if activeIn != nil {
		lastOfMonth := activeIn.AddDate(0, 1, -1)
		query += ` AND pm.start_date <= $2 AND (pm.end_date IS NULL OR pm.end_date >= $3)`
		args = append(args, lastOfMonth, *activeIn)
	}
	query += ` ORDER BY pm.start_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pod project mappings: %w", err)
	}
	defer rows.Close()

	var mappings []pod.ProjectMapping
	for rows.Next() {
		var m pod.ProjectMapping
		err := rows.Scan(&m.ID, &m.PodID, &m.ProjectID, &m.StartDate, &m.EndDate, &m.ProjectName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pod project mapping: %w", err)
		}
		mappings = append(mappings, m)
	}

	return mappings, nil
}

package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/dataprecision/margindesk-sub001/internal/domain/client"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (id, name, contact_email, country, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, contact_email, country, is_active, created_at, updated_at
	`

	var created client.Client
	err := q.QueryRow(ctx, query,
		uuid.NewString(), c.Name, c.ContactEmail, c.Country, c.IsActive,
	).Scan(
		&created.ID, &created.Name, &created.ContactEmail, &created.Country,
		&created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_clients_name") {
			return client.Client{}, client.ErrClientExists
		}
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return created, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	return r.getBy(ctx, "id", id)
}

func (r *clientRepository) GetByName(ctx context.Context, name string) (client.Client, error) {
	return r.getBy(ctx, "name", name)
}

func (r *clientRepository) getBy(ctx context.Context, column, value string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, name, contact_email, country, is_active, created_at, updated_at
		FROM clients
		WHERE %s = $1
	`, column)

	var c client.Client
	err := q.QueryRow(ctx, query, value).Scan(
		&c.ID, &c.Name, &c.ContactEmail, &c.Country, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) List(ctx context.Context, activeOnly bool) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact_email, country, is_active, created_at, updated_at
		FROM clients
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.ContactEmail, &c.Country, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, c client.Client) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET name = $2, contact_email = $3, country = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, c.ID, c.Name, c.ContactEmail, c.Country, c.IsActive).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return client.ErrClientNotFound
		}
		return fmt.Errorf("failed to update client: %w", err)
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM clients WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return client.ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}

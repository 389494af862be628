package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dataprecision/margindesk-sub001/internal/domain/integration"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type integrationSettingsRepository struct {
	db *database.DB
}

func NewIntegrationSettingsRepository(db *database.DB) integration.SettingsRepository {
	return &integrationSettingsRepository{db: db}
}

const settingsColumns = `id, name, access_token, refresh_token, api_domain, expires_at, created_at, updated_at`

func scanSettings(row pgx.Row) (integration.Settings, error) {
	var s integration.Settings
	err := row.Scan(
		&s.ID, &s.Name, &s.AccessToken, &s.RefreshToken, &s.APIDomain,
		&s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *integrationSettingsRepository) Upsert(ctx context.Context, s integration.Settings) (integration.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO integration_settings (id, name, access_token, refresh_token,
			api_domain, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			api_domain = EXCLUDED.api_domain,
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()
		RETURNING %s
	`, settingsColumns)

	upserted, err := scanSettings(q.QueryRow(ctx, query,
		uuid.NewString(), s.Name, s.AccessToken, s.RefreshToken, s.APIDomain, s.ExpiresAt,
	))
	if err != nil {
		return integration.Settings{}, fmt.Errorf("failed to upsert integration settings: %w", err)
	}

	return upserted, nil
}

func (r *integrationSettingsRepository) GetByName(ctx context.Context, name string) (integration.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM integration_settings WHERE name = $1`, settingsColumns)

	s, err := scanSettings(q.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return integration.Settings{}, integration.ErrSettingsNotFound
		}
		return integration.Settings{}, fmt.Errorf("failed to get integration settings: %w", err)
	}

	return s, nil
}

func (r *integrationSettingsRepository) Delete(ctx context.Context, name string) error {
	q := GetQuerier(ctx, r.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM integration_settings WHERE name = $1 RETURNING id`, name).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return integration.ErrSettingsNotFound
		}
		return fmt.Errorf("failed to delete integration settings: %w", err)
	}

	return nil
}

// ========== AUDIT LOG ==========

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) integration.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Insert(ctx context.Context, entry integration.AuditLog) error {
	q := GetQuerier(ctx, r.db)

	detail, err := json.Marshal(entry.Detail)
	if err != nil {
		return fmt.Errorf("failed to marshal audit detail: %w", err)
	}

	query := `
		INSERT INTO audit_logs (id, actor_id, action, entity, entity_id, detail)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = q.Exec(ctx, query,
		uuid.NewString(), entry.ActorID, entry.Action, entry.Entity, entry.EntityID, detail,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}

	return nil
}

func (r *auditRepository) ListByEntity(ctx context.Context, entity, entityID string, limit int) ([]integration.AuditLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, actor_id, action, entity, entity_id, detail, created_at
		FROM audit_logs
		WHERE entity = $1 AND entity_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, entity, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var entries []integration.AuditLog
	for rows.Next() {
		var entry integration.AuditLog
		var detail []byte
		err := rows.Scan(
			&entry.ID, &entry.ActorID, &entry.Action, &entry.Entity,
			&entry.EntityID, &detail, &entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		if len(detail) > 0 {
			if err := json.Unmarshal(detail, &entry.Detail); err != nil {
				return nil, fmt.Errorf("failed to unmarshal audit detail: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

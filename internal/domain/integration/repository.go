package integration

import "context"

type SettingsRepository interface {
	// Upsert is keyed on the integration name.
	Upsert(ctx context.Context, s Settings) (Settings, error)
	GetByName(ctx context.Context, name string) (Settings, error)
	Delete(ctx context.Context, name string) error
}

type AuditRepository interface {
	Insert(ctx context.Context, entry AuditLog) error
	ListByEntity(ctx context.Context, entity, entityID string, limit int) ([]AuditLog, error)
}

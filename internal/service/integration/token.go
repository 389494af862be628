package integration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dataprecision/margindesk-sub001/internal/domain/integration"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/oauth"
	"golang.org/x/sync/singleflight"
)

// TokenManager hands out valid access tokens for the external platforms,
// refreshing stale ones. Concurrent callers needing a refresh for the same
// integration share one upstream refresh call.
type TokenManager struct {
	settingsRepo integration.SettingsRepository
	providers    map[string]oauth.ProviderService
	refreshGroup singleflight.Group
}

func NewTokenManager(settingsRepo integration.SettingsRepository, providers map[string]oauth.ProviderService) *TokenManager {
	return &TokenManager{
		settingsRepo: settingsRepo,
		providers:    providers,
	}
}

// AccessToken returns a usable access token and the API domain for the
// named integration. A failed refresh surfaces as not connected.
func (m *TokenManager) AccessToken(ctx context.Context, name string) (string, string, error) {
	settings, err := m.settingsRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, integration.ErrSettingsNotFound) {
			return "", "", integration.ErrNotConnected
		}
		return "", "", err
	}

	if !settings.NeedsRefresh(time.Now().UTC()) {
		return settings.AccessToken, settings.APIDomain, nil
	}

	refreshed, err, _ := m.refreshGroup.Do(name, func() (interface{}, error) {
		return m.refresh(ctx, name)
	})
	if err != nil {
		slog.Warn("Token refresh failed", "integration", name, "error", err)
		return "", "", integration.ErrNotConnected
	}

	s := refreshed.(integration.Settings)
	return s.AccessToken, s.APIDomain, nil
}

func (m *TokenManager) refresh(ctx context.Context, name string) (integration.Settings, error) {
	// Re-read inside the flight: a concurrent caller may have already
	// refreshed and persisted a fresh token.
	settings, err := m.settingsRepo.GetByName(ctx, name)
	if err != nil {
		return integration.Settings{}, err
	}
	if !settings.NeedsRefresh(time.Now().UTC()) {
		return settings, nil
	}

	provider, ok := m.providers[name]
	if !ok {
		return integration.Settings{}, integration.ErrUnknownProvider
	}

	token, err := provider.Refresh(ctx, settings.RefreshToken)
	if err != nil {
		return integration.Settings{}, fmt.Errorf("failed to refresh %s token: %w", name, err)
	}

	settings.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		settings.RefreshToken = token.RefreshToken
	}
	settings.ExpiresAt = token.Expiry

	saved, err := m.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		return integration.Settings{}, fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	slog.Info("Access token refreshed", "integration", name, "expires_at", saved.ExpiresAt)
	return saved, nil
}

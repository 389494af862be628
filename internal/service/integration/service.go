package integration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dataprecision/margindesk-sub001/internal/config"
	"github.com/dataprecision/margindesk-sub001/internal/domain/finance"
	"github.com/dataprecision/margindesk-sub001/internal/domain/integration"
	"github.com/dataprecision/margindesk-sub001/internal/domain/person"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/books"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/oauth"
	"github.com/dataprecision/margindesk-sub001/internal/pkg/peoplehub"
)

type IntegrationServiceImpl struct {
	settingsRepo integration.SettingsRepository
	billRepo     finance.BillRepository
	personRepo   person.PersonRepository
	auditRepo    integration.AuditRepository
	providers    map[string]oauth.ProviderService
	tokens       *TokenManager
	booksClient  *books.Client
	peopleClient *peoplehub.Client
	booksCfg     config.IntegrationConfig
	peopleCfg    config.IntegrationConfig
}

func NewIntegrationService(
	settingsRepo integration.SettingsRepository,
	billRepo finance.BillRepository,
	personRepo person.PersonRepository,
	auditRepo integration.AuditRepository,
	tokens *TokenManager,
	providers map[string]oauth.ProviderService,
	booksClient *books.Client,
	peopleClient *peoplehub.Client,
	booksCfg config.IntegrationConfig,
	peopleCfg config.IntegrationConfig,
) integration.Service {
	return &IntegrationServiceImpl{
		settingsRepo: settingsRepo,
		billRepo:     billRepo,
		personRepo:   personRepo,
		auditRepo:    auditRepo,
		providers:    providers,
		tokens:       tokens,
		booksClient:  booksClient,
		peopleClient: peopleClient,
		booksCfg:     booksCfg,
		peopleCfg:    peopleCfg,
	}
}

func (s *IntegrationServiceImpl) provider(name string) (oauth.ProviderService, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, integration.ErrUnknownProvider
	}
	return p, nil
}

// ConnectURL implements integration.Service.
func (s *IntegrationServiceImpl) ConnectURL(ctx context.Context, name string) (string, error) {
	p, err := s.provider(name)
	if err != nil {
		return "", err
	}
	return p.RedirectURL(p.GenerateState()), nil
}

// HandleCallback implements integration.Service.
func (s *IntegrationServiceImpl) HandleCallback(ctx context.Context, name, code string) error {
	p, err := s.provider(name)
	if err != nil {
		return err
	}

	token, err := p.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to complete %s authorization: %w", name, err)
	}

	apiDomain := s.booksCfg.APIDomain
	if name == integration.NamePeopleHub {
		apiDomain = s.peopleCfg.APIDomain
	}

	_, err = s.settingsRepo.Upsert(ctx, integration.Settings{
		Name:         name,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		APIDomain:    apiDomain,
		ExpiresAt:    token.Expiry,
	})
	if err != nil {
		return fmt.Errorf("failed to store %s settings: %w", name, err)
	}

	return nil
}

// Status implements integration.Service.
func (s *IntegrationServiceImpl) Status(ctx context.Context, name string) (integration.StatusResponse, error) {
	if _, err := s.provider(name); err != nil {
		return integration.StatusResponse{}, err
	}

	settings, err := s.settingsRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, integration.ErrSettingsNotFound) {
			return integration.StatusResponse{Name: name, Connected: false}, nil
		}
		return integration.StatusResponse{}, err
	}

	resp := integration.StatusResponse{
		Name:      name,
		Connected: true,
		APIDomain: settings.APIDomain,
		ExpiresAt: &settings.ExpiresAt,
	}

	runs, err := s.auditRepo.ListByEntity(ctx, "integration", name, 5)
	if err != nil {
		slog.Warn("Failed to load recent sync runs", "integration", name, "error", err)
		return resp, nil
	}
	for _, run := range runs {
		resp.RecentSyncs = append(resp.RecentSyncs, integration.SyncRunResponse{
			Detail:    run.Detail,
			CreatedAt: run.CreatedAt,
		})
	}

	return resp, nil
}

// Disconnect implements integration.Service.
func (s *IntegrationServiceImpl) Disconnect(ctx context.Context, name string) error {
	if _, err := s.provider(name); err != nil {
		return err
	}
	return s.settingsRepo.Delete(ctx, name)
}

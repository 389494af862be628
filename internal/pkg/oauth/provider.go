package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/dataprecision/margindesk-sub001/internal/config"
	"golang.org/x/oauth2"
)

// ProviderService wraps the authorization-code flow against one external
// platform. Both the books and peoplehub integrations go through this with
// different endpoints from configuration.
type ProviderService interface {
	// GenerateState generates a random state string for OAuth2 flows.
	GenerateState() string
	// RedirectURL generates the OAuth2 authorization URL with a state.
	RedirectURL(state string) string
	// Exchange trades an authorization code for a token.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// Refresh obtains a fresh access token from a refresh token.
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

type ProviderServiceImpl struct {
	config *oauth2.Config
}

func NewProviderService(cfg config.IntegrationConfig, scopes []string) ProviderService {
	return &ProviderServiceImpl{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
	}
}

// GenerateState generates a random state string for OAuth2 flows.
func (p *ProviderServiceImpl) GenerateState() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}

func (p *ProviderServiceImpl) RedirectURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (p *ProviderServiceImpl) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// Refresh forces a token refresh regardless of the stored token's expiry;
// callers decide when a refresh is due.
func (p *ProviderServiceImpl) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	source := p.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	return token, nil
}

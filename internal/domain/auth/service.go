package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	// Refresh validates a refresh token and issues a new token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

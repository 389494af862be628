package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrUserInactive       = errors.New("User account is inactive")
)

package user

import "errors"

var (
	ErrUserNotFound          = errors.New("User not found")
	ErrEmailExists           = errors.New("Email already registered")
	ErrAdminAccessRequired   = errors.New("Admin access required")
	ErrFinanceAccessRequired = errors.New("Finance access required")
	ErrManagerAccessRequired = errors.New("Manager access required")
)

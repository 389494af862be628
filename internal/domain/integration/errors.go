package integration

import "errors"

var (
	ErrNotConnected     = errors.New("Integration not connected")
	ErrSettingsNotFound = errors.New("Integration settings not found")
	ErrUnknownProvider  = errors.New("Unknown integration provider")
)

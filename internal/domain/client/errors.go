package client

import "errors"

var (
	ErrClientNotFound = errors.New("Client not found")
	ErrClientExists   = errors.New("Client name already exists")
)

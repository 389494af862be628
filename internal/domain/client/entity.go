package client

import "time"

type Client struct {
	ID           string
	Name         string
	ContactEmail *string
	Country      *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

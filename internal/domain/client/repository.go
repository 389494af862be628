package client

import "context"

type ClientRepository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	GetByName(ctx context.Context, name string) (Client, error)
	List(ctx context.Context, activeOnly bool) ([]Client, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id string) error
}

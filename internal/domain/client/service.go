package client

import "context"

type ClientService interface {
	Create(ctx context.Context, req CreateClientRequest) (Client, error)
	Get(ctx context.Context, id string) (Client, error)
	List(ctx context.Context, activeOnly bool) ([]Client, error)
	Update(ctx context.Context, req UpdateClientRequest) (Client, error)
	Delete(ctx context.Context, id string) error
}

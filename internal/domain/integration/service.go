package integration

import "context"

type Service interface {
	// ConnectURL starts the authorization-code flow for a provider.
	ConnectURL(ctx context.Context, name string) (string, error)
	// HandleCallback exchanges the authorization code and stores tokens.
	HandleCallback(ctx context.Context, name, code string) error
	Status(ctx context.Context, name string) (StatusResponse, error)
	Disconnect(ctx context.Context, name string) error

	// SyncBooks pulls vendor bills from the accounting platform.
	SyncBooks(ctx context.Context) (SyncResult, error)
	// SyncPeopleHub pulls employee and leave records from the HR platform.
	SyncPeopleHub(ctx context.Context) (SyncResult, error)
}

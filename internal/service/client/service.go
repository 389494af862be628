package client

import (
	"context"

	"github.com/dataprecision/margindesk-sub001/internal/domain/client"
)

type ClientServiceImpl struct {
	clientRepo client.ClientRepository
}

func NewClientService(clientRepo client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{clientRepo: clientRepo}
}

// Create implements client.ClientService.
func (s *ClientServiceImpl) Create(ctx context.Context, req client.CreateClientRequest) (client.Client, error) {
	if err := req.Validate(); err != nil {
		return client.Client{}, err
	}

	return s.clientRepo.Create(ctx, client.Client{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Country:      req.Country,
		IsActive:     true,
	})
}

// Get implements client.ClientService.
func (s *ClientServiceImpl) Get(ctx context.Context, id string) (client.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

// List implements client.ClientService.
func (s *ClientServiceImpl) List(ctx context.Context, activeOnly bool) ([]client.Client, error) {
	return s.clientRepo.List(ctx, activeOnly)
}

// Update implements client.ClientService.
func (s *ClientServiceImpl) Update(ctx context.Context, req client.UpdateClientRequest) (client.Client, error) {
	c, err := s.clientRepo.GetByID(ctx, req.ID)
	if err != nil {
		return client.Client{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.ContactEmail != nil {
		c.ContactEmail = req.ContactEmail
	}
	if req.Country != nil {
		c.Country = req.Country
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.clientRepo.Update(ctx, c); err != nil {
		return client.Client{}, err
	}
	return c, nil
}

// Delete implements client.ClientService.
func (s *ClientServiceImpl) Delete(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}

package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type ClientService interface {
	CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, id string) (*dto.ClientResponse, error)
	ListClients(ctx context.Context, filter *types.ClientFilter) (*dto.ListClientsResponse, error)
	UpdateClient(ctx context.Context, id string, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	ArchiveClient(ctx context.Context, id string) error
}

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{ServiceParams: params}
}

func (s *clientService) CreateClient(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToClient(ctx)
	if err := s.ClientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("created client", "client_id", c.ID, "name", c.Name)
	return dto.NewClientResponse(c), nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewClientResponse(c), nil
}

func (s *clientService) ListClients(ctx context.Context, filter *types.ClientFilter) (*dto.ListClientsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultClientFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.ClientRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.ClientRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListClientsResponse{
		Items: make([]*dto.ClientResponse, len(items)),
	}
	for i, c := range items {
		resp.Items[i] = dto.NewClientResponse(c)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id string, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(c)
	if err := s.ClientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated client", "client_id", c.ID, "version", c.Version)
	return dto.NewClientResponse(c), nil
}

func (s *clientService) ArchiveClient(ctx context.Context, id string) error {
	if err := s.ClientRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived client", "client_id", id)
	return nil
}

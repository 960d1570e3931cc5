package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, error)
	GetAccount(ctx context.Context, id string) (*dto.AccountResponse, error)
	ListAccounts(ctx context.Context, filter *types.AccountFilter) (*dto.ListAccountsResponse, error)
	UpdateAccount(ctx context.Context, id string, req *dto.UpdateAccountRequest) (*dto.AccountResponse, error)
	ArchiveAccount(ctx context.Context, id string) error
}

type accountService struct {
	ServiceParams
}

func NewAccountService(params ServiceParams) AccountService {
	return &accountService{ServiceParams: params}
}

func (s *accountService) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureParentAccount(ctx, req.ParentAccountID); err != nil {
		return nil, err
	}

	a := req.ToAccount(ctx)
	if err := s.AccountRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.Logger.Infow("created account", "account_id", a.ID, "code", a.Code)
	return dto.NewAccountResponse(a), nil
}

func (s *accountService) GetAccount(ctx context.Context, id string) (*dto.AccountResponse, error) {
	a, err := s.AccountRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewAccountResponse(a), nil
}

func (s *accountService) ListAccounts(ctx context.Context, filter *types.AccountFilter) (*dto.ListAccountsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultAccountFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.AccountRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.AccountRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListAccountsResponse{
		Items: make([]*dto.AccountResponse, len(items)),
	}
	for i, a := range items {
		resp.Items[i] = dto.NewAccountResponse(a)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, id string, req *dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.AccountRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		if *req.ParentAccountID == id {
			return nil, ierr.NewError("account cannot be its own parent").
				WithHint("Choose a different parent account").
				Mark(ierr.ErrValidation)
		}
		if err := s.ensureParentAccount(ctx, req.ParentAccountID); err != nil {
			return nil, err
		}
	}

	req.Apply(a)
	if err := s.AccountRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated account", "account_id", a.ID, "version", a.Version)
	return dto.NewAccountResponse(a), nil
}

func (s *accountService) ArchiveAccount(ctx context.Context, id string) error {
	if err := s.AccountRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived account", "account_id", id)
	return nil
}

func (s *accountService) ensureParentAccount(ctx context.Context, parentID *string) error {
	if parentID == nil || *parentID == "" {
		return nil
	}
	if _, err := s.AccountRepo.Get(ctx, *parentID); err != nil {
		if ierr.IsNotFound(err) {
			return ierr.NewError("parent account not found").
				WithHintf("Account %s does not exist", *parentID).
				Mark(ierr.ErrValidation)
		}
		return err
	}
	return nil
}

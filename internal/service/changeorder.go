package service

import (
	"context"
	"time"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type ChangeOrderService interface {
	CreateChangeOrder(ctx context.Context, req *dto.CreateChangeOrderRequest) (*dto.ChangeOrderResponse, error)
	GetChangeOrder(ctx context.Context, id string) (*dto.ChangeOrderResponse, error)
	ListChangeOrders(ctx context.Context, filter *types.ChangeOrderFilter) (*dto.ListChangeOrdersResponse, error)
	UpdateChangeOrder(ctx context.Context, id string, req *dto.UpdateChangeOrderRequest) (*dto.ChangeOrderResponse, error)
	ArchiveChangeOrder(ctx context.Context, id string) error
}

type changeOrderService struct {
	ServiceParams
}

func NewChangeOrderService(params ServiceParams) ChangeOrderService {
	return &changeOrderService{ServiceParams: params}
}

func (s *changeOrderService) CreateChangeOrder(ctx context.Context, req *dto.CreateChangeOrderRequest) (*dto.ChangeOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureJob(ctx, req.JobID); err != nil {
		return nil, err
	}

	co, err := req.ToChangeOrder(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ChangeOrderRepo.Create(ctx, co); err != nil {
		return nil, err
	}

	s.Logger.Infow("created change order", "change_order_id", co.ID, "job_id", co.JobID)
	return dto.NewChangeOrderResponse(co), nil
}

func (s *changeOrderService) GetChangeOrder(ctx context.Context, id string) (*dto.ChangeOrderResponse, error) {
	co, err := s.ChangeOrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewChangeOrderResponse(co), nil
}

func (s *changeOrderService) ListChangeOrders(ctx context.Context, filter *types.ChangeOrderFilter) (*dto.ListChangeOrdersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultChangeOrderFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.ChangeOrderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.ChangeOrderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListChangeOrdersResponse{
		Items: make([]*dto.ChangeOrderResponse, len(items)),
	}
	for i, co := range items {
		resp.Items[i] = dto.NewChangeOrderResponse(co)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *changeOrderService) UpdateChangeOrder(ctx context.Context, id string, req *dto.UpdateChangeOrderRequest) (*dto.ChangeOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	co, err := s.ChangeOrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(co); err != nil {
		return nil, err
	}
	// Approval is stamped once, when the status first transitions.
	if co.ChangeOrderStatus == types.ChangeOrderStatusApproved && co.ApprovedAt == nil {
		now := time.Now().UTC()
		co.ApprovedAt = &now
	}
	if err := s.ChangeOrderRepo.Update(ctx, co); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated change order", "change_order_id", co.ID, "version", co.Version)
	return dto.NewChangeOrderResponse(co), nil
}

func (s *changeOrderService) ArchiveChangeOrder(ctx context.Context, id string) error {
	if err := s.ChangeOrderRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived change order", "change_order_id", id)
	return nil
}

package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type PurchaseOrderService interface {
	CreatePurchaseOrder(ctx context.Context, req *dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	GetPurchaseOrder(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error)
	ListPurchaseOrders(ctx context.Context, filter *types.PurchaseOrderFilter) (*dto.ListPurchaseOrdersResponse, error)
	UpdatePurchaseOrder(ctx context.Context, id string, req *dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	ArchivePurchaseOrder(ctx context.Context, id string) error
}

type purchaseOrderService struct {
	ServiceParams
}

func NewPurchaseOrderService(params ServiceParams) PurchaseOrderService {
	return &purchaseOrderService{ServiceParams: params}
}

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req *dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureJob(ctx, req.JobID); err != nil {
		return nil, err
	}
	if err := s.ensureVendor(ctx, req.VendorID); err != nil {
		return nil, err
	}

	po, err := req.ToPurchaseOrder(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.PurchaseOrderRepo.Create(ctx, po); err != nil {
		return nil, err
	}

	s.Logger.Infow("created purchase order", "purchase_order_id", po.ID, "job_id", po.JobID, "vendor_id", po.VendorID)
	return dto.NewPurchaseOrderResponse(po), nil
}

func (s *purchaseOrderService) GetPurchaseOrder(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	po, err := s.PurchaseOrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPurchaseOrderResponse(po), nil
}

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context, filter *types.PurchaseOrderFilter) (*dto.ListPurchaseOrdersResponse, error) {
	if filter == nil {
		filter = types.NewDefaultPurchaseOrderFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	items, err := s.PurchaseOrderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.PurchaseOrderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListPurchaseOrdersResponse{
		Items: make([]*dto.PurchaseOrderResponse, len(items)),
	}
	for i, po := range items {
		resp.Items[i] = dto.NewPurchaseOrderResponse(po)
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}

func (s *purchaseOrderService) UpdatePurchaseOrder(ctx context.Context, id string, req *dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	po, err := s.PurchaseOrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.VendorID != nil && *req.VendorID != "" && *req.VendorID != po.VendorID {
		if err := s.ensureVendor(ctx, *req.VendorID); err != nil {
			return nil, err
		}
	}

	if err := req.Apply(po); err != nil {
		return nil, err
	}
	if err := s.PurchaseOrderRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated purchase order", "purchase_order_id", po.ID, "version", po.Version)
	return dto.NewPurchaseOrderResponse(po), nil
}

func (s *purchaseOrderService) ArchivePurchaseOrder(ctx context.Context, id string) error {
	if err := s.PurchaseOrderRepo.Archive(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("archived purchase order", "purchase_order_id", id)
	return nil
}

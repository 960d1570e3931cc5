package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/siteledger/siteledger/internal/api/dto"
	ierr "github.com/siteledger/siteledger/internal/errors"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/stretchr/testify/suite"
)

type PurchaseOrderServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  PurchaseOrderService
	jobID    string
	vendorID string
}

func TestPurchaseOrderService(t *testing.T) {
	suite.Run(t, new(PurchaseOrderServiceSuite))
}

func (s *PurchaseOrderServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewPurchaseOrderService(params)

	job, err := NewJobService(params).CreateJob(s.GetContext(), &dto.CreateJobRequest{
		Name:           "PO Host Job",
		ContractAmount: "900000",
	})
	s.Require().NoError(err)
	s.jobID = job.ID

	vendor, err := NewVendorService(params).CreateVendor(s.GetContext(), &dto.CreateVendorRequest{
		Name:  "Ridge Line Concrete",
		Trade: "concrete",
	})
	s.Require().NoError(err)
	s.vendorID = vendor.ID
}

func (s *PurchaseOrderServiceSuite) TestCreatePurchaseOrderDefaultsDraft() {
	resp, err := s.service.CreatePurchaseOrder(s.GetContext(), &dto.CreatePurchaseOrderRequest{
		JobID:    s.jobID,
		VendorID: s.vendorID,
		Amount:   "48250.75",
	})
	s.NoError(err)
	s.Equal(types.PurchaseOrderStatusDraft, resp.PurchaseOrderStatus)
	s.Equal("48250.75", resp.Amount.String())
	s.Nil(resp.IssuedAt)
}

func (s *PurchaseOrderServiceSuite) TestIssuingStampsIssuedAt() {
	created, err := s.service.CreatePurchaseOrder(s.GetContext(), &dto.CreatePurchaseOrderRequest{
		JobID:    s.jobID,
		VendorID: s.vendorID,
		Amount:   "12000",
	})
	s.NoError(err)

	issued, err := s.service.UpdatePurchaseOrder(s.GetContext(), created.ID, &dto.UpdatePurchaseOrderRequest{
		PurchaseOrderStatus: lo.ToPtr(types.PurchaseOrderStatusIssued),
		Version:             1,
	})
	s.NoError(err)
	s.NotNil(issued.IssuedAt)

	closed, err := s.service.UpdatePurchaseOrder(s.GetContext(), created.ID, &dto.UpdatePurchaseOrderRequest{
		PurchaseOrderStatus: lo.ToPtr(types.PurchaseOrderStatusClosed),
		Version:             2,
	})
	s.NoError(err)
	s.Equal(issued.IssuedAt, closed.IssuedAt)
}

func (s *PurchaseOrderServiceSuite) TestCreateRejectsUnknownVendor() {
	_, err := s.service.CreatePurchaseOrder(s.GetContext(), &dto.CreatePurchaseOrderRequest{
		JobID:    s.jobID,
		VendorID: "vendor_missing",
		Amount:   "100",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PurchaseOrderServiceSuite) TestListFiltersByVendor() {
	_, err := s.service.CreatePurchaseOrder(s.GetContext(), &dto.CreatePurchaseOrderRequest{
		JobID:    s.jobID,
		VendorID: s.vendorID,
		Amount:   "1000",
	})
	s.NoError(err)

	resp, err := s.service.ListPurchaseOrders(s.GetContext(), &types.PurchaseOrderFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		VendorID:    s.vendorID,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)

	empty, err := s.service.ListPurchaseOrders(s.GetContext(), &types.PurchaseOrderFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		VendorID:    "vendor_other",
	})
	s.NoError(err)
	s.Empty(empty.Items)
}

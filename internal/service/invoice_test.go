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

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InvoiceService
	jobID   string
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewInvoiceService(params)

	job, err := NewJobService(params).CreateJob(s.GetContext(), &dto.CreateJobRequest{Name: "Billed Job"})
	s.Require().NoError(err)
	s.jobID = job.ID
}

func (s *InvoiceServiceSuite) TestCreateInvoiceBalance() {
	resp, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		JobID:      s.jobID,
		Amount:     "15000.25",
		AmountPaid: lo.ToPtr("5000"),
	})
	s.NoError(err)
	s.Equal(types.InvoiceStatusDraft, resp.InvoiceStatus)
	s.Equal("10000.25", resp.BalanceDue.String())
	s.Equal("$15,000.25", resp.AmountDisplay)
	s.Equal("$10,000.25", resp.BalanceDueDisplay)
	s.Equal("Not specified", resp.DueDateDisplay)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceRequiresAmount() {
	_, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		JobID: s.jobID,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestMarkingPaidStampsPaidAt() {
	created, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		JobID:  s.jobID,
		Amount: "8000",
	})
	s.NoError(err)
	s.Nil(created.PaidAt)

	paid, err := s.service.UpdateInvoice(s.GetContext(), created.ID, &dto.UpdateInvoiceRequest{
		InvoiceStatus: lo.ToPtr(types.InvoiceStatusPaid),
		AmountPaid:    lo.ToPtr("8000"),
		Version:       1,
	})
	s.NoError(err)
	s.NotNil(paid.PaidAt)
	s.True(paid.BalanceDue.IsZero())
}

func (s *InvoiceServiceSuite) TestOverdueFilter() {
	_, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		JobID:         s.jobID,
		Amount:        "1000",
		DueDate:       lo.ToPtr("2020-01-31"),
		InvoiceStatus: types.InvoiceStatusSent,
	})
	s.NoError(err)
	_, err = s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		JobID:         s.jobID,
		Amount:        "2000",
		DueDate:       lo.ToPtr("2099-01-31"),
		InvoiceStatus: types.InvoiceStatusSent,
	})
	s.NoError(err)
	// Draft invoices never count as overdue, whatever the due date.
	_, err = s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		JobID:   s.jobID,
		Amount:  "3000",
		DueDate: lo.ToPtr("2020-01-31"),
	})
	s.NoError(err)

	resp, err := s.service.ListInvoices(s.GetContext(), &types.InvoiceFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		OverdueOnly: true,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("1000", resp.Items[0].Amount.String())
}

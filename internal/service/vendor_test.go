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

type VendorServiceSuite struct {
	testutil.BaseServiceTestSuite
	service VendorService
}

func TestVendorService(t *testing.T) {
	suite.Run(t, new(VendorServiceSuite))
}

func (s *VendorServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewVendorService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *VendorServiceSuite) TestCreateVendor() {
	resp, err := s.service.CreateVendor(s.GetContext(), &dto.CreateVendorRequest{
		Name:        "Cascade Plumbing",
		ContactName: "Mia Torres",
		Email:       "mia@cascadeplumbing.com",
		Trade:       "plumbing",
		LicenseNo:   "PL-82741",
	})
	s.NoError(err)
	s.Equal("Cascade Plumbing", resp.Name)
	s.Equal("plumbing", resp.Trade)
	s.Equal(1, resp.Version)
}

func (s *VendorServiceSuite) TestCreateVendorRejectsBadEmail() {
	_, err := s.service.CreateVendor(s.GetContext(), &dto.CreateVendorRequest{
		Name:  "Bad Email Vendor",
		Email: "not-an-email",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *VendorServiceSuite) TestListFiltersByTrade() {
	_, err := s.service.CreateVendor(s.GetContext(), &dto.CreateVendorRequest{
		Name:  "Voltline Electric",
		Trade: "electrical",
	})
	s.NoError(err)
	_, err = s.service.CreateVendor(s.GetContext(), &dto.CreateVendorRequest{
		Name:  "Cascade Plumbing",
		Trade: "plumbing",
	})
	s.NoError(err)

	resp, err := s.service.ListVendors(s.GetContext(), &types.VendorFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		Trade:       "electrical",
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Voltline Electric", resp.Items[0].Name)
}

func (s *VendorServiceSuite) TestUpdateVendorChecksVersion() {
	created, err := s.service.CreateVendor(s.GetContext(), &dto.CreateVendorRequest{
		Name: "Summit Roofing",
	})
	s.NoError(err)

	updated, err := s.service.UpdateVendor(s.GetContext(), created.ID, &dto.UpdateVendorRequest{
		Phone:   lo.ToPtr("555-0142"),
		Version: 1,
	})
	s.NoError(err)
	s.Equal(2, updated.Version)

	_, err = s.service.UpdateVendor(s.GetContext(), created.ID, &dto.UpdateVendorRequest{
		Phone:   lo.ToPtr("555-0199"),
		Version: 1,
	})
	s.Error(err)
	s.True(ierr.IsVersionConflict(err))
}

func (s *VendorServiceSuite) TestArchiveVendor() {
	created, err := s.service.CreateVendor(s.GetContext(), &dto.CreateVendorRequest{
		Name: "Short Lived LLC",
	})
	s.NoError(err)

	s.NoError(s.service.ArchiveVendor(s.GetContext(), created.ID))

	_, err = s.service.GetVendor(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

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

type ClientServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ClientService
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceSuite))
}

func (s *ClientServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewClientService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *ClientServiceSuite) TestCreateClient() {
	resp, err := s.service.CreateClient(s.GetContext(), &dto.CreateClientRequest{
		Name:        "Lakeshore Development LLC",
		ContactName: "Priya Nair",
		Email:       "priya@lakeshoredev.com",
	})
	s.NoError(err)
	s.Equal("Lakeshore Development LLC", resp.Name)
	s.Equal(1, resp.Version)
}

func (s *ClientServiceSuite) TestCreateClientRequiresName() {
	_, err := s.service.CreateClient(s.GetContext(), &dto.CreateClientRequest{
		Email: "noname@example.com",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ClientServiceSuite) TestListClients() {
	for _, name := range []string{"Owner A", "Owner B", "Owner C"} {
		_, err := s.service.CreateClient(s.GetContext(), &dto.CreateClientRequest{Name: name})
		s.NoError(err)
	}

	resp, err := s.service.ListClients(s.GetContext(), types.NewDefaultClientFilter())
	s.NoError(err)
	s.Len(resp.Items, 3)
	s.Equal(3, resp.Pagination.Total)
}

func (s *ClientServiceSuite) TestUpdateClient() {
	created, err := s.service.CreateClient(s.GetContext(), &dto.CreateClientRequest{
		Name: "Harborview Partners",
	})
	s.NoError(err)

	updated, err := s.service.UpdateClient(s.GetContext(), created.ID, &dto.UpdateClientRequest{
		Notes:   lo.ToPtr("Prefers weekly progress calls."),
		Version: 1,
	})
	s.NoError(err)
	s.Equal("Prefers weekly progress calls.", updated.Notes)
	s.Equal(2, updated.Version)
}

func (s *ClientServiceSuite) TestArchiveClientHidesFromList() {
	created, err := s.service.CreateClient(s.GetContext(), &dto.CreateClientRequest{
		Name: "One Project Wonder",
	})
	s.NoError(err)

	s.NoError(s.service.ArchiveClient(s.GetContext(), created.ID))

	resp, err := s.service.ListClients(s.GetContext(), types.NewDefaultClientFilter())
	s.NoError(err)
	s.Empty(resp.Items)
}

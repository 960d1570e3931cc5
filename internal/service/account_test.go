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

type AccountServiceSuite struct {
	testutil.BaseServiceTestSuite
	service AccountService
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewAccountService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *AccountServiceSuite) TestCreateAccount() {
	resp, err := s.service.CreateAccount(s.GetContext(), &dto.CreateAccountRequest{
		Code:        "5000",
		Name:        "Cost of Construction",
		AccountType: types.AccountTypeExpense,
	})
	s.NoError(err)
	s.Equal("5000", resp.Code)
	s.Equal(types.AccountTypeExpense, resp.AccountType)
}

func (s *AccountServiceSuite) TestCreateRejectsInvalidAccountType() {
	_, err := s.service.CreateAccount(s.GetContext(), &dto.CreateAccountRequest{
		Code:        "9999",
		Name:        "Bad Type",
		AccountType: types.AccountType("revenue"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AccountServiceSuite) TestCreateRejectsUnknownParent() {
	_, err := s.service.CreateAccount(s.GetContext(), &dto.CreateAccountRequest{
		Code:            "5100",
		Name:            "Orphan Subaccount",
		AccountType:     types.AccountTypeExpense,
		ParentAccountID: lo.ToPtr("acct_missing"),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *AccountServiceSuite) TestSubaccountsListByParent() {
	parent, err := s.service.CreateAccount(s.GetContext(), &dto.CreateAccountRequest{
		Code:        "5000",
		Name:        "Cost of Construction",
		AccountType: types.AccountTypeExpense,
	})
	s.NoError(err)

	_, err = s.service.CreateAccount(s.GetContext(), &dto.CreateAccountRequest{
		Code:            "5010",
		Name:            "Site Work",
		AccountType:     types.AccountTypeExpense,
		ParentAccountID: lo.ToPtr(parent.ID),
	})
	s.NoError(err)
	_, err = s.service.CreateAccount(s.GetContext(), &dto.CreateAccountRequest{
		Code:        "4000",
		Name:        "Contract Income",
		AccountType: types.AccountTypeIncome,
	})
	s.NoError(err)

	children, err := s.service.ListAccounts(s.GetContext(), &types.AccountFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		ParentID:    parent.ID,
	})
	s.NoError(err)
	s.Len(children.Items, 1)
	s.Equal("5010", children.Items[0].Code)
}

func (s *AccountServiceSuite) TestListFiltersByCodePrefix() {
	for _, acct := range []struct {
		code string
		name string
		typ  types.AccountType
	}{
		{"5000", "Cost of Construction", types.AccountTypeExpense},
		{"5010", "Site Work", types.AccountTypeExpense},
		{"4000", "Contract Income", types.AccountTypeIncome},
	} {
		_, err := s.service.CreateAccount(s.GetContext(), &dto.CreateAccountRequest{
			Code:        acct.code,
			Name:        acct.name,
			AccountType: acct.typ,
		})
		s.NoError(err)
	}

	resp, err := s.service.ListAccounts(s.GetContext(), &types.AccountFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		CodePrefix:  "50",
	})
	s.NoError(err)
	s.Len(resp.Items, 2)
}

func (s *AccountServiceSuite) TestListFiltersByAccountType() {
	_, err := s.service.CreateAccount(s.GetContext(), &dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Operating Cash",
		AccountType: types.AccountTypeAsset,
	})
	s.NoError(err)
	_, err = s.service.CreateAccount(s.GetContext(), &dto.CreateAccountRequest{
		Code:        "2000",
		Name:        "Accounts Payable",
		AccountType: types.AccountTypeLiability,
	})
	s.NoError(err)

	resp, err := s.service.ListAccounts(s.GetContext(), &types.AccountFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		AccountType: types.AccountTypeAsset,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("Operating Cash", resp.Items[0].Name)
}

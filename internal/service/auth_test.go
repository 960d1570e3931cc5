package service

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/siteledger/siteledger/internal/api/dto"
	ierr "github.com/siteledger/siteledger/internal/errors"
	"github.com/siteledger/siteledger/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type AuthServiceSuite struct {
	testutil.BaseServiceTestSuite
	service AuthService
	params  ServiceParams
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewAuthService(s.params)
}

func (s *AuthServiceSuite) TestSignUp() {
	resp, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "pm@siteledger.dev",
		Password: "correct-horse",
		Name:     "Pat Mason",
	})
	s.NoError(err)
	s.NotEmpty(resp.UserID)
	s.NotEmpty(resp.TenantID)
	s.NotEmpty(resp.Token)

	claims, err := s.params.Auth.ValidateToken(s.GetContext(), resp.Token)
	s.NoError(err)
	s.Equal(resp.UserID, claims.UserID)
	s.Equal(resp.TenantID, claims.TenantID)
}

func (s *AuthServiceSuite) TestSignUpRejectsDuplicateEmail() {
	_, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "dup@siteledger.dev",
		Password: "first-password",
	})
	s.NoError(err)

	_, err = s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "dup@siteledger.dev",
		Password: "second-password",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *AuthServiceSuite) TestSignUpRejectsShortPassword() {
	_, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "short@siteledger.dev",
		Password: "short",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AuthServiceSuite) TestLogin() {
	signedUp, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "login@siteledger.dev",
		Password: "correct-horse",
	})
	s.NoError(err)

	resp, err := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "login@siteledger.dev",
		Password: "correct-horse",
	})
	s.NoError(err)
	s.Equal(signedUp.UserID, resp.UserID)
	s.Equal(signedUp.TenantID, resp.TenantID)
	s.NotEmpty(resp.Token)
}

func (s *AuthServiceSuite) TestLoginFailuresAreIndistinguishable() {
	_, err := s.service.SignUp(s.GetContext(), &dto.SignUpRequest{
		Email:    "victim@siteledger.dev",
		Password: "correct-horse",
	})
	s.NoError(err)

	_, wrongPassword := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "victim@siteledger.dev",
		Password: "wrong-password",
	})
	s.Error(wrongPassword)
	s.True(ierr.IsPermissionDenied(wrongPassword))

	_, unknownEmail := s.service.Login(s.GetContext(), &dto.LoginRequest{
		Email:    "nobody@siteledger.dev",
		Password: "wrong-password",
	})
	s.Error(unknownEmail)
	s.True(ierr.IsPermissionDenied(unknownEmail))

	// Both failures surface the same hint so the endpoint does not leak
	// which emails have accounts.
	s.Equal(errors.GetAllHints(wrongPassword), errors.GetAllHints(unknownEmail))
}

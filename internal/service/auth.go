package service

import (
	"context"

	"github.com/siteledger/siteledger/internal/api/dto"
	"github.com/siteledger/siteledger/internal/auth"
	"github.com/siteledger/siteledger/internal/domain/user"
	"github.com/siteledger/siteledger/internal/types"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{ServiceParams: params}
}

func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.UserRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ierr.NewError("user already exists").
			WithHint("An account with this email already exists").
			Mark(ierr.ErrAlreadyExists)
	} else if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	hashed, err := s.Auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	tenantID := req.TenantID
	if tenantID == "" {
		tenantID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TENANT)
	}

	u := &user.User{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hashed,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
	u.TenantID = tenantID
	u.CreatedBy = u.ID
	u.UpdatedBy = u.ID

	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.Auth.GenerateToken(u.ID, u.TenantID)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("user signed up", "user_id", u.ID, "tenant_id", u.TenantID)
	return &dto.AuthResponse{
		UserID:   u.ID,
		TenantID: u.TenantID,
		Email:    u.Email,
		Token:    token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if ierr.IsNotFound(err) {
			// Same response as a bad password so the endpoint does not
			// reveal which emails have accounts.
			return nil, ierr.NewError("invalid credentials").
				WithHint("Invalid email or password").
				Mark(ierr.ErrPermissionDenied)
		}
		return nil, err
	}

	if err := auth.AuthenticateUser(s.Auth, u, req.Password); err != nil {
		return nil, err
	}

	token, err := s.Auth.GenerateToken(u.ID, u.TenantID)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("user logged in", "user_id", u.ID, "tenant_id", u.TenantID)
	return &dto.AuthResponse{
		UserID:   u.ID,
		TenantID: u.TenantID,
		Email:    u.Email,
		Token:    token,
	}, nil
}

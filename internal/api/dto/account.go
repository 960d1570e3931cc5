package dto

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/account"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"

	ierr "github.com/siteledger/siteledger/internal/errors"
)

type CreateAccountRequest struct {
	Code            string            `json:"code" validate:"required,max=20"`
	Name            string            `json:"name" validate:"required,max=255"`
	AccountType     types.AccountType `json:"account_type" validate:"required"`
	ParentAccountID *string           `json:"parent_account_id,omitempty"`
	Description     string            `json:"description,omitempty"`
}

func (r *CreateAccountRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.AccountType.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid account type").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *CreateAccountRequest) ToAccount(ctx context.Context) *account.Account {
	return &account.Account{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ACCOUNT),
		Code:            r.Code,
		Name:            r.Name,
		AccountType:     r.AccountType,
		ParentAccountID: r.ParentAccountID,
		Description:     r.Description,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type UpdateAccountRequest struct {
	Code            *string            `json:"code,omitempty" validate:"omitempty,max=20"`
	Name            *string            `json:"name,omitempty" validate:"omitempty,max=255"`
	AccountType     *types.AccountType `json:"account_type,omitempty"`
	ParentAccountID *string            `json:"parent_account_id,omitempty"`
	Description     *string            `json:"description,omitempty"`
	Version         int                `json:"version" validate:"min=1"`
}

func (r *UpdateAccountRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.AccountType != nil {
		if err := r.AccountType.Validate(); err != nil {
			return ierr.WithError(err).
				WithHint("Invalid account type").
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (r *UpdateAccountRequest) Apply(a *account.Account) {
	if r.Code != nil {
		a.Code = *r.Code
	}
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.AccountType != nil {
		a.AccountType = *r.AccountType
	}
	if r.ParentAccountID != nil {
		if *r.ParentAccountID == "" {
			a.ParentAccountID = nil
		} else {
			a.ParentAccountID = r.ParentAccountID
		}
	}
	if r.Description != nil {
		a.Description = *r.Description
	}
	a.Version = r.Version
}

type AccountResponse struct {
	*account.Account
}

func NewAccountResponse(a *account.Account) *AccountResponse {
	return &AccountResponse{Account: a}
}

// ListAccountsResponse represents a paginated list of accounts
type ListAccountsResponse = types.ListResponse[*AccountResponse]

package dto

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/client"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"
)

type CreateClientRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	ContactName string `json:"contact_name,omitempty" validate:"omitempty,max=255"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=500"`
	Notes       string `json:"notes,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateClientRequest) ToClient(ctx context.Context) *client.Client {
	return &client.Client{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:        r.Name,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		Notes:       r.Notes,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateClientRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	ContactName *string `json:"contact_name,omitempty" validate:"omitempty,max=255"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Notes       *string `json:"notes,omitempty"`
	Version     int     `json:"version" validate:"min=1"`
}

func (r *UpdateClientRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateClientRequest) Apply(c *client.Client) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.ContactName != nil {
		c.ContactName = *r.ContactName
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
	c.Version = r.Version
}

type ClientResponse struct {
	*client.Client
}

func NewClientResponse(c *client.Client) *ClientResponse {
	return &ClientResponse{Client: c}
}

// ListClientsResponse represents a paginated list of clients
type ListClientsResponse = types.ListResponse[*ClientResponse]

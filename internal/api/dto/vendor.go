package dto

import (
	"context"

	"github.com/siteledger/siteledger/internal/domain/vendor"
	"github.com/siteledger/siteledger/internal/types"
	"github.com/siteledger/siteledger/internal/validator"
)

type CreateVendorRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	ContactName string `json:"contact_name,omitempty" validate:"omitempty,max=255"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Trade       string `json:"trade,omitempty" validate:"omitempty,max=100"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=500"`
	LicenseNo   string `json:"license_no,omitempty" validate:"omitempty,max=100"`
	TaxID       string `json:"tax_id,omitempty" validate:"omitempty,max=50"`
	Notes       string `json:"notes,omitempty"`
}

func (r *CreateVendorRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateVendorRequest) ToVendor(ctx context.Context) *vendor.Vendor {
	return &vendor.Vendor{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VENDOR),
		Name:        r.Name,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Trade:       r.Trade,
		Address:     r.Address,
		LicenseNo:   r.LicenseNo,
		TaxID:       r.TaxID,
		Notes:       r.Notes,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateVendorRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	ContactName *string `json:"contact_name,omitempty" validate:"omitempty,max=255"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Trade       *string `json:"trade,omitempty" validate:"omitempty,max=100"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	LicenseNo   *string `json:"license_no,omitempty" validate:"omitempty,max=100"`
	TaxID       *string `json:"tax_id,omitempty" validate:"omitempty,max=50"`
	Notes       *string `json:"notes,omitempty"`
	Version     int     `json:"version" validate:"min=1"`
}

func (r *UpdateVendorRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateVendorRequest) Apply(v *vendor.Vendor) {
	if r.Name != nil {
		v.Name = *r.Name
	}
	if r.ContactName != nil {
		v.ContactName = *r.ContactName
	}
	if r.Email != nil {
		v.Email = *r.Email
	}
	if r.Phone != nil {
		v.Phone = *r.Phone
	}
	if r.Trade != nil {
		v.Trade = *r.Trade
	}
	if r.Address != nil {
		v.Address = *r.Address
	}
	if r.LicenseNo != nil {
		v.LicenseNo = *r.LicenseNo
	}
	if r.TaxID != nil {
		v.TaxID = *r.TaxID
	}
	if r.Notes != nil {
		v.Notes = *r.Notes
	}
	v.Version = r.Version
}

type VendorResponse struct {
	*vendor.Vendor
}

func NewVendorResponse(v *vendor.Vendor) *VendorResponse {
	return &VendorResponse{Vendor: v}
}

// ListVendorsResponse represents a paginated list of vendors
type ListVendorsResponse = types.ListResponse[*VendorResponse]

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siteledger/siteledger/internal/api/dto"
	ierr "github.com/siteledger/siteledger/internal/errors"
	"github.com/siteledger/siteledger/internal/logger"
	"github.com/siteledger/siteledger/internal/service"
	"github.com/siteledger/siteledger/internal/types"
)

type VendorHandler struct {
	service service.VendorService
	log     *logger.Logger
}

func NewVendorHandler(service service.VendorService, log *logger.Logger) *VendorHandler {
	return &VendorHandler{service: service, log: log}
}

// CreateVendor godoc
// @Summary Create a new vendor
// @Description Create a new vendor with the provided details
// @Tags Vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateVendor(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create vendor", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetVendor godoc
// @Summary Get a vendor by ID
// @Description Get a vendor by ID
// @Tags Vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetVendor(ctx, id)
	if err != nil {
		h.log.Error("Failed to get vendor", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListVendors godoc
// @Summary List vendors
// @Description List vendors with optional filtering
// @Tags Vendors
// @Accept json
// @Produce json
// @Param filter query types.VendorFilter false "Filter"
// @Success 200 {object} dto.ListVendorsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.VendorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListVendors(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list vendors", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateVendor godoc
// @Summary Update a vendor
// @Description Update a vendor with the provided details
// @Tags Vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param vendor body dto.UpdateVendorRequest true "Vendor update details"
// @Success 200 {object} dto.VendorResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /vendors/{id} [put]
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("vendor ID is required").
			WithHint("Vendor ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateVendor(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update vendor", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveVendor godoc
// @Summary Archive a vendor
// @Description Archive a vendor by ID
// @Tags Vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /vendors/{id} [delete]
func (h *VendorHandler) ArchiveVendor(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchiveVendor(ctx, id); err != nil {
		h.log.Error("Failed to archive vendor", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor archived successfully"})
}

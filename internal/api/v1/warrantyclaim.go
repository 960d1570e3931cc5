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

type WarrantyClaimHandler struct {
	service service.WarrantyClaimService
	log     *logger.Logger
}

func NewWarrantyClaimHandler(service service.WarrantyClaimService, log *logger.Logger) *WarrantyClaimHandler {
	return &WarrantyClaimHandler{service: service, log: log}
}

// CreateWarrantyClaim godoc
// @Summary Create a new warranty claim
// @Description Create a new warranty claim with the provided details
// @Tags Warranty Claims
// @Accept json
// @Produce json
// @Param warranty_claim body dto.CreateWarrantyClaimRequest true "Warranty claim details"
// @Success 201 {object} dto.WarrantyClaimResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /warranty-claims [post]
func (h *WarrantyClaimHandler) CreateWarrantyClaim(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateWarrantyClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateWarrantyClaim(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create warranty claim", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetWarrantyClaim godoc
// @Summary Get a warranty claim by ID
// @Description Get a warranty claim by ID
// @Tags Warranty Claims
// @Accept json
// @Produce json
// @Param id path string true "Warranty claim ID"
// @Success 200 {object} dto.WarrantyClaimResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /warranty-claims/{id} [get]
func (h *WarrantyClaimHandler) GetWarrantyClaim(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetWarrantyClaim(ctx, id)
	if err != nil {
		h.log.Error("Failed to get warranty claim", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListWarrantyClaims godoc
// @Summary List warranty claims
// @Description List warranty claims with optional filtering
// @Tags Warranty Claims
// @Accept json
// @Produce json
// @Param filter query types.WarrantyClaimFilter false "Filter"
// @Success 200 {object} dto.ListWarrantyClaimsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /warranty-claims [get]
func (h *WarrantyClaimHandler) ListWarrantyClaims(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.WarrantyClaimFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListWarrantyClaims(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list warranty claims", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateWarrantyClaim godoc
// @Summary Update a warranty claim
// @Description Update a warranty claim with the provided details
// @Tags Warranty Claims
// @Accept json
// @Produce json
// @Param id path string true "Warranty claim ID"
// @Param warranty_claim body dto.UpdateWarrantyClaimRequest true "Warranty claim update details"
// @Success 200 {object} dto.WarrantyClaimResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /warranty-claims/{id} [put]
func (h *WarrantyClaimHandler) UpdateWarrantyClaim(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("warranty claim ID is required").
			WithHint("Warranty claim ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdateWarrantyClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateWarrantyClaim(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update warranty claim", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveWarrantyClaim godoc
// @Summary Archive a warranty claim
// @Description Archive a warranty claim by ID
// @Tags Warranty Claims
// @Accept json
// @Produce json
// @Param id path string true "Warranty claim ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /warranty-claims/{id} [delete]
func (h *WarrantyClaimHandler) ArchiveWarrantyClaim(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchiveWarrantyClaim(ctx, id); err != nil {
		h.log.Error("Failed to archive warranty claim", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Warranty claim archived successfully"})
}

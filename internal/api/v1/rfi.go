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

type RFIHandler struct {
	service service.RFIService
	log     *logger.Logger
}

func NewRFIHandler(service service.RFIService, log *logger.Logger) *RFIHandler {
	return &RFIHandler{service: service, log: log}
}

// CreateRFI godoc
// @Summary Create a new RFI
// @Description Create a new RFI with the provided details
// @Tags RFIs
// @Accept json
// @Produce json
// @Param rfi body dto.CreateRFIRequest true "RFI details"
// @Success 201 {object} dto.RFIResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /rfis [post]
func (h *RFIHandler) CreateRFI(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateRFIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRFI(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create RFI", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetRFI godoc
// @Summary Get an RFI by ID
// @Description Get an RFI by ID
// @Tags RFIs
// @Accept json
// @Produce json
// @Param id path string true "RFI ID"
// @Success 200 {object} dto.RFIResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /rfis/{id} [get]
func (h *RFIHandler) GetRFI(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetRFI(ctx, id)
	if err != nil {
		h.log.Error("Failed to get RFI", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListRFIs godoc
// @Summary List RFIs
// @Description List RFIs with optional filtering
// @Tags RFIs
// @Accept json
// @Produce json
// @Param filter query types.RFIFilter false "Filter"
// @Success 200 {object} dto.ListRFIsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /rfis [get]
func (h *RFIHandler) ListRFIs(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.RFIFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListRFIs(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list RFIs", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateRFI godoc
// @Summary Update an RFI
// @Description Update an RFI with the provided details
// @Tags RFIs
// @Accept json
// @Produce json
// @Param id path string true "RFI ID"
// @Param rfi body dto.UpdateRFIRequest true "RFI update details"
// @Success 200 {object} dto.RFIResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /rfis/{id} [put]
func (h *RFIHandler) UpdateRFI(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("RFI ID is required").
			WithHint("RFI ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdateRFIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateRFI(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update RFI", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveRFI godoc
// @Summary Archive an RFI
// @Description Archive an RFI by ID
// @Tags RFIs
// @Accept json
// @Produce json
// @Param id path string true "RFI ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /rfis/{id} [delete]
func (h *RFIHandler) ArchiveRFI(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchiveRFI(ctx, id); err != nil {
		h.log.Error("Failed to archive RFI", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "RFI archived successfully"})
}

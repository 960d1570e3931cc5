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

type SubmittalHandler struct {
	service service.SubmittalService
	log     *logger.Logger
}

func NewSubmittalHandler(service service.SubmittalService, log *logger.Logger) *SubmittalHandler {
	return &SubmittalHandler{service: service, log: log}
}

// CreateSubmittal godoc
// @Summary Create a new submittal
// @Description Create a new submittal with the provided details
// @Tags Submittals
// @Accept json
// @Produce json
// @Param submittal body dto.CreateSubmittalRequest true "Submittal details"
// @Success 201 {object} dto.SubmittalResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /submittals [post]
func (h *SubmittalHandler) CreateSubmittal(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateSubmittalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateSubmittal(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create submittal", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetSubmittal godoc
// @Summary Get a submittal by ID
// @Description Get a submittal by ID
// @Tags Submittals
// @Accept json
// @Produce json
// @Param id path string true "Submittal ID"
// @Success 200 {object} dto.SubmittalResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /submittals/{id} [get]
func (h *SubmittalHandler) GetSubmittal(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetSubmittal(ctx, id)
	if err != nil {
		h.log.Error("Failed to get submittal", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSubmittals godoc
// @Summary List submittals
// @Description List submittals with optional filtering
// @Tags Submittals
// @Accept json
// @Produce json
// @Param filter query types.SubmittalFilter false "Filter"
// @Success 200 {object} dto.ListSubmittalsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /submittals [get]
func (h *SubmittalHandler) ListSubmittals(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.SubmittalFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListSubmittals(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list submittals", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateSubmittal godoc
// @Summary Update a submittal
// @Description Update a submittal with the provided details
// @Tags Submittals
// @Accept json
// @Produce json
// @Param id path string true "Submittal ID"
// @Param submittal body dto.UpdateSubmittalRequest true "Submittal update details"
// @Success 200 {object} dto.SubmittalResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /submittals/{id} [put]
func (h *SubmittalHandler) UpdateSubmittal(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("submittal ID is required").
			WithHint("Submittal ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdateSubmittalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateSubmittal(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update submittal", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveSubmittal godoc
// @Summary Archive a submittal
// @Description Archive a submittal by ID
// @Tags Submittals
// @Accept json
// @Produce json
// @Param id path string true "Submittal ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /submittals/{id} [delete]
func (h *SubmittalHandler) ArchiveSubmittal(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchiveSubmittal(ctx, id); err != nil {
		h.log.Error("Failed to archive submittal", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Submittal archived successfully"})
}

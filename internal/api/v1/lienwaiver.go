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

type LienWaiverHandler struct {
	service service.LienWaiverService
	log     *logger.Logger
}

func NewLienWaiverHandler(service service.LienWaiverService, log *logger.Logger) *LienWaiverHandler {
	return &LienWaiverHandler{service: service, log: log}
}

// CreateLienWaiver godoc
// @Summary Create a new lien waiver
// @Description Create a new lien waiver with the provided details
// @Tags Lien Waivers
// @Accept json
// @Produce json
// @Param lien_waiver body dto.CreateLienWaiverRequest true "Lien waiver details"
// @Success 201 {object} dto.LienWaiverResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lien-waivers [post]
func (h *LienWaiverHandler) CreateLienWaiver(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateLienWaiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateLienWaiver(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create lien waiver", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetLienWaiver godoc
// @Summary Get a lien waiver by ID
// @Description Get a lien waiver by ID
// @Tags Lien Waivers
// @Accept json
// @Produce json
// @Param id path string true "Lien waiver ID"
// @Success 200 {object} dto.LienWaiverResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lien-waivers/{id} [get]
func (h *LienWaiverHandler) GetLienWaiver(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetLienWaiver(ctx, id)
	if err != nil {
		h.log.Error("Failed to get lien waiver", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListLienWaivers godoc
// @Summary List lien waivers
// @Description List lien waivers with optional filtering
// @Tags Lien Waivers
// @Accept json
// @Produce json
// @Param filter query types.LienWaiverFilter false "Filter"
// @Success 200 {object} dto.ListLienWaiversResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lien-waivers [get]
func (h *LienWaiverHandler) ListLienWaivers(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.LienWaiverFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListLienWaivers(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list lien waivers", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateLienWaiver godoc
// @Summary Update a lien waiver
// @Description Update a lien waiver with the provided details
// @Tags Lien Waivers
// @Accept json
// @Produce json
// @Param id path string true "Lien waiver ID"
// @Param lien_waiver body dto.UpdateLienWaiverRequest true "Lien waiver update details"
// @Success 200 {object} dto.LienWaiverResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lien-waivers/{id} [put]
func (h *LienWaiverHandler) UpdateLienWaiver(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("lien waiver ID is required").
			WithHint("Lien waiver ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdateLienWaiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateLienWaiver(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update lien waiver", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveLienWaiver godoc
// @Summary Archive a lien waiver
// @Description Archive a lien waiver by ID
// @Tags Lien Waivers
// @Accept json
// @Produce json
// @Param id path string true "Lien waiver ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /lien-waivers/{id} [delete]
func (h *LienWaiverHandler) ArchiveLienWaiver(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchiveLienWaiver(ctx, id); err != nil {
		h.log.Error("Failed to archive lien waiver", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lien waiver archived successfully"})
}

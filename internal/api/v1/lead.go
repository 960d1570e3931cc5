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

type LeadHandler struct {
	service service.LeadService
	log     *logger.Logger
}

func NewLeadHandler(service service.LeadService, log *logger.Logger) *LeadHandler {
	return &LeadHandler{service: service, log: log}
}

// CaptureLead godoc
// @Summary Capture a marketing lead
// @Description Accept a public contact form submission; mounted outside the authenticated group so prospects can reach it
// @Tags Leads
// @Accept json
// @Produce json
// @Param lead body dto.CaptureLeadRequest true "Lead details"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads/capture [post]
func (h *LeadHandler) CaptureLead(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CaptureLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CaptureLead(ctx, &req)
	if err != nil {
		h.log.Error("Failed to capture lead", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetLead godoc
// @Summary Get a lead by ID
// @Description Get a lead by ID
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} dto.LeadResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetLead(ctx, id)
	if err != nil {
		h.log.Error("Failed to get lead", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListLeads godoc
// @Summary List leads
// @Description List leads with optional filtering
// @Tags Leads
// @Accept json
// @Produce json
// @Param filter query types.LeadFilter false "Filter"
// @Success 200 {object} dto.ListLeadsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.LeadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListLeads(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list leads", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateLead godoc
// @Summary Update a lead
// @Description Update a lead with the provided details
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param lead body dto.UpdateLeadRequest true "Lead update details"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("lead ID is required").
			WithHint("Lead ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateLead(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update lead", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveLead godoc
// @Summary Archive a lead
// @Description Archive a lead by ID
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /leads/{id} [delete]
func (h *LeadHandler) ArchiveLead(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchiveLead(ctx, id); err != nil {
		h.log.Error("Failed to archive lead", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead archived successfully"})
}

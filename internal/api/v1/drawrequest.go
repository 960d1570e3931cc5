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

type DrawRequestHandler struct {
	service service.DrawRequestService
	log     *logger.Logger
}

func NewDrawRequestHandler(service service.DrawRequestService, log *logger.Logger) *DrawRequestHandler {
	return &DrawRequestHandler{service: service, log: log}
}

// CreateDrawRequest godoc
// @Summary Create a new draw request
// @Description Create a new draw request with the provided details
// @Tags Draw Requests
// @Accept json
// @Produce json
// @Param draw_request body dto.CreateDrawRequestRequest true "Draw request details"
// @Success 201 {object} dto.DrawRequestResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /draw-requests [post]
func (h *DrawRequestHandler) CreateDrawRequest(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateDrawRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateDrawRequest(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create draw request", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetDrawRequest godoc
// @Summary Get a draw request by ID
// @Description Get a draw request by ID
// @Tags Draw Requests
// @Accept json
// @Produce json
// @Param id path string true "Draw request ID"
// @Success 200 {object} dto.DrawRequestResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /draw-requests/{id} [get]
func (h *DrawRequestHandler) GetDrawRequest(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetDrawRequest(ctx, id)
	if err != nil {
		h.log.Error("Failed to get draw request", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListDrawRequests godoc
// @Summary List draw requests
// @Description List draw requests with optional filtering
// @Tags Draw Requests
// @Accept json
// @Produce json
// @Param filter query types.DrawRequestFilter false "Filter"
// @Success 200 {object} dto.ListDrawRequestsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /draw-requests [get]
func (h *DrawRequestHandler) ListDrawRequests(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.DrawRequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListDrawRequests(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list draw requests", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateDrawRequest godoc
// @Summary Update a draw request
// @Description Update a draw request with the provided details
// @Tags Draw Requests
// @Accept json
// @Produce json
// @Param id path string true "Draw request ID"
// @Param draw_request body dto.UpdateDrawRequestRequest true "Draw request update details"
// @Success 200 {object} dto.DrawRequestResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /draw-requests/{id} [put]
func (h *DrawRequestHandler) UpdateDrawRequest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("draw request ID is required").
			WithHint("Draw request ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdateDrawRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateDrawRequest(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update draw request", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveDrawRequest godoc
// @Summary Archive a draw request
// @Description Archive a draw request by ID
// @Tags Draw Requests
// @Accept json
// @Produce json
// @Param id path string true "Draw request ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /draw-requests/{id} [delete]
func (h *DrawRequestHandler) ArchiveDrawRequest(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchiveDrawRequest(ctx, id); err != nil {
		h.log.Error("Failed to archive draw request", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draw request archived successfully"})
}

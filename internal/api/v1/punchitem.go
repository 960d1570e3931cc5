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

type PunchItemHandler struct {
	service service.PunchItemService
	log     *logger.Logger
}

func NewPunchItemHandler(service service.PunchItemService, log *logger.Logger) *PunchItemHandler {
	return &PunchItemHandler{service: service, log: log}
}

// CreatePunchItem godoc
// @Summary Create a new punch item
// @Description Create a new punch item with the provided details
// @Tags Punch Items
// @Accept json
// @Produce json
// @Param punch_item body dto.CreatePunchItemRequest true "Punch item details"
// @Success 201 {object} dto.PunchItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /punch-items [post]
func (h *PunchItemHandler) CreatePunchItem(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreatePunchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreatePunchItem(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create punch item", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetPunchItem godoc
// @Summary Get a punch item by ID
// @Description Get a punch item by ID
// @Tags Punch Items
// @Accept json
// @Produce json
// @Param id path string true "Punch item ID"
// @Success 200 {object} dto.PunchItemResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /punch-items/{id} [get]
func (h *PunchItemHandler) GetPunchItem(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetPunchItem(ctx, id)
	if err != nil {
		h.log.Error("Failed to get punch item", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPunchItems godoc
// @Summary List punch items
// @Description List punch items with optional filtering
// @Tags Punch Items
// @Accept json
// @Produce json
// @Param filter query types.PunchItemFilter false "Filter"
// @Success 200 {object} dto.ListPunchItemsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /punch-items [get]
func (h *PunchItemHandler) ListPunchItems(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.PunchItemFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPunchItems(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list punch items", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePunchItem godoc
// @Summary Update a punch item
// @Description Update a punch item with the provided details
// @Tags Punch Items
// @Accept json
// @Produce json
// @Param id path string true "Punch item ID"
// @Param punch_item body dto.UpdatePunchItemRequest true "Punch item update details"
// @Success 200 {object} dto.PunchItemResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /punch-items/{id} [put]
func (h *PunchItemHandler) UpdatePunchItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("punch item ID is required").
			WithHint("Punch item ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdatePunchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdatePunchItem(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update punch item", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchivePunchItem godoc
// @Summary Archive a punch item
// @Description Archive a punch item by ID
// @Tags Punch Items
// @Accept json
// @Produce json
// @Param id path string true "Punch item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /punch-items/{id} [delete]
func (h *PunchItemHandler) ArchivePunchItem(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchivePunchItem(ctx, id); err != nil {
		h.log.Error("Failed to archive punch item", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Punch item archived successfully"})
}

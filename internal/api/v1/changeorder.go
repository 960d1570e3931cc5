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

type ChangeOrderHandler struct {
	service service.ChangeOrderService
	log     *logger.Logger
}

func NewChangeOrderHandler(service service.ChangeOrderService, log *logger.Logger) *ChangeOrderHandler {
	return &ChangeOrderHandler{service: service, log: log}
}

// CreateChangeOrder godoc
// @Summary Create a new change order
// @Description Create a new change order with the provided details
// @Tags Change Orders
// @Accept json
// @Produce json
// @Param change_order body dto.CreateChangeOrderRequest true "Change order details"
// @Success 201 {object} dto.ChangeOrderResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /change-orders [post]
func (h *ChangeOrderHandler) CreateChangeOrder(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateChangeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateChangeOrder(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create change order", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetChangeOrder godoc
// @Summary Get a change order by ID
// @Description Get a change order by ID
// @Tags Change Orders
// @Accept json
// @Produce json
// @Param id path string true "Change order ID"
// @Success 200 {object} dto.ChangeOrderResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /change-orders/{id} [get]
func (h *ChangeOrderHandler) GetChangeOrder(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetChangeOrder(ctx, id)
	if err != nil {
		h.log.Error("Failed to get change order", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListChangeOrders godoc
// @Summary List change orders
// @Description List change orders with optional filtering
// @Tags Change Orders
// @Accept json
// @Produce json
// @Param filter query types.ChangeOrderFilter false "Filter"
// @Success 200 {object} dto.ListChangeOrdersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /change-orders [get]
func (h *ChangeOrderHandler) ListChangeOrders(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.ChangeOrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListChangeOrders(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list change orders", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateChangeOrder godoc
// @Summary Update a change order
// @Description Update a change order with the provided details
// @Tags Change Orders
// @Accept json
// @Produce json
// @Param id path string true "Change order ID"
// @Param change_order body dto.UpdateChangeOrderRequest true "Change order update details"
// @Success 200 {object} dto.ChangeOrderResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /change-orders/{id} [put]
func (h *ChangeOrderHandler) UpdateChangeOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("change order ID is required").
			WithHint("Change order ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdateChangeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateChangeOrder(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update change order", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveChangeOrder godoc
// @Summary Archive a change order
// @Description Archive a change order by ID
// @Tags Change Orders
// @Accept json
// @Produce json
// @Param id path string true "Change order ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /change-orders/{id} [delete]
func (h *ChangeOrderHandler) ArchiveChangeOrder(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchiveChangeOrder(ctx, id); err != nil {
		h.log.Error("Failed to archive change order", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Change order archived successfully"})
}

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

type PurchaseOrderHandler struct {
	service service.PurchaseOrderService
	log     *logger.Logger
}

func NewPurchaseOrderHandler(service service.PurchaseOrderService, log *logger.Logger) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: service, log: log}
}

// CreatePurchaseOrder godoc
// @Summary Create a new purchase order
// @Description Create a new purchase order with the provided details
// @Tags Purchase Orders
// @Accept json
// @Produce json
// @Param purchase_order body dto.CreatePurchaseOrderRequest true "Purchase order details"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /purchase-orders [post]
func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreatePurchaseOrder(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create purchase order", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetPurchaseOrder godoc
// @Summary Get a purchase order by ID
// @Description Get a purchase order by ID
// @Tags Purchase Orders
// @Accept json
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetPurchaseOrder(ctx, id)
	if err != nil {
		h.log.Error("Failed to get purchase order", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPurchaseOrders godoc
// @Summary List purchase orders
// @Description List purchase orders with optional filtering
// @Tags Purchase Orders
// @Accept json
// @Produce json
// @Param filter query types.PurchaseOrderFilter false "Filter"
// @Success 200 {object} dto.ListPurchaseOrdersResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /purchase-orders [get]
func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.PurchaseOrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPurchaseOrders(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list purchase orders", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePurchaseOrder godoc
// @Summary Update a purchase order
// @Description Update a purchase order with the provided details
// @Tags Purchase Orders
// @Accept json
// @Produce json
// @Param id path string true "Purchase order ID"
// @Param purchase_order body dto.UpdatePurchaseOrderRequest true "Purchase order update details"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /purchase-orders/{id} [put]
func (h *PurchaseOrderHandler) UpdatePurchaseOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("purchase order ID is required").
			WithHint("Purchase order ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdatePurchaseOrder(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update purchase order", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchivePurchaseOrder godoc
// @Summary Archive a purchase order
// @Description Archive a purchase order by ID
// @Tags Purchase Orders
// @Accept json
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /purchase-orders/{id} [delete]
func (h *PurchaseOrderHandler) ArchivePurchaseOrder(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchivePurchaseOrder(ctx, id); err != nil {
		h.log.Error("Failed to archive purchase order", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order archived successfully"})
}

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

type AccountHandler struct {
	service service.AccountService
	log     *logger.Logger
}

func NewAccountHandler(service service.AccountService, log *logger.Logger) *AccountHandler {
	return &AccountHandler{service: service, log: log}
}

// CreateAccount godoc
// @Summary Create a new account
// @Description Create a new account with the provided details
// @Tags Accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateAccount(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create account", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAccount godoc
// @Summary Get an account by ID
// @Description Get an account by ID
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetAccount(ctx, id)
	if err != nil {
		h.log.Error("Failed to get account", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListAccounts godoc
// @Summary List accounts
// @Description List accounts with optional filtering
// @Tags Accounts
// @Accept json
// @Produce json
// @Param filter query types.AccountFilter false "Filter"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.AccountFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListAccounts(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list accounts", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateAccount godoc
// @Summary Update an account
// @Description Update an account with the provided details
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Account update details"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("account ID is required").
			WithHint("Account ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateAccount(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update account", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveAccount godoc
// @Summary Archive an account
// @Description Archive an account by ID
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /accounts/{id} [delete]
func (h *AccountHandler) ArchiveAccount(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchiveAccount(ctx, id); err != nil {
		h.log.Error("Failed to archive account", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account archived successfully"})
}

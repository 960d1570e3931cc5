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

type InsurancePolicyHandler struct {
	service service.InsurancePolicyService
	log     *logger.Logger
}

func NewInsurancePolicyHandler(service service.InsurancePolicyService, log *logger.Logger) *InsurancePolicyHandler {
	return &InsurancePolicyHandler{service: service, log: log}
}

// CreateInsurancePolicy godoc
// @Summary Create a new insurance policy
// @Description Create a new insurance policy with the provided details
// @Tags Insurance Policies
// @Accept json
// @Produce json
// @Param insurance_policy body dto.CreateInsurancePolicyRequest true "Insurance policy details"
// @Success 201 {object} dto.InsurancePolicyResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /insurance-policies [post]
func (h *InsurancePolicyHandler) CreateInsurancePolicy(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateInsurancePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateInsurancePolicy(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create insurance policy", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetInsurancePolicy godoc
// @Summary Get an insurance policy by ID
// @Description Get an insurance policy by ID
// @Tags Insurance Policies
// @Accept json
// @Produce json
// @Param id path string true "Insurance policy ID"
// @Success 200 {object} dto.InsurancePolicyResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /insurance-policies/{id} [get]
func (h *InsurancePolicyHandler) GetInsurancePolicy(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	resp, err := h.service.GetInsurancePolicy(ctx, id)
	if err != nil {
		h.log.Error("Failed to get insurance policy", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListInsurancePolicies godoc
// @Summary List insurance policies
// @Description List insurance policies with optional filtering
// @Tags Insurance Policies
// @Accept json
// @Produce json
// @Param filter query types.InsurancePolicyFilter false "Filter"
// @Success 200 {object} dto.ListInsurancePoliciesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /insurance-policies [get]
func (h *InsurancePolicyHandler) ListInsurancePolicies(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.InsurancePolicyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListInsurancePolicies(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list insurance policies", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateInsurancePolicy godoc
// @Summary Update an insurance policy
// @Description Update an insurance policy with the provided details
// @Tags Insurance Policies
// @Accept json
// @Produce json
// @Param id path string true "Insurance policy ID"
// @Param insurance_policy body dto.UpdateInsurancePolicyRequest true "Insurance policy update details"
// @Success 200 {object} dto.InsurancePolicyResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /insurance-policies/{id} [put]
func (h *InsurancePolicyHandler) UpdateInsurancePolicy(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("insurance policy ID is required").
			WithHint("Insurance policy ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	ctx := c.Request.Context()
	var req dto.UpdateInsurancePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateInsurancePolicy(ctx, id, &req)
	if err != nil {
		h.log.Error("Failed to update insurance policy", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveInsurancePolicy godoc
// @Summary Archive an insurance policy
// @Description Archive an insurance policy by ID
// @Tags Insurance Policies
// @Accept json
// @Produce json
// @Param id path string true "Insurance policy ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /insurance-policies/{id} [delete]
func (h *InsurancePolicyHandler) ArchiveInsurancePolicy(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.service.ArchiveInsurancePolicy(ctx, id); err != nil {
		h.log.Error("Failed to archive insurance policy", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Insurance policy archived successfully"})
}

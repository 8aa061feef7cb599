package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
	"github.com/hostelhub/hostelhub-api/pkg/response"
)

type feeService interface {
	List(query dto.FeeQuery, actor *models.JWTClaims) ([]models.FeeRecord, error)
	Create(req dto.CreateFeeRequest) (*models.FeeRecord, error)
	RecordPayment(id string, req dto.RecordPaymentRequest) (*models.FeeRecord, error)
	Summary() models.FeeSummary
	Delete(id string) error
}

// FeeHandler exposes REST endpoints for fee records.
type FeeHandler struct {
	service feeService
}

// NewFeeHandler constructs the handler.
func NewFeeHandler(service feeService) *FeeHandler {
	return &FeeHandler{service: service}
}

// List godoc
// @Summary List fee records
// @Tags Fees
// @Produce json
// @Param studentId query string false "Student ID"
// @Param status query string false "Status"
// @Success 200 {object} response.Envelope
// @Router /fees [get]
func (h *FeeHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	fees, err := h.service.List(dto.FeeQuery{
		StudentID: c.Query("studentId"),
		Status:    c.Query("status"),
	}, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fees, nil)
}

// Create godoc
// @Summary Bill a student
// @Tags Fees
// @Accept json
// @Produce json
// @Param payload body dto.CreateFeeRequest true "Fee payload"
// @Success 201 {object} response.Envelope
// @Router /fees [post]
func (h *FeeHandler) Create(c *gin.Context) {
	var req dto.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid fee payload"))
		return
	}
	fee, err := h.service.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, fee, nil)
}

// RecordPayment godoc
// @Summary Mark a fee record as paid
// @Tags Fees
// @Accept json
// @Produce json
// @Param id path string true "Fee ID"
// @Param payload body dto.RecordPaymentRequest true "Payment reference"
// @Success 200 {object} response.Envelope
// @Router /fees/{id}/pay [post]
func (h *FeeHandler) RecordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payment payload"))
		return
	}
	fee, err := h.service.RecordPayment(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fee, nil)
}

// Summary godoc
// @Summary Aggregate billing totals
// @Tags Fees
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /fees/summary [get]
func (h *FeeHandler) Summary(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Summary(), nil)
}

// Delete godoc
// @Summary Remove a fee record
// @Tags Fees
// @Param id path string true "Fee ID"
// @Success 204
// @Router /fees/{id} [delete]
func (h *FeeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

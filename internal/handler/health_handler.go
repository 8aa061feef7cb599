package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
	"github.com/hostelhub/hostelhub-api/pkg/response"
)

type healthService interface {
	List(studentID string, actor *models.JWTClaims) ([]models.HealthRecord, error)
	Create(req dto.CreateHealthRecordRequest, actor *models.JWTClaims) (*models.HealthRecord, error)
	Update(id string, req dto.UpdateHealthRecordRequest) (*models.HealthRecord, error)
	Delete(id string) error
}

// HealthRecordHandler exposes REST endpoints for medical entries.
type HealthRecordHandler struct {
	service healthService
}

// NewHealthRecordHandler constructs the handler.
func NewHealthRecordHandler(service healthService) *HealthRecordHandler {
	return &HealthRecordHandler{service: service}
}

// List godoc
// @Summary List health records
// @Tags Health
// @Produce json
// @Param studentId query string false "Student ID"
// @Success 200 {object} response.Envelope
// @Router /health-records [get]
func (h *HealthRecordHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	records, err := h.service.List(c.Query("studentId"), claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// Create godoc
// @Summary Log a medical entry
// @Tags Health
// @Accept json
// @Produce json
// @Param payload body dto.CreateHealthRecordRequest true "Health record payload"
// @Success 201 {object} response.Envelope
// @Router /health-records [post]
func (h *HealthRecordHandler) Create(c *gin.Context) {
	var req dto.CreateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid health record payload"))
		return
	}
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	record, err := h.service.Create(req, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, record, nil)
}

// Update godoc
// @Summary Amend a medical entry
// @Tags Health
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param payload body dto.UpdateHealthRecordRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /health-records/{id} [put]
func (h *HealthRecordHandler) Update(c *gin.Context) {
	var req dto.UpdateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid health record payload"))
		return
	}
	record, err := h.service.Update(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// Delete godoc
// @Summary Remove a medical entry
// @Tags Health
// @Param id path string true "Record ID"
// @Success 204
// @Router /health-records/{id} [delete]
func (h *HealthRecordHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

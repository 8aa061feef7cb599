package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
	"github.com/hostelhub/hostelhub-api/pkg/response"
)

type complaintService interface {
	List(query dto.ComplaintQuery, actor *models.JWTClaims) ([]models.Complaint, error)
	Create(req dto.CreateComplaintRequest) (*models.Complaint, error)
	UpdateStatus(id string, req dto.UpdateComplaintStatusRequest, actor *models.JWTClaims) (*models.Complaint, error)
	Delete(id string) error
}

// ComplaintHandler exposes REST endpoints for complaints.
type ComplaintHandler struct {
	service complaintService
}

// NewComplaintHandler constructs the handler.
func NewComplaintHandler(service complaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// List godoc
// @Summary List complaints
// @Tags Complaints
// @Produce json
// @Param studentId query string false "Student ID"
// @Param status query string false "Status"
// @Param category query string false "Category"
// @Success 200 {object} response.Envelope
// @Router /complaints [get]
func (h *ComplaintHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	query := dto.ComplaintQuery{
		StudentID: c.Query("studentId"),
		Status:    models.ComplaintStatus(c.Query("status")),
		Category:  models.ComplaintCategory(c.Query("category")),
	}
	complaints, err := h.service.List(query, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, complaints, nil)
}

// Create godoc
// @Summary File a complaint
// @Tags Complaints
// @Accept json
// @Produce json
// @Param payload body dto.CreateComplaintRequest true "Complaint payload"
// @Success 201 {object} response.Envelope
// @Router /complaints [post]
func (h *ComplaintHandler) Create(c *gin.Context) {
	var req dto.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid complaint payload"))
		return
	}
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if claims.Role == models.RoleStudent {
		req.StudentID = claims.StudentID
	}
	complaint, err := h.service.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, complaint, nil)
}

// UpdateStatus godoc
// @Summary Move a complaint through its lifecycle
// @Tags Complaints
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Param payload body dto.UpdateComplaintStatusRequest true "New status"
// @Success 200 {object} response.Envelope
// @Router /complaints/{id}/status [put]
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid status payload"))
		return
	}
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	complaint, err := h.service.UpdateStatus(c.Param("id"), req, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, complaint, nil)
}

// Delete godoc
// @Summary Remove a complaint
// @Tags Complaints
// @Param id path string true "Complaint ID"
// @Success 204
// @Router /complaints/{id} [delete]
func (h *ComplaintHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

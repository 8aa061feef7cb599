package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/service"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
	"github.com/hostelhub/hostelhub-api/pkg/response"
)

type leaveService interface {
	Submit(req dto.CreateLeaveRequest) (*models.LeaveApplication, error)
	List(query dto.LeaveQuery, actor *models.JWTClaims) ([]models.LeaveApplication, error)
	Get(id string, actor *models.JWTClaims) (*models.LeaveApplication, error)
	Recommend(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error)
	Approve(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error)
	Reject(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error)
	Export(query dto.ExportQuery) (*service.LeaveExport, error)
	Statistics() models.LeaveStatistics
}

// LeaveHandler exposes REST endpoints for the leave approval workflow.
type LeaveHandler struct {
	service leaveService
}

// NewLeaveHandler constructs the handler.
func NewLeaveHandler(service leaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

// Create godoc
// @Summary Submit a leave application
// @Tags Leaves
// @Accept json
// @Produce json
// @Param payload body dto.CreateLeaveRequest true "Leave payload"
// @Success 201 {object} response.Envelope
// @Router /leaves [post]
func (h *LeaveHandler) Create(c *gin.Context) {
	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid leave payload"))
		return
	}
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	// Students always submit for themselves.
	if claims.Role == models.RoleStudent {
		req.StudentID = claims.StudentID
		req.StudentName = claims.FullName
	}
	leave, err := h.service.Submit(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, leave, nil)
}

// List godoc
// @Summary List leave applications
// @Tags Leaves
// @Produce json
// @Param studentId query string false "Student ID"
// @Param status query string false "Status"
// @Param type query string false "Leave type"
// @Success 200 {object} response.Envelope
// @Router /leaves [get]
func (h *LeaveHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	query := dto.LeaveQuery{
		StudentID: c.Query("studentId"),
		Status:    models.LeaveStatus(c.Query("status")),
		Type:      models.LeaveType(c.Query("type")),
	}
	leaves, err := h.service.List(query, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leaves, nil)
}

// Get godoc
// @Summary Get one leave application
// @Tags Leaves
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} response.Envelope
// @Router /leaves/{id} [get]
func (h *LeaveHandler) Get(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	leave, err := h.service.Get(c.Param("id"), claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leave, nil)
}

// Recommend godoc
// @Summary Recommend a pending leave application
// @Tags Leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param payload body dto.DecisionRequest true "Remarks"
// @Success 200 {object} response.Envelope
// @Router /leaves/{id}/recommend [post]
func (h *LeaveHandler) Recommend(c *gin.Context) {
	h.decide(c, h.service.Recommend)
}

// Approve godoc
// @Summary Approve a leave application
// @Tags Leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param payload body dto.DecisionRequest true "Remarks"
// @Success 200 {object} response.Envelope
// @Router /leaves/{id}/approve [post]
func (h *LeaveHandler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve)
}

// Reject godoc
// @Summary Reject a leave application
// @Tags Leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param payload body dto.DecisionRequest true "Remarks"
// @Success 200 {object} response.Envelope
// @Router /leaves/{id}/reject [post]
func (h *LeaveHandler) Reject(c *gin.Context) {
	h.decide(c, h.service.Reject)
}

func (h *LeaveHandler) decide(c *gin.Context, op func(id, remarks string, actor *models.JWTClaims) (*models.LeaveApplication, error)) {
	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid decision payload"))
		return
	}
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	leave, err := op(c.Param("id"), req.Remarks, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leave, nil)
}

// Export godoc
// @Summary Export leave applications as CSV, JSON or PDF
// @Tags Leaves
// @Produce octet-stream
// @Param format query string false "csv|json|pdf (default csv)"
// @Param status query string false "Status filter or all"
// @Success 200 {file} byte
// @Router /leaves/export [get]
func (h *LeaveHandler) Export(c *gin.Context) {
	result, err := h.service.Export(dto.ExportQuery{
		Format: c.Query("format"),
		Status: c.Query("status"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// Statistics godoc
// @Summary Aggregate statistics over all leave applications
// @Tags Leaves
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /leaves/statistics [get]
func (h *LeaveHandler) Statistics(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Statistics(), nil)
}

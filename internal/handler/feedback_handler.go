package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
	"github.com/hostelhub/hostelhub-api/pkg/response"
)

type feedbackService interface {
	List(query dto.FeedbackQuery) []models.FoodFeedback
	Create(req dto.CreateFeedbackRequest) (*models.FoodFeedback, error)
	Averages(date string) []models.MealRating
	Delete(id string) error
}

// FeedbackHandler exposes REST endpoints for food feedback.
type FeedbackHandler struct {
	service feedbackService
}

// NewFeedbackHandler constructs the handler.
func NewFeedbackHandler(service feedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// List godoc
// @Summary List food feedback
// @Tags Feedback
// @Produce json
// @Param studentId query string false "Student ID"
// @Param meal query string false "Meal"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /feedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	entries := h.service.List(dto.FeedbackQuery{
		StudentID: c.Query("studentId"),
		Meal:      models.Meal(c.Query("meal")),
		Date:      c.Query("date"),
	})
	response.JSON(c, http.StatusOK, entries, nil)
}

// Create godoc
// @Summary Rate a meal
// @Tags Feedback
// @Accept json
// @Produce json
// @Param payload body dto.CreateFeedbackRequest true "Feedback payload"
// @Success 201 {object} response.Envelope
// @Router /feedback [post]
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid feedback payload"))
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
	fb, err := h.service.Create(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, fb, nil)
}

// Averages godoc
// @Summary Average rating per meal
// @Tags Feedback
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /feedback/averages [get]
func (h *FeedbackHandler) Averages(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Averages(c.Query("date")), nil)
}

// Delete godoc
// @Summary Remove a feedback entry
// @Tags Feedback
// @Param id path string true "Feedback ID"
// @Success 204
// @Router /feedback/{id} [delete]
func (h *FeedbackHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

package dto

import "github.com/hostelhub/hostelhub-api/internal/models"

// CreateFeedbackRequest payload for rating a meal.
type CreateFeedbackRequest struct {
	StudentID string      `json:"studentId" validate:"required"`
	Meal      models.Meal `json:"meal" validate:"required,meal"`
	Date      string      `json:"date" validate:"required,datetime=2006-01-02"`
	Rating    int         `json:"rating" validate:"required,min=1,max=5"`
	Comments  string      `json:"comments"`
}

// FeedbackQuery mirrors supported listing filters.
type FeedbackQuery struct {
	StudentID string      `form:"studentId"`
	Meal      models.Meal `form:"meal"`
	Date      string      `form:"date"`
}

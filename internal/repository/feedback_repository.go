package repository

import (
	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// FeedbackCollection names the shared store collection for food feedback.
const FeedbackCollection = "foodFeedback"

// FeedbackRepository provides typed access to the food feedback collection.
type FeedbackRepository struct {
	store *store.Store
}

// NewFeedbackRepository constructs the repository.
func NewFeedbackRepository(s *store.Store) *FeedbackRepository {
	return &FeedbackRepository{store: s}
}

// Create appends a feedback entry, assigning an id when absent.
func (r *FeedbackRepository) Create(fb *models.FoodFeedback) error {
	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}
	return r.store.Add(FeedbackCollection, *fb)
}

// List returns feedback entries matching the filter.
func (r *FeedbackRepository) List(filter models.FeedbackFilter) []models.FoodFeedback {
	records := r.store.Get(FeedbackCollection)
	out := make([]models.FoodFeedback, 0, len(records))
	for _, rec := range records {
		fb := rec.(models.FoodFeedback)
		if filter.StudentID != "" && fb.StudentID != filter.StudentID {
			continue
		}
		if filter.Meal != "" && fb.Meal != filter.Meal {
			continue
		}
		if filter.Date != "" && fb.Date != filter.Date {
			continue
		}
		out = append(out, fb)
	}
	return out
}

// Delete removes a feedback entry.
func (r *FeedbackRepository) Delete(id string) error {
	return r.store.Delete(FeedbackCollection, id)
}

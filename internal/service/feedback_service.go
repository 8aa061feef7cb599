package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
)

type feedbackRepository interface {
	Create(fb *models.FoodFeedback) error
	List(filter models.FeedbackFilter) []models.FoodFeedback
	Delete(id string) error
}

type feedbackStudentReader interface {
	GetByID(id string) (*models.Student, error)
}

// FeedbackService collects and aggregates meal ratings.
type FeedbackService struct {
	repo      feedbackRepository
	students  feedbackStudentReader
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewFeedbackService constructs the service.
func NewFeedbackService(repo feedbackRepository, students feedbackStudentReader, validate *validator.Validate, logger *zap.Logger) *FeedbackService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &FeedbackService{repo: repo, students: students, validator: validate, logger: logger, now: time.Now}
	svc.validator.RegisterValidation("meal", func(fl validator.FieldLevel) bool {
		switch models.Meal(fl.Field().String()) {
		case models.MealBreakfast, models.MealLunch, models.MealSnacks, models.MealDinner:
			return true
		default:
			return false
		}
	})
	return svc
}

// List returns feedback entries matching the query.
func (s *FeedbackService) List(query dto.FeedbackQuery) []models.FoodFeedback {
	return s.repo.List(models.FeedbackFilter{
		StudentID: query.StudentID,
		Meal:      query.Meal,
		Date:      query.Date,
	})
}

// Create records a meal rating.
func (s *FeedbackService) Create(req dto.CreateFeedbackRequest) (*models.FoodFeedback, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	fb := &models.FoodFeedback{
		StudentID: req.StudentID,
		Meal:      req.Meal,
		Date:      req.Date,
		Rating:    req.Rating,
		Comments:  req.Comments,
		CreatedAt: s.now().UTC(),
	}
	if student, err := s.students.GetByID(req.StudentID); err == nil {
		fb.StudentName = student.FullName
	}
	if err := s.repo.Create(fb); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create feedback")
	}
	return fb, nil
}

// Averages aggregates the mean rating per meal, optionally scoped to a date.
func (s *FeedbackService) Averages(date string) []models.MealRating {
	meals := []models.Meal{models.MealBreakfast, models.MealLunch, models.MealSnacks, models.MealDinner}
	out := make([]models.MealRating, 0, len(meals))
	for _, meal := range meals {
		entries := s.repo.List(models.FeedbackFilter{Meal: meal, Date: date})
		rating := models.MealRating{Meal: meal, Count: len(entries)}
		if len(entries) > 0 {
			sum := 0
			for _, fb := range entries {
				sum += fb.Rating
			}
			rating.Average = float64(sum) / float64(len(entries))
		}
		out = append(out, rating)
	}
	return out
}

// Delete removes a feedback entry.
func (s *FeedbackService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "feedback not found")
	}
	return nil
}

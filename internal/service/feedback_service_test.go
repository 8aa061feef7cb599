package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/repository"
	"github.com/hostelhub/hostelhub-api/internal/store"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
)

func newFeedbackServiceForTest(t *testing.T) *FeedbackService {
	t.Helper()
	s := store.New()
	students := repository.NewStudentRepository(s)
	require.NoError(t, students.Create(&models.Student{ID: "stu-1", FullName: "Rahul Sharma", Email: "rahul@example.com"}))
	svc := NewFeedbackService(repository.NewFeedbackRepository(s), students, nil, nil)
	svc.now = func() time.Time { return testNow }
	return svc
}

func rateMeal(t *testing.T, svc *FeedbackService, meal models.Meal, date string, rating int) {
	t.Helper()
	_, err := svc.Create(dto.CreateFeedbackRequest{
		StudentID: "stu-1",
		Meal:      meal,
		Date:      date,
		Rating:    rating,
	})
	require.NoError(t, err)
}

func TestFeedbackServiceCreateResolvesStudentName(t *testing.T) {
	svc := newFeedbackServiceForTest(t)

	fb, err := svc.Create(dto.CreateFeedbackRequest{
		StudentID: "stu-1",
		Meal:      models.MealLunch,
		Date:      "2026-03-14",
		Rating:    4,
		Comments:  "Dal was good today",
	})
	require.NoError(t, err)
	require.NotEmpty(t, fb.ID)
	require.Equal(t, "Rahul Sharma", fb.StudentName)
	require.Equal(t, testNow, fb.CreatedAt)
}

func TestFeedbackServiceCreateValidatesMealAndRating(t *testing.T) {
	svc := newFeedbackServiceForTest(t)

	_, err := svc.Create(dto.CreateFeedbackRequest{
		StudentID: "stu-1",
		Meal:      "brunch",
		Date:      "2026-03-14",
		Rating:    3,
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Create(dto.CreateFeedbackRequest{
		StudentID: "stu-1",
		Meal:      models.MealDinner,
		Date:      "2026-03-14",
		Rating:    6,
	})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestFeedbackServiceAverages(t *testing.T) {
	svc := newFeedbackServiceForTest(t)
	rateMeal(t, svc, models.MealLunch, "2026-03-14", 4)
	rateMeal(t, svc, models.MealLunch, "2026-03-14", 5)
	rateMeal(t, svc, models.MealDinner, "2026-03-14", 2)
	rateMeal(t, svc, models.MealLunch, "2026-03-13", 1)

	ratings := svc.Averages("2026-03-14")
	require.Len(t, ratings, 4)

	byMeal := make(map[models.Meal]models.MealRating, len(ratings))
	for _, r := range ratings {
		byMeal[r.Meal] = r
	}
	require.Equal(t, 2, byMeal[models.MealLunch].Count)
	require.InDelta(t, 4.5, byMeal[models.MealLunch].Average, 1e-9)
	require.Equal(t, 1, byMeal[models.MealDinner].Count)
	require.InDelta(t, 2.0, byMeal[models.MealDinner].Average, 1e-9)
	require.Equal(t, 0, byMeal[models.MealBreakfast].Count)
	require.Zero(t, byMeal[models.MealBreakfast].Average)
}

func TestFeedbackServiceDelete(t *testing.T) {
	svc := newFeedbackServiceForTest(t)
	fb, err := svc.Create(dto.CreateFeedbackRequest{
		StudentID: "stu-1",
		Meal:      models.MealBreakfast,
		Date:      "2026-03-14",
		Rating:    3,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(fb.ID))
	err = svc.Delete(fb.ID)
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

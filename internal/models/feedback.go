package models

import "time"

// Meal identifies which serving the feedback refers to.
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealSnacks    Meal = "snacks"
	MealDinner    Meal = "dinner"
)

// FoodFeedback is one rating submitted by a student for a meal.
type FoodFeedback struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Meal        Meal      `json:"meal"`
	Date        string    `json:"date"`
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RecordID implements store.Record.
func (f FoodFeedback) RecordID() string { return f.ID }

// FeedbackFilter constrains feedback listing.
type FeedbackFilter struct {
	StudentID string
	Meal      Meal
	Date      string
}

// MealRating aggregates the average rating for one meal.
type MealRating struct {
	Meal    Meal    `json:"meal"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

package models

import "time"

// FeeStatus captures payment state for a fee record.
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusOverdue FeeStatus = "overdue"
)

// FeeRecord tracks one billing entry for a student.
type FeeRecord struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"studentId"`
	StudentName string     `json:"studentName"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	DueDate     string     `json:"dueDate"`
	Status      FeeStatus  `json:"status"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
	PaymentRef  string     `json:"paymentRef,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// RecordID implements store.Record.
func (f FeeRecord) RecordID() string { return f.ID }

// FeeFilter constrains fee listing.
type FeeFilter struct {
	StudentID string
	Status    FeeStatus
}

// FeeSummary aggregates collected and outstanding amounts.
type FeeSummary struct {
	TotalBilled      float64 `json:"totalBilled"`
	TotalCollected   float64 `json:"totalCollected"`
	TotalOutstanding float64 `json:"totalOutstanding"`
	PendingCount     int     `json:"pendingCount"`
	OverdueCount     int     `json:"overdueCount"`
}

package dto

// CreateFeeRequest payload for billing a student.
type CreateFeeRequest struct {
	StudentID   string  `json:"studentId" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DueDate     string  `json:"dueDate" validate:"required,datetime=2006-01-02"`
}

// RecordPaymentRequest marks a fee record as paid.
type RecordPaymentRequest struct {
	PaymentRef string `json:"paymentRef" validate:"required"`
}

// FeeQuery mirrors supported listing filters.
type FeeQuery struct {
	StudentID string `form:"studentId"`
	Status    string `form:"status"`
}

package dto

// CreateHealthRecordRequest payload for logging a medical entry.
type CreateHealthRecordRequest struct {
	StudentID  string `json:"studentId" validate:"required"`
	Condition  string `json:"condition" validate:"required"`
	Notes      string `json:"notes"`
	Medication string `json:"medication"`
}

// UpdateHealthRecordRequest payload for amending an entry.
type UpdateHealthRecordRequest struct {
	Condition  string `json:"condition"`
	Notes      string `json:"notes"`
	Medication string `json:"medication"`
}

package dto

import "github.com/hostelhub/hostelhub-api/internal/models"

// CreateComplaintRequest payload for filing a complaint.
type CreateComplaintRequest struct {
	StudentID   string                   `json:"studentId" validate:"required"`
	Category    models.ComplaintCategory `json:"category" validate:"required,complaint_category"`
	Subject     string                   `json:"subject" validate:"required"`
	Description string                   `json:"description" validate:"required"`
	RoomNumber  string                   `json:"roomNumber"`
}

// UpdateComplaintStatusRequest moves a complaint through its lifecycle.
type UpdateComplaintStatusRequest struct {
	Status     models.ComplaintStatus `json:"status" validate:"required,complaint_status"`
	Resolution string                 `json:"resolution"`
}

// ComplaintQuery mirrors supported listing filters.
type ComplaintQuery struct {
	StudentID string                   `form:"studentId"`
	Status    models.ComplaintStatus   `form:"status"`
	Category  models.ComplaintCategory `form:"category"`
}

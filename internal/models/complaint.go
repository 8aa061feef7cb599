package models

import "time"

// ComplaintCategory enumerates supported complaint categories.
type ComplaintCategory string

const (
	ComplaintCategoryMaintenance ComplaintCategory = "maintenance"
	ComplaintCategoryCleanliness ComplaintCategory = "cleanliness"
	ComplaintCategoryFood        ComplaintCategory = "food"
	ComplaintCategorySecurity    ComplaintCategory = "security"
	ComplaintCategoryOther       ComplaintCategory = "other"
)

// ComplaintStatus captures resolution state.
type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "open"
	ComplaintStatusInProgress ComplaintStatus = "in-progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
)

// Complaint is a student-raised issue tracked by the warden side.
type Complaint struct {
	ID          string            `json:"id"`
	StudentID   string            `json:"studentId"`
	StudentName string            `json:"studentName"`
	RoomNumber  string            `json:"roomNumber,omitempty"`
	Category    ComplaintCategory `json:"category"`
	Subject     string            `json:"subject"`
	Description string            `json:"description"`
	Status      ComplaintStatus   `json:"status"`
	Resolution  string            `json:"resolution,omitempty"`
	ResolvedBy  string            `json:"resolvedBy,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// RecordID implements store.Record.
func (c Complaint) RecordID() string { return c.ID }

// ComplaintFilter constrains complaint listing.
type ComplaintFilter struct {
	StudentID string
	Status    ComplaintStatus
	Category  ComplaintCategory
}

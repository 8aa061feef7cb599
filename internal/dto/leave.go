package dto

import "github.com/hostelhub/hostelhub-api/internal/models"

// CreateLeaveRequest payload for a student submitting a leave application.
type CreateLeaveRequest struct {
	StudentID   string           `json:"studentId" validate:"required"`
	StudentName string           `json:"studentName" validate:"required"`
	RoomNumber  string           `json:"roomNumber"`
	StartDate   string           `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string           `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason      string           `json:"reason" validate:"required"`
	Type        models.LeaveType `json:"type" validate:"required,leave_type"`
}

// DecisionRequest captures reviewer remarks for recommend/approve/reject.
type DecisionRequest struct {
	Remarks string `json:"remarks" validate:"required"`
}

// LeaveQuery mirrors supported listing filters.
type LeaveQuery struct {
	StudentID string             `form:"studentId"`
	Status    models.LeaveStatus `form:"status"`
	Type      models.LeaveType   `form:"type"`
}

// ExportQuery selects format and status scope for leave exports.
type ExportQuery struct {
	Format string `form:"format"`
	Status string `form:"status"`
}

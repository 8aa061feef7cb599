package models

import "time"

// NotificationType classifies a notification for dashboard rendering.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
)

// NotificationPriority orders notifications in the dashboard feed.
type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityHigh   NotificationPriority = "high"
)

// Notification is a derived record created as a side effect of a decision
// (or a warden broadcast). Created once, never updated except the read flag.
type Notification struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Message         string               `json:"message"`
	Type            NotificationType     `json:"type"`
	Priority        NotificationPriority `json:"priority"`
	Timestamp       time.Time            `json:"timestamp"`
	Read            bool                 `json:"read"`
	TargetRoles     []UserRole           `json:"targetRoles,omitempty"`
	TargetStudentID string               `json:"targetStudentId,omitempty"`
}

// RecordID implements store.Record.
func (n Notification) RecordID() string { return n.ID }

// NotificationFilter constrains notification listing.
type NotificationFilter struct {
	StudentID  string
	Role       UserRole
	UnreadOnly bool
}

// VisibleTo reports whether the notification targets the given audience.
func (n Notification) VisibleTo(role UserRole, studentID string) bool {
	if n.TargetStudentID != "" && n.TargetStudentID == studentID {
		return true
	}
	for _, r := range n.TargetRoles {
		if r == role {
			return true
		}
	}
	return n.TargetStudentID == "" && len(n.TargetRoles) == 0
}

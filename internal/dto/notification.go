package dto

import "github.com/hostelhub/hostelhub-api/internal/models"

// BroadcastRequest payload for a warden-side announcement notification.
type BroadcastRequest struct {
	Title       string                      `json:"title" validate:"required"`
	Message     string                      `json:"message" validate:"required"`
	Type        models.NotificationType     `json:"type" validate:"omitempty,notification_type"`
	Priority    models.NotificationPriority `json:"priority" validate:"omitempty,notification_priority"`
	TargetRoles []models.UserRole           `json:"targetRoles"`
}

// NotificationQuery mirrors supported listing filters.
type NotificationQuery struct {
	UnreadOnly bool `form:"unread"`
}

package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hostelhub/hostelhub-api/internal/dto"
	"github.com/hostelhub/hostelhub-api/internal/models"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
	"github.com/hostelhub/hostelhub-api/pkg/jobs"
)

type notificationRepository interface {
	Create(n *models.Notification) error
	List(filter models.NotificationFilter) []models.Notification
	GetByID(id string) (*models.Notification, error)
	MarkRead(id string) (*models.Notification, error)
	Delete(id string) error
}

// NotificationService serves the notification feed and warden broadcasts.
type NotificationService struct {
	repo       notificationRepository
	dispatcher notificationDispatcher
	validator  *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
}

// NewNotificationService constructs the service.
func NewNotificationService(repo notificationRepository, dispatcher notificationDispatcher, validate *validator.Validate, logger *zap.Logger) *NotificationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &NotificationService{repo: repo, dispatcher: dispatcher, validator: validate, logger: logger, now: time.Now}
	svc.validator.RegisterValidation("notification_type", func(fl validator.FieldLevel) bool {
		switch models.NotificationType(fl.Field().String()) {
		case models.NotificationTypeInfo, models.NotificationTypeSuccess,
			models.NotificationTypeWarning, models.NotificationTypeError:
			return true
		default:
			return false
		}
	})
	svc.validator.RegisterValidation("notification_priority", func(fl validator.FieldLevel) bool {
		switch models.NotificationPriority(fl.Field().String()) {
		case models.NotificationPriorityLow, models.NotificationPriorityNormal, models.NotificationPriorityHigh:
			return true
		default:
			return false
		}
	})
	return svc
}

// List returns the feed visible to the actor, newest first.
func (s *NotificationService) List(query dto.NotificationQuery, actor *models.JWTClaims) ([]models.Notification, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	return s.repo.List(models.NotificationFilter{
		StudentID:  actor.StudentID,
		Role:       actor.Role,
		UnreadOnly: query.UnreadOnly,
	}), nil
}

// Broadcast creates a warden-side announcement targeting the given roles
// (all roles when none given) and hands it to the fan-out queue.
func (s *NotificationService) Broadcast(req dto.BroadcastRequest) (*models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	n := &models.Notification{
		Title:       req.Title,
		Message:     req.Message,
		Type:        req.Type,
		Priority:    req.Priority,
		Timestamp:   s.now().UTC(),
		TargetRoles: req.TargetRoles,
	}
	if n.Type == "" {
		n.Type = models.NotificationTypeInfo
	}
	if n.Priority == "" {
		n.Priority = models.NotificationPriorityNormal
	}
	if err := s.repo.Create(n); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create notification")
	}
	if s.dispatcher != nil {
		if err := s.dispatcher.Enqueue(jobs.Job{ID: n.ID, Type: "notification.broadcast", Payload: *n}); err != nil {
			s.logger.Warn("failed to enqueue broadcast delivery", zap.String("notification_id", n.ID), zap.Error(err))
		}
	}
	return n, nil
}

// MarkRead flips the read flag, enforcing visibility for the actor.
func (s *NotificationService) MarkRead(id string, actor *models.JWTClaims) (*models.Notification, error) {
	if err := s.authorize(id, actor); err != nil {
		return nil, err
	}
	n, err := s.repo.MarkRead(id)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "notification not found")
	}
	return n, nil
}

// Dismiss removes a notification from the actor's feed.
func (s *NotificationService) Dismiss(id string, actor *models.JWTClaims) error {
	if err := s.authorize(id, actor); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "notification not found")
	}
	return nil
}

// authorize checks the notification exists and is visible to the actor.
// Ids outside the actor's feed read as missing so existence is not leaked.
// Admins see everything.
func (s *NotificationService) authorize(id string, actor *models.JWTClaims) error {
	if actor == nil {
		return appErrors.ErrUnauthorized
	}
	n, err := s.repo.GetByID(id)
	if err != nil {
		return appErrors.Clone(appErrors.ErrNotFound, "notification not found")
	}
	if actor.Role != models.RoleAdmin && !n.VisibleTo(actor.Role, actor.StudentID) {
		return appErrors.Clone(appErrors.ErrNotFound, "notification not found")
	}
	return nil
}

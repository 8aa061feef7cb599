package repository

import (
	"sort"

	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// NotificationCollection names the shared store collection for notifications.
const NotificationCollection = "notifications"

// NotificationRepository provides typed access to the notifications collection.
type NotificationRepository struct {
	store *store.Store
}

// NewNotificationRepository constructs the repository.
func NewNotificationRepository(s *store.Store) *NotificationRepository {
	return &NotificationRepository{store: s}
}

// Create appends a notification, assigning an id when absent.
func (r *NotificationRepository) Create(n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.store.Add(NotificationCollection, *n)
}

// List returns notifications visible to the audience, newest first.
func (r *NotificationRepository) List(filter models.NotificationFilter) []models.Notification {
	records := r.store.Get(NotificationCollection)
	out := make([]models.Notification, 0, len(records))
	for _, rec := range records {
		n := rec.(models.Notification)
		if filter.UnreadOnly && n.Read {
			continue
		}
		if (filter.StudentID != "" || filter.Role != "") && !n.VisibleTo(filter.Role, filter.StudentID) {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// GetByID returns a single notification.
func (r *NotificationRepository) GetByID(id string) (*models.Notification, error) {
	rec, err := r.store.GetByID(NotificationCollection, id)
	if err != nil {
		return nil, err
	}
	n := rec.(models.Notification)
	return &n, nil
}

// MarkRead flips the read flag.
func (r *NotificationRepository) MarkRead(id string) (*models.Notification, error) {
	rec, err := r.store.Update(NotificationCollection, id, func(current store.Record) store.Record {
		n := current.(models.Notification)
		n.Read = true
		return n
	})
	if err != nil {
		return nil, err
	}
	n := rec.(models.Notification)
	return &n, nil
}

// Delete dismisses a notification.
func (r *NotificationRepository) Delete(id string) error {
	return r.store.Delete(NotificationCollection, id)
}

// Count returns the total number of stored notifications.
func (r *NotificationRepository) Count() int {
	return r.store.Count(NotificationCollection)
}

package repository

import (
	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// LeaveCollection names the shared store collection for leave applications.
const LeaveCollection = "leaveApplications"

// LeaveRepository provides typed access to the leave applications collection.
type LeaveRepository struct {
	store *store.Store
}

// NewLeaveRepository constructs the repository.
func NewLeaveRepository(s *store.Store) *LeaveRepository {
	return &LeaveRepository{store: s}
}

// Create appends a new leave application, assigning an id when absent.
func (r *LeaveRepository) Create(leave *models.LeaveApplication) error {
	if leave.ID == "" {
		leave.ID = uuid.NewString()
	}
	return r.store.Add(LeaveCollection, *leave)
}

// GetByID returns a copy of the leave application.
func (r *LeaveRepository) GetByID(id string) (*models.LeaveApplication, error) {
	rec, err := r.store.GetByID(LeaveCollection, id)
	if err != nil {
		return nil, err
	}
	leave := rec.(models.LeaveApplication)
	return &leave, nil
}

// List returns leave applications matching the filter in insertion order.
func (r *LeaveRepository) List(filter models.LeaveFilter) []models.LeaveApplication {
	records := r.store.Get(LeaveCollection)
	out := make([]models.LeaveApplication, 0, len(records))
	for _, rec := range records {
		leave := rec.(models.LeaveApplication)
		if filter.StudentID != "" && leave.StudentID != filter.StudentID {
			continue
		}
		if filter.Status != "" && leave.Status != filter.Status {
			continue
		}
		if filter.Type != "" && leave.Type != filter.Type {
			continue
		}
		out = append(out, leave)
	}
	return out
}

// Update applies the mutation to the stored record under the store lock.
func (r *LeaveRepository) Update(id string, apply func(*models.LeaveApplication)) (*models.LeaveApplication, error) {
	rec, err := r.store.Update(LeaveCollection, id, func(current store.Record) store.Record {
		leave := current.(models.LeaveApplication)
		apply(&leave)
		return leave
	})
	if err != nil {
		return nil, err
	}
	leave := rec.(models.LeaveApplication)
	return &leave, nil
}

// Delete removes a leave application.
func (r *LeaveRepository) Delete(id string) error {
	return r.store.Delete(LeaveCollection, id)
}

// Subscribe registers an observer for leave collection changes.
func (r *LeaveRepository) Subscribe(fn store.Observer) func() {
	return r.store.Subscribe(LeaveCollection, fn)
}

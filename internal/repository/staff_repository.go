package repository

import (
	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// StaffCollection names the shared store collection for staff members.
const StaffCollection = "staff"

// StaffRepository provides typed access to the staff collection.
type StaffRepository struct {
	store *store.Store
}

// NewStaffRepository constructs the repository.
func NewStaffRepository(s *store.Store) *StaffRepository {
	return &StaffRepository{store: s}
}

// Create appends a staff record, assigning an id when absent.
func (r *StaffRepository) Create(member *models.StaffMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	return r.store.Add(StaffCollection, *member)
}

// GetByID returns a copy of the staff record.
func (r *StaffRepository) GetByID(id string) (*models.StaffMember, error) {
	rec, err := r.store.GetByID(StaffCollection, id)
	if err != nil {
		return nil, err
	}
	member := rec.(models.StaffMember)
	return &member, nil
}

// List returns staff members matching the filter.
func (r *StaffRepository) List(filter models.StaffFilter) []models.StaffMember {
	records := r.store.Get(StaffCollection)
	out := make([]models.StaffMember, 0, len(records))
	for _, rec := range records {
		member := rec.(models.StaffMember)
		if filter.Role != "" && member.Role != filter.Role {
			continue
		}
		if filter.Shift != "" && member.Shift != filter.Shift {
			continue
		}
		if filter.Active != nil && member.Active != *filter.Active {
			continue
		}
		out = append(out, member)
	}
	return out
}

// Update applies the mutation to the stored record.
func (r *StaffRepository) Update(id string, apply func(*models.StaffMember)) (*models.StaffMember, error) {
	rec, err := r.store.Update(StaffCollection, id, func(current store.Record) store.Record {
		member := current.(models.StaffMember)
		apply(&member)
		return member
	})
	if err != nil {
		return nil, err
	}
	member := rec.(models.StaffMember)
	return &member, nil
}

// Delete removes a staff record.
func (r *StaffRepository) Delete(id string) error {
	return r.store.Delete(StaffCollection, id)
}

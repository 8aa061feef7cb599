package repository

import (
	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// ComplaintCollection names the shared store collection for complaints.
const ComplaintCollection = "complaints"

// ComplaintRepository provides typed access to the complaints collection.
type ComplaintRepository struct {
	store *store.Store
}

// NewComplaintRepository constructs the repository.
func NewComplaintRepository(s *store.Store) *ComplaintRepository {
	return &ComplaintRepository{store: s}
}

// Create appends a complaint, assigning an id when absent.
func (r *ComplaintRepository) Create(complaint *models.Complaint) error {
	if complaint.ID == "" {
		complaint.ID = uuid.NewString()
	}
	return r.store.Add(ComplaintCollection, *complaint)
}

// GetByID returns a copy of the complaint.
func (r *ComplaintRepository) GetByID(id string) (*models.Complaint, error) {
	rec, err := r.store.GetByID(ComplaintCollection, id)
	if err != nil {
		return nil, err
	}
	complaint := rec.(models.Complaint)
	return &complaint, nil
}

// List returns complaints matching the filter.
func (r *ComplaintRepository) List(filter models.ComplaintFilter) []models.Complaint {
	records := r.store.Get(ComplaintCollection)
	out := make([]models.Complaint, 0, len(records))
	for _, rec := range records {
		complaint := rec.(models.Complaint)
		if filter.StudentID != "" && complaint.StudentID != filter.StudentID {
			continue
		}
		if filter.Status != "" && complaint.Status != filter.Status {
			continue
		}
		if filter.Category != "" && complaint.Category != filter.Category {
			continue
		}
		out = append(out, complaint)
	}
	return out
}

// Update applies the mutation to the stored record.
func (r *ComplaintRepository) Update(id string, apply func(*models.Complaint)) (*models.Complaint, error) {
	rec, err := r.store.Update(ComplaintCollection, id, func(current store.Record) store.Record {
		complaint := current.(models.Complaint)
		apply(&complaint)
		return complaint
	})
	if err != nil {
		return nil, err
	}
	complaint := rec.(models.Complaint)
	return &complaint, nil
}

// Delete removes a complaint.
func (r *ComplaintRepository) Delete(id string) error {
	return r.store.Delete(ComplaintCollection, id)
}

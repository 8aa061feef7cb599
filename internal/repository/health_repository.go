package repository

import (
	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// HealthCollection names the shared store collection for health records.
const HealthCollection = "healthRecords"

// HealthRepository provides typed access to the health records collection.
type HealthRepository struct {
	store *store.Store
}

// NewHealthRepository constructs the repository.
func NewHealthRepository(s *store.Store) *HealthRepository {
	return &HealthRepository{store: s}
}

// Create appends a health record, assigning an id when absent.
func (r *HealthRepository) Create(record *models.HealthRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	return r.store.Add(HealthCollection, *record)
}

// GetByID returns a copy of the health record.
func (r *HealthRepository) GetByID(id string) (*models.HealthRecord, error) {
	rec, err := r.store.GetByID(HealthCollection, id)
	if err != nil {
		return nil, err
	}
	record := rec.(models.HealthRecord)
	return &record, nil
}

// List returns health records matching the filter.
func (r *HealthRepository) List(filter models.HealthFilter) []models.HealthRecord {
	records := r.store.Get(HealthCollection)
	out := make([]models.HealthRecord, 0, len(records))
	for _, rec := range records {
		record := rec.(models.HealthRecord)
		if filter.StudentID != "" && record.StudentID != filter.StudentID {
			continue
		}
		out = append(out, record)
	}
	return out
}

// Update applies the mutation to the stored record.
func (r *HealthRepository) Update(id string, apply func(*models.HealthRecord)) (*models.HealthRecord, error) {
	rec, err := r.store.Update(HealthCollection, id, func(current store.Record) store.Record {
		record := current.(models.HealthRecord)
		apply(&record)
		return record
	})
	if err != nil {
		return nil, err
	}
	record := rec.(models.HealthRecord)
	return &record, nil
}

// Delete removes a health record.
func (r *HealthRepository) Delete(id string) error {
	return r.store.Delete(HealthCollection, id)
}

package repository

import (
	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// FeeCollection names the shared store collection for fee records.
const FeeCollection = "fees"

// FeeRepository provides typed access to the fees collection.
type FeeRepository struct {
	store *store.Store
}

// NewFeeRepository constructs the repository.
func NewFeeRepository(s *store.Store) *FeeRepository {
	return &FeeRepository{store: s}
}

// Create appends a fee record, assigning an id when absent.
func (r *FeeRepository) Create(fee *models.FeeRecord) error {
	if fee.ID == "" {
		fee.ID = uuid.NewString()
	}
	return r.store.Add(FeeCollection, *fee)
}

// GetByID returns a copy of the fee record.
func (r *FeeRepository) GetByID(id string) (*models.FeeRecord, error) {
	rec, err := r.store.GetByID(FeeCollection, id)
	if err != nil {
		return nil, err
	}
	fee := rec.(models.FeeRecord)
	return &fee, nil
}

// List returns fee records matching the filter.
func (r *FeeRepository) List(filter models.FeeFilter) []models.FeeRecord {
	records := r.store.Get(FeeCollection)
	out := make([]models.FeeRecord, 0, len(records))
	for _, rec := range records {
		fee := rec.(models.FeeRecord)
		if filter.StudentID != "" && fee.StudentID != filter.StudentID {
			continue
		}
		if filter.Status != "" && fee.Status != filter.Status {
			continue
		}
		out = append(out, fee)
	}
	return out
}

// Update applies the mutation to the stored record.
func (r *FeeRepository) Update(id string, apply func(*models.FeeRecord)) (*models.FeeRecord, error) {
	rec, err := r.store.Update(FeeCollection, id, func(current store.Record) store.Record {
		fee := current.(models.FeeRecord)
		apply(&fee)
		return fee
	})
	if err != nil {
		return nil, err
	}
	fee := rec.(models.FeeRecord)
	return &fee, nil
}

// Delete removes a fee record.
func (r *FeeRepository) Delete(id string) error {
	return r.store.Delete(FeeCollection, id)
}

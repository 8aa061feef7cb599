package repository

import (
	"github.com/google/uuid"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/store"
)

// RoomCollection names the shared store collection for rooms.
const RoomCollection = "rooms"

// RoomRepository provides typed access to the rooms collection.
type RoomRepository struct {
	store *store.Store
}

// NewRoomRepository constructs the repository.
func NewRoomRepository(s *store.Store) *RoomRepository {
	return &RoomRepository{store: s}
}

// Create appends a room record, assigning an id when absent.
func (r *RoomRepository) Create(room *models.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	if room.Occupants == nil {
		room.Occupants = []string{}
	}
	return r.store.Add(RoomCollection, *room)
}

// GetByID returns a copy of the room record.
func (r *RoomRepository) GetByID(id string) (*models.Room, error) {
	rec, err := r.store.GetByID(RoomCollection, id)
	if err != nil {
		return nil, err
	}
	room := rec.(models.Room)
	return &room, nil
}

// GetByNumber returns the room with the given room number.
func (r *RoomRepository) GetByNumber(number string) (*models.Room, error) {
	for _, rec := range r.store.Get(RoomCollection) {
		room := rec.(models.Room)
		if room.Number == number {
			return &room, nil
		}
	}
	return nil, store.ErrNotFound
}

// List returns rooms matching the filter.
func (r *RoomRepository) List(filter models.RoomFilter) []models.Room {
	records := r.store.Get(RoomCollection)
	out := make([]models.Room, 0, len(records))
	for _, rec := range records {
		room := rec.(models.Room)
		if filter.Block != "" && room.Block != filter.Block {
			continue
		}
		if filter.Status != "" && room.Status != filter.Status {
			continue
		}
		out = append(out, room)
	}
	return out
}

// Update applies the mutation to the stored record.
func (r *RoomRepository) Update(id string, apply func(*models.Room)) (*models.Room, error) {
	rec, err := r.store.Update(RoomCollection, id, func(current store.Record) store.Record {
		room := current.(models.Room)
		apply(&room)
		return room
	})
	if err != nil {
		return nil, err
	}
	room := rec.(models.Room)
	return &room, nil
}

// Delete removes a room record.
func (r *RoomRepository) Delete(id string) error {
	return r.store.Delete(RoomCollection, id)
}

// Count returns the total number of rooms.
func (r *RoomRepository) Count() int {
	return r.store.Count(RoomCollection)
}

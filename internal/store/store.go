// Package store holds every domain collection of the hostel system in
// process memory. It is the single canonical owner of the data: repositories
// read and mutate collections exclusively through it, and dashboard consumers
// subscribe to collection changes instead of polling.
package store

import (
	"errors"
	"sync"
)

// Common store failures. Repositories translate these into typed API errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate record id")
	ErrMissingID   = errors.New("record id required")
)

// Record is the minimal contract for anything held in a collection.
type Record interface {
	RecordID() string
}

// EventType describes the mutation that triggered an event.
type EventType string

const (
	EventAdded    EventType = "added"
	EventUpdated  EventType = "updated"
	EventDeleted  EventType = "deleted"
	EventReplaced EventType = "replaced"
)

// Event is delivered to observers after a mutation commits.
type Event struct {
	Collection string
	Type       EventType
	ID         string
}

// Observer receives collection change events.
type Observer func(Event)

type subscription struct {
	id int
	fn Observer
}

// Store is the process-wide registry of named collections. A single RWMutex
// guards the whole registry: mutations are serialised, so find-then-mutate
// sequences inside one call cannot interleave.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Record
	subs        map[string][]subscription
	nextSub     int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		collections: make(map[string][]Record),
		subs:        make(map[string][]subscription),
	}
}

// Get returns a copy of the collection in insertion order. An unknown
// collection reads as empty. The returned slice is owned by the caller;
// mutating it never affects the store.
func (s *Store) Get(collection string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.collections[collection]
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// GetByID returns the first record with the given id.
func (s *Store) GetByID(collection, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.collections[collection] {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// Count returns the number of records in the collection.
func (s *Store) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

// Add appends one record to the end of the collection, creating the
// collection when absent. Records must carry a unique non-empty id; callers
// generate ids up front (the repositories use UUIDs).
func (s *Store) Add(collection string, rec Record) error {
	id := rec.RecordID()
	if id == "" {
		return ErrMissingID
	}

	s.mu.Lock()
	for _, existing := range s.collections[collection] {
		if existing.RecordID() == id {
			s.mu.Unlock()
			return ErrDuplicateID
		}
	}
	s.collections[collection] = append(s.collections[collection], rec)
	subs := s.subscribersLocked(collection)
	s.mu.Unlock()

	dispatch(subs, Event{Collection: collection, Type: EventAdded, ID: id})
	return nil
}

// Update locates the record by id and replaces it with the result of apply.
// The apply callback runs under the store lock and must not call back into
// the store. A missing id reports ErrNotFound and leaves the collection
// untouched.
func (s *Store) Update(collection, id string, apply func(Record) Record) (Record, error) {
	s.mu.Lock()
	records := s.collections[collection]
	idx := -1
	for i, rec := range records {
		if rec.RecordID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	updated := apply(records[idx])
	records[idx] = updated
	subs := s.subscribersLocked(collection)
	s.mu.Unlock()

	dispatch(subs, Event{Collection: collection, Type: EventUpdated, ID: id})
	return updated, nil
}

// Delete removes the record by rebuilding the collection without it.
func (s *Store) Delete(collection, id string) error {
	s.mu.Lock()
	records := s.collections[collection]
	filtered := make([]Record, 0, len(records))
	found := false
	for _, rec := range records {
		if rec.RecordID() == id {
			found = true
			continue
		}
		filtered = append(filtered, rec)
	}
	if !found {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.collections[collection] = filtered
	subs := s.subscribersLocked(collection)
	s.mu.Unlock()

	dispatch(subs, Event{Collection: collection, Type: EventDeleted, ID: id})
	return nil
}

// Replace swaps the full collection content. Used by the seed loader.
func (s *Store) Replace(collection string, records []Record) {
	copied := make([]Record, len(records))
	copy(copied, records)

	s.mu.Lock()
	s.collections[collection] = copied
	subs := s.subscribersLocked(collection)
	s.mu.Unlock()

	dispatch(subs, Event{Collection: collection, Type: EventReplaced})
}

// Subscribe registers an observer for one collection. Observers are invoked
// synchronously after each mutation commits, so a re-read from the callback
// observes the new state. The returned function removes the subscription.
func (s *Store) Subscribe(collection string, fn Observer) func() {
	s.mu.Lock()
	s.nextSub++
	id := s.nextSub
	s.subs[collection] = append(s.subs[collection], subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		entries := s.subs[collection]
		for i, entry := range entries {
			if entry.id == id {
				s.subs[collection] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) subscribersLocked(collection string) []Observer {
	entries := s.subs[collection]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Observer, len(entries))
	for i, entry := range entries {
		out[i] = entry.fn
	}
	return out
}

func dispatch(subs []Observer, ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}

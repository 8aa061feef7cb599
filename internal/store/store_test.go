package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID    string
	Name  string
	Count int
}

func (r testRecord) RecordID() string { return r.ID }

func TestStoreAddAndGet(t *testing.T) {
	s := New()

	require.NoError(t, s.Add("items", testRecord{ID: "a", Name: "first"}))
	require.NoError(t, s.Add("items", testRecord{ID: "b", Name: "second"}))

	records := s.Get("items")
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].RecordID())
	assert.Equal(t, "b", records[1].RecordID())

	matches := 0
	for _, rec := range records {
		if rec.RecordID() == "a" {
			matches++
			assert.Equal(t, "first", rec.(testRecord).Name)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestStoreAddRejectsDuplicateAndMissingID(t *testing.T) {
	s := New()

	require.NoError(t, s.Add("items", testRecord{ID: "a"}))
	assert.ErrorIs(t, s.Add("items", testRecord{ID: "a"}), ErrDuplicateID)
	assert.ErrorIs(t, s.Add("items", testRecord{}), ErrMissingID)
	assert.Equal(t, 1, s.Count("items"))
}

func TestStoreGetUnknownCollectionIsEmpty(t *testing.T) {
	s := New()
	assert.Empty(t, s.Get("nope"))
	assert.Equal(t, 0, s.Count("nope"))
}

func TestStoreGetReturnsCopy(t *testing.T) {
	s := New()
	require.NoError(t, s.Add("items", testRecord{ID: "a", Name: "original"}))

	records := s.Get("items")
	records[0] = testRecord{ID: "a", Name: "mutated"}

	fresh := s.Get("items")
	assert.Equal(t, "original", fresh[0].(testRecord).Name)
}

func TestStoreUpdateMergesFields(t *testing.T) {
	s := New()
	require.NoError(t, s.Add("items", testRecord{ID: "a", Name: "keep", Count: 1}))

	updated, err := s.Update("items", "a", func(rec Record) Record {
		item := rec.(testRecord)
		item.Count = 2
		return item
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.(testRecord).Count)

	rec, err := s.GetByID("items", "a")
	require.NoError(t, err)
	assert.Equal(t, "keep", rec.(testRecord).Name)
	assert.Equal(t, 2, rec.(testRecord).Count)
}

func TestStoreUpdateMissingIDLeavesCollectionUnchanged(t *testing.T) {
	s := New()
	require.NoError(t, s.Add("items", testRecord{ID: "a", Count: 1}))

	_, err := s.Update("items", "zzz", func(rec Record) Record { return rec })
	assert.ErrorIs(t, err, ErrNotFound)

	records := s.Get("items")
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].(testRecord).Count)
}

func TestStoreDelete(t *testing.T) {
	s := New()
	require.NoError(t, s.Add("items", testRecord{ID: "a"}))
	require.NoError(t, s.Add("items", testRecord{ID: "b"}))

	require.NoError(t, s.Delete("items", "a"))
	assert.ErrorIs(t, s.Delete("items", "a"), ErrNotFound)

	records := s.Get("items")
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].RecordID())
}

func TestStoreSubscribeNotifiesAfterCommit(t *testing.T) {
	s := New()

	var events []Event
	var seen int
	unsubscribe := s.Subscribe("items", func(ev Event) {
		events = append(events, ev)
		// the mutation must already be visible to a re-read
		seen = s.Count("items")
	})

	require.NoError(t, s.Add("items", testRecord{ID: "a"}))
	require.Len(t, events, 1)
	assert.Equal(t, EventAdded, events[0].Type)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, 1, seen)

	_, err := s.Update("items", "a", func(rec Record) Record { return rec })
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventUpdated, events[1].Type)

	unsubscribe()
	require.NoError(t, s.Delete("items", "a"))
	assert.Len(t, events, 2)
}

func TestStoreSubscribeScopedToCollection(t *testing.T) {
	s := New()

	var itemEvents int
	s.Subscribe("items", func(Event) { itemEvents++ })

	require.NoError(t, s.Add("others", testRecord{ID: "x"}))
	assert.Equal(t, 0, itemEvents)
}

func TestStoreConcurrentMutations(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = s.Add("items", testRecord{ID: string(rune('A' + n%26)), Count: n})
			_ = s.Get("items")
		}(i)
	}
	wg.Wait()

	// 26 distinct ids; the rest are duplicate-id rejections
	assert.Equal(t, 26, s.Count("items"))
}

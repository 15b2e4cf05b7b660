package attendance

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rollcall/internal/store"
)

type rosterKey struct {
	name string
	date string
}

// MemoryRepository keeps records in a mutex-guarded map. It backs tests and
// the memory store backend; uniqueness semantics match the Mongo index and
// rosters list in insertion order like an unsorted collection scan.
type MemoryRepository struct {
	mu    sync.RWMutex
	recs  map[rosterKey]Record
	order []rosterKey
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{recs: make(map[rosterKey]Record)}
}

func (r *MemoryRepository) Insert(_ context.Context, rec Record) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rosterKey{name: rec.Name, date: rec.Date}
	if _, ok := r.recs[key]; ok {
		return Record{}, fmt.Errorf("%w: %s already has a record for %s", store.ErrConflict, rec.Name, rec.Date)
	}
	rec.ID = primitive.NewObjectID()
	r.recs[key] = rec
	r.order = append(r.order, key)
	return rec, nil
}

func (r *MemoryRepository) FindByDate(_ context.Context, date string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var recs []Record
	for _, key := range r.order {
		if key.date == date {
			recs = append(recs, r.recs[key])
		}
	}
	return recs, nil
}

func (r *MemoryRepository) UpdatePresence(_ context.Context, name, date string, present bool) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rosterKey{name: name, date: date}
	rec, ok := r.recs[key]
	if !ok {
		return Record{}, fmt.Errorf("%w: no record for %s on %s", store.ErrNotFound, name, date)
	}
	rec.IsPresent = present
	r.recs[key] = rec
	return rec, nil
}

func (r *MemoryRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.recs))
	r.recs = make(map[rosterKey]Record)
	r.order = nil
	return n, nil
}

package announcement

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository for tests and local runs
// without a database. Posts are kept in insertion order.
type MemoryRepository struct {
	mu   sync.RWMutex
	anns []Announcement
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(_ context.Context, ann Announcement) (Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ann.ID = primitive.NewObjectID()
	r.anns = append(r.anns, ann)
	return ann, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Announcement, 0, len(r.anns))
	for i := len(r.anns) - 1; i >= 0; i-- {
		out = append(out, r.anns[i])
	}
	return out, nil
}

func (r *MemoryRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.anns))
	r.anns = nil
	return n, nil
}

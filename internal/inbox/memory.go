package inbox

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rollcall/internal/store"
)

// MemoryRepository is an in-memory Repository for tests and local runs
// without a database. Messages are kept in insertion order.
type MemoryRepository struct {
	mu   sync.RWMutex
	msgs []Message
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(_ context.Context, msg Message) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = primitive.NewObjectID()
	r.msgs = append(r.msgs, msg)
	return msg, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, 0, len(r.msgs))
	for i := len(r.msgs) - 1; i >= 0; i-- {
		out = append(out, r.msgs[i])
	}
	return out, nil
}

func (r *MemoryRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, msg := range r.msgs {
		if msg.ID.Hex() == id {
			r.msgs = append(r.msgs[:i], r.msgs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: no message with id %s", store.ErrNotFound, id)
}

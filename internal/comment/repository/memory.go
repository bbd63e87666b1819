package repository

import (
	"context"
	"sync"

	"github.com/gogotex/gogotex/backend/go-comments/internal/comment"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory Store used for local runs without MongoDB and
// for unit tests. Documents are copied in and out so callers never share a
// map with the store.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	store map[primitive.ObjectID]comment.Comment
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]comment.Comment)}
}

// Insert stores a copy of c, assigning a new ObjectID when "_id" is missing,
// and returns the id. Creation is not part of the HTTP surface; this exists
// for seeding.
func (m *MemoryRepo) Insert(c comment.Comment) primitive.ObjectID {
	doc := clone(c)
	oid, ok := doc["_id"].(primitive.ObjectID)
	if !ok {
		oid = primitive.NewObjectID()
		doc["_id"] = oid
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.store[oid]; !exists {
		m.order = append(m.order, oid)
	}
	m.store[oid] = doc
	return oid
}

func (m *MemoryRepo) FindAll(ctx context.Context) ([]comment.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]comment.Comment, 0, len(m.order))
	for _, oid := range m.order {
		out = append(out, clone(m.store[oid]))
	}
	return out, nil
}

func (m *MemoryRepo) FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (comment.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	delete(m.store, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return doc, nil
}

func (m *MemoryRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

func clone(c comment.Comment) comment.Comment {
	out := make(comment.Comment, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

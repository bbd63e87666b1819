package service

import (
	"context"
	"fmt"

	"github.com/gogotex/gogotex/backend/go-comments/internal/comment"
	"github.com/gogotex/gogotex/backend/go-comments/internal/comment/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service defines the comment operations used by the handler layer.
type Service interface {
	// List returns every stored comment in store order. The slice is never nil.
	List(ctx context.Context) ([]comment.Comment, error)
	// Delete removes the comment with the given hex id. It reports whether a
	// document was actually removed; a missing document is not an error.
	// Malformed ids yield comment.ErrInvalidID without touching the store.
	Delete(ctx context.Context, id string) (bool, error)
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}

// New returns a Service backed by the given store.
func New(store repository.Store) Service {
	return &commentService{store: store}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return New(repository.NewMemoryRepo())
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller is responsible for creating the collection (and client) and passing it in.
func NewMongoService(col *mongo.Collection) Service {
	return New(repository.NewMongoRepo(col))
}

type commentService struct {
	store repository.Store
}

func (s *commentService) List(ctx context.Context) ([]comment.Comment, error) {
	list, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find comments: %w", err)
	}
	if list == nil {
		list = []comment.Comment{}
	}
	return list, nil
}

func (s *commentService) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := comment.ParseID(id)
	if err != nil {
		return false, err
	}
	doc, err := s.store.FindByIDAndDelete(ctx, oid)
	if err != nil {
		return false, fmt.Errorf("delete comment %s: %w", id, err)
	}
	return doc != nil, nil
}

func (s *commentService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

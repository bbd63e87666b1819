package repository

import (
	"context"

	"github.com/gogotex/gogotex/backend/go-comments/internal/comment"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the comment collection as seen by the service layer.
//
// FindByIDAndDelete returns the removed document, or (nil, nil) when no
// document had that id.
type Store interface {
	FindAll(ctx context.Context) ([]comment.Comment, error)
	FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (comment.Comment, error)
	Ping(ctx context.Context) error
}

var (
	_ Store = (*MemoryRepo)(nil)
	_ Store = (*MongoRepo)(nil)
)

package repository

import (
	"context"
	"errors"

	"github.com/gogotex/gogotex/backend/go-comments/internal/comment"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoRepo implements Store on top of a MongoDB collection. Documents are
// decoded into generic maps so fields written by other services survive the
// round trip to JSON.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) FindAll(ctx context.Context) ([]comment.Comment, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []comment.Comment{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoRepo) FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (comment.Comment, error) {
	var d comment.Comment
	err := m.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, readpref.Primary())
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gogotex/gogotex/backend/go-comments/internal/comment"
	"github.com/gogotex/gogotex/backend/go-comments/internal/comment/repository"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore records calls and returns canned results
type fakeStore struct {
	list      []comment.Comment
	listErr   error
	deleted   comment.Comment
	deleteErr error
	calls     int
}

func (f *fakeStore) FindAll(ctx context.Context) ([]comment.Comment, error) {
	f.calls++
	return f.list, f.listErr
}

func (f *fakeStore) FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (comment.Comment, error) {
	f.calls++
	return f.deleted, f.deleteErr
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func TestList(t *testing.T) {
	repo := repository.NewMemoryRepo()
	repo.Insert(comment.Comment{"body": "a"})
	repo.Insert(comment.Comment{"body": "b"})
	svc := New(repo)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestList_NilFromStoreBecomesEmpty(t *testing.T) {
	svc := New(&fakeStore{})
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestList_WrapsStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	svc := New(&fakeStore{listErr: cause})
	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, cause)
}

func TestDelete_InvalidIDSkipsStore(t *testing.T) {
	store := &fakeStore{}
	svc := New(store)
	removed, err := svc.Delete(context.Background(), "not-a-valid-id")
	require.ErrorIs(t, err, comment.ErrInvalidID)
	require.False(t, removed)
	require.Zero(t, store.calls)
}

func TestDelete_ReportsWhetherRemoved(t *testing.T) {
	repo := repository.NewMemoryRepo()
	oid := repo.Insert(comment.Comment{"body": "a"})
	svc := New(repo)

	removed, err := svc.Delete(context.Background(), oid.Hex())
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = svc.Delete(context.Background(), oid.Hex())
	require.NoError(t, err)
	require.False(t, removed)
}

func TestDelete_WrapsStoreError(t *testing.T) {
	cause := errors.New("not primary")
	svc := New(&fakeStore{deleteErr: cause})
	_, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, comment.ErrInvalidID)
}

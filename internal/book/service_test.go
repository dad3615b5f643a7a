package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booklist/internal/storage"
)

func newTestService() *Service {
	return NewService(storage.NewMemoryStore())
}

func TestService_List(t *testing.T) {
	books, err := newTestService().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 5)
}

func TestService_GetByISBN(t *testing.T) {
	svc := newTestService()

	b, err := svc.GetByISBN(context.Background(), "978-0-123456-78-9")
	require.NoError(t, err)
	assert.Equal(t, "The Great Gatsby", b.Title)
	assert.Equal(t, "F. Scott Fitzgerald", b.Author)
	assert.Equal(t, 1925, b.Year)

	_, err = svc.GetByISBN(context.Background(), "000-0-000000-00-0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_FindByAuthor_CaseInsensitive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	lower, err := svc.FindByAuthor(ctx, "fitzgerald")
	require.NoError(t, err)
	upper, err := svc.FindByAuthor(ctx, "FITZGERALD")
	require.NoError(t, err)

	require.Len(t, lower, 1)
	assert.Equal(t, lower, upper)
	assert.Equal(t, "The Great Gatsby", lower[0].Title)
}

func TestService_FindByAuthor_Substring(t *testing.T) {
	books, err := newTestService().FindByAuthor(context.Background(), "or")
	require.NoError(t, err)

	// George Orwell only; substring matches anywhere in the author name
	require.Len(t, books, 1)
	assert.Equal(t, "1984", books[0].Title)
}

func TestService_FindByAuthor_NoMatchIsEmptyNotError(t *testing.T) {
	books, err := newTestService().FindByAuthor(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestService_FindByTitle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	books, err := svc.FindByTitle(ctx, "the")
	require.NoError(t, err)
	assert.Len(t, books, 2) // The Great Gatsby, The Catcher in the Rye

	books, err = svc.FindByTitle(ctx, "PRIDE")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Pride and Prejudice", books[0].Title)
}

func TestService_Exists(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ok, err := svc.Exists(ctx, "978-0-112233-44-5")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, "000-0-000000-00-0")
	require.NoError(t, err)
	assert.False(t, ok)
}

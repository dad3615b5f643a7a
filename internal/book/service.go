package book

import (
	"context"
	"strings"

	"booklist/internal/storage"
)

// Service answers read-only catalog queries. Every call reloads the
// books collection from the store, so edits to the backing document
// show up without a restart.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) load(ctx context.Context) ([]Book, error) {
	books := []Book{}
	if err := s.store.Load(ctx, storage.CollectionBooks, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// List returns every book in the catalog.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.load(ctx)
}

// GetByISBN returns the book with that exact ISBN, or ErrNotFound.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	books, err := s.load(ctx)
	if err != nil {
		return Book{}, err
	}
	for _, b := range books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

// FindByAuthor returns every book whose author contains the substring,
// case-insensitively. No matches is an empty list, not an error.
func (s *Service) FindByAuthor(ctx context.Context, author string) ([]Book, error) {
	books, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(author)
	matched := []Book{}
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Author), needle) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// FindByTitle is FindByAuthor over the title field.
func (s *Service) FindByTitle(ctx context.Context, title string) ([]Book, error) {
	books, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(title)
	matched := []Book{}
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// Exists reports whether the ISBN is in the catalog. The review
// service uses it as the referential check before a write.
func (s *Service) Exists(ctx context.Context, isbn string) (bool, error) {
	_, err := s.GetByISBN(ctx, isbn)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

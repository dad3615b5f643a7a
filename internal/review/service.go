package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booklist/internal/storage"
)

// Catalog is the referential check against the book collection.
// *book.Service satisfies it.
type Catalog interface {
	Exists(ctx context.Context, isbn string) (bool, error)
}

type Service struct {
	store   storage.Store
	catalog Catalog
}

func NewService(store storage.Store, catalog Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

func (s *Service) loadReviews(ctx context.Context) ([]Review, error) {
	reviews := []Review{}
	if err := s.store.Load(ctx, storage.CollectionReviews, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListByISBN returns every review for that book, oldest first.
func (s *Service) ListByISBN(ctx context.Context, isbn string) ([]Review, error) {
	reviews, err := s.loadReviews(ctx)
	if err != nil {
		return nil, err
	}
	matched := []Review{}
	for _, rev := range reviews {
		if rev.ISBN == isbn {
			matched = append(matched, rev)
		}
	}
	return matched, nil
}

// Upsert adds or replaces the caller's review of isbn. An existing
// (isbn, user.ID) review keeps its id and gets the new rating, comment
// and timestamp; otherwise a new review is appended. The returned bool
// is true for a creation, false for a replacement.
func (s *Service) Upsert(ctx context.Context, user Identity, isbn string, rating int, comment string) (Review, bool, error) {
	if rating < 1 || rating > 5 {
		return Review{}, false, ErrRatingRange
	}

	exists, err := s.catalog.Exists(ctx, isbn)
	if err != nil {
		return Review{}, false, err
	}
	if !exists {
		return Review{}, false, ErrBookNotFound
	}

	reviews, err := s.loadReviews(ctx)
	if err != nil {
		return Review{}, false, err
	}

	now := time.Now().UTC()
	for i := range reviews {
		if reviews[i].ISBN == isbn && reviews[i].UserID == user.ID {
			reviews[i].Username = user.Username
			reviews[i].Rating = rating
			reviews[i].Comment = comment
			reviews[i].UpdatedAt = now
			if err := s.store.Save(ctx, storage.CollectionReviews, reviews); err != nil {
				return Review{}, false, err
			}
			return reviews[i], false, nil
		}
	}

	rev := Review{
		ID:        uuid.NewString(),
		ISBN:      isbn,
		UserID:    user.ID,
		Username:  user.Username,
		Rating:    rating,
		Comment:   comment,
		UpdatedAt: now,
	}
	reviews = append(reviews, rev)
	if err := s.store.Save(ctx, storage.CollectionReviews, reviews); err != nil {
		return Review{}, false, err
	}
	return rev, true, nil
}

// Delete removes the caller's own review of isbn. ErrNotFound when no
// such review exists; other users' reviews are never touched.
func (s *Service) Delete(ctx context.Context, user Identity, isbn string) error {
	reviews, err := s.loadReviews(ctx)
	if err != nil {
		return err
	}

	for i := range reviews {
		if reviews[i].ISBN == isbn && reviews[i].UserID == user.ID {
			reviews = append(reviews[:i], reviews[i+1:]...)
			return s.store.Save(ctx, storage.CollectionReviews, reviews)
		}
	}
	return ErrNotFound
}

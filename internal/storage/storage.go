package storage

import "context"

// Collection names. Each one is persisted as a single JSON document
// holding the whole list of records.
const (
	CollectionBooks   = "books"
	CollectionUsers   = "users"
	CollectionReviews = "reviews"
)

// Store reads and writes whole collections.
//
// Load decodes the named collection into v, which must be a pointer to
// a slice. A collection that does not exist yet, or whose document is
// not valid JSON, reads as empty: v is left untouched and no error is
// returned. Save replaces the entire collection; a partially written
// document is never observable.
//
// There is no cross-process locking. Two concurrent read-modify-write
// cycles on the same collection can race, and the last writer wins at
// the collection level.
type Store interface {
	Load(ctx context.Context, collection string, v any) error
	Save(ctx context.Context, collection string, v any) error
}

package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore holds each collection's JSON document in a map. It backs
// ephemeral runs and lets tests inject a store without touching disk.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore returns a store seeded the same way a fresh file
// store would be: the fixed catalog plus empty users and reviews.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{docs: make(map[string][]byte)}
	ctx := context.Background()
	_ = s.Save(ctx, CollectionBooks, seedBooks())
	_ = s.Save(ctx, CollectionUsers, []any{})
	_ = s.Save(ctx, CollectionReviews, []any{})
	return s
}

func (s *MemoryStore) Load(ctx context.Context, collection string, v any) error {
	s.mu.RLock()
	doc, ok := s.docs[collection]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(doc, v); err != nil {
		return nil
	}
	return nil
}

func (s *MemoryStore) Save(ctx context.Context, collection string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[collection] = doc
	s.mu.Unlock()
	return nil
}

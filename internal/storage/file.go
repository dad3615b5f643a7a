package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps one <collection>.json file per collection under a
// data directory. Writes go to a temp file in the same directory and
// are renamed into place, so readers never see a half-written document.
//
// The mutex only serializes file access within this process; it is not
// a transaction. See the Store contract for the documented race.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the data directory if needed and seeds any
// collection whose backing file does not exist yet: books get the
// fixed catalog, users and reviews start empty.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &FileStore{dir: dir}

	ctx := context.Background()
	if !s.exists(CollectionBooks) {
		if err := s.Save(ctx, CollectionBooks, seedBooks()); err != nil {
			return nil, err
		}
	}
	for _, collection := range []string{CollectionUsers, CollectionReviews} {
		if !s.exists(collection) {
			if err := s.Save(ctx, collection, []any{}); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) exists(collection string) bool {
	_, err := os.Stat(s.path(collection))
	return err == nil
}

func (s *FileStore) Load(ctx context.Context, collection string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		// missing file reads as an empty collection
		return nil
	}
	if !json.Valid(data) {
		// a mangled document reads as empty rather than failing the request
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil
	}
	return nil
}

func (s *FileStore) Save(ctx context.Context, collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, collection+"-*.json.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(collection))
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileStore caches one JSON blob per key as a file under dir. Entries
// older than ttl are treated as misses; so are unreadable or non-JSON
// files (a partial write from a crashed run looks like a miss, not a
// failure).
type FileStore struct {
	dir string
	ttl time.Duration
}

// NewFileStore creates the cache directory if needed and returns a store.
func NewFileStore(dir string, ttl time.Duration) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}
	return &FileStore{dir: dir, ttl: ttl}, nil
}

// Get returns the cached blob for key, or !ok on any kind of miss.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool) {
	path := s.path(key)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if s.ttl > 0 && time.Since(info.ModTime()) > s.ttl {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[cache] read error for %s, treating as miss: %v", key, err)
		return nil, false
	}
	if !json.Valid(data) {
		log.Printf("[cache] corrupt entry for %s, treating as miss", key)
		return nil, false
	}
	return data, true
}

// Set writes the blob to a uniquely named temp file and renames it into
// place, so concurrent readers never observe a half-written entry.
func (s *FileStore) Set(_ context.Context, key string, data []byte) error {
	path := s.path(key)
	tmp := path + "." + uuid.NewString() + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing cache entry %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("placing cache entry %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	// Keys are built from ids and should already be filename-safe,
	// but never let a separator escape the cache dir.
	key = strings.NewReplacer("/", "_", "\\", "_").Replace(key)
	return filepath.Join(s.dir, key+".json")
}

// internal/storage/file.go
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the whole key space as one JSON object on disk.
// Every Set/Remove rewrites the file through a temp-file rename so a
// crash mid-write never leaves a truncated store behind.
type FileStore struct {
	mtx  sync.Mutex
	path string
	data map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	s := &FileStore{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		// A corrupt file falls back to an empty store rather than
		// refusing to start.
		s.data = make(map[string]string)
	}

	return s, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	value, ok := s.data[key]
	return value, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.data[key] = value
	return s.flush()
}

func (s *FileStore) Remove(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.data, key)
	return s.flush()
}

func (s *FileStore) flush() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}

	return nil
}

package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps objects in memory. Used in tests and local development
// where no MinIO endpoint is available.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStore creates an empty in-memory object store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Upload stores the bytes and returns a synthetic URL
func (s *MemoryStore) Upload(_ context.Context, objectName string, data []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = append([]byte(nil), data...)
	return fmt.Sprintf("memory://gallery/%s", objectName), nil
}

// Delete removes the object if present
func (s *MemoryStore) Delete(_ context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectName)
	return nil
}

// Has reports whether an object is stored. Intended for tests.
func (s *MemoryStore) Has(objectName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[objectName]
	return ok
}

package blob

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemStore is an in-memory Store for tests and local development.
type MemStore struct {
	mu      sync.RWMutex
	bucket  string
	objects map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(bucket string) *MemStore {
	if bucket == "" {
		bucket = "local"
	}
	return &MemStore{
		bucket:  bucket,
		objects: make(map[string][]byte),
	}
}

// Bucket returns the configured bucket name.
func (m *MemStore) Bucket() string { return m.bucket }

// Put stores a copy of data under key.
func (m *MemStore) Put(_ context.Context, key string, data []byte, _ string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)
	return nil
}

// Get returns a copy of the object at key.
func (m *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return append([]byte(nil), data...), nil
}

// Delete removes the object at key.
func (m *MemStore) Delete(_ context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Exists reports whether an object exists at key.
func (m *MemStore) Exists(_ context.Context, key string) (bool, error) {
	if err := ValidateKey(key); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok, nil
}

// PresignPut returns a placeholder URL; in-memory objects cannot be uploaded
// to directly.
func (m *MemStore) PresignPut(_ context.Context, key string, _ time.Duration) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return fmt.Sprintf("mem://%s/%s", m.bucket, key), nil
}

// Len returns the number of stored objects.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

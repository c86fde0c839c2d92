package oss

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// MemoryStorage keeps object names in memory. It backs tests and local
// runs without a MinIO instance.
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string]string
	baseURL string

	// FailStore forces StoreFile to fail when > 0, after SkipStores
	// calls succeeded first.
	FailStore  int
	SkipStores int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		objects: make(map[string]string),
		baseURL: "memory://blobs",
	}
}

func (s *MemoryStorage) StoreFile(ctx context.Context, objectName, filePath, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SkipStores > 0 {
		s.SkipStores--
	} else if s.FailStore > 0 {
		s.FailStore--
		return "", errors.New("memory storage: store failed")
	}
	s.objects[objectName] = filePath
	return s.baseURL + "/" + objectName, nil
}

func (s *MemoryStorage) Remove(ctx context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectName)
	return nil
}

func (s *MemoryStorage) Exists(ctx context.Context, objectName string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[objectName]
	return ok, nil
}

func (s *MemoryStorage) ObjectFromURL(url string) string {
	return trimURLPrefix(url, s.baseURL)
}

// Len reports how many objects are currently stored.
func (s *MemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

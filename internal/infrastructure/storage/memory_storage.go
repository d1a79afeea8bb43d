package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/langliu/budgie/internal/domain/repositories"
)

type memoryObject struct {
	body         []byte
	contentType  string
	lastModified time.Time
}

// MemoryStorage is a map-backed ObjectStorage for tests and local runs.
type MemoryStorage struct {
	mu            sync.RWMutex
	objects       map[string]memoryObject
	publicBaseURL string

	// PutCalls counts writes so tests can assert the dedup path performs
	// no storage work.
	PutCalls int
}

func NewMemoryStorage(publicBaseURL string) *MemoryStorage {
	return &MemoryStorage{
		objects:       make(map[string]memoryObject),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *MemoryStorage) Put(_ context.Context, key string, body []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PutCalls++
	s.objects[key] = memoryObject{
		body:         append([]byte(nil), body...),
		contentType:  contentType,
		lastModified: time.Now(),
	}
	return nil
}

func (s *MemoryStorage) Head(_ context.Context, key string) (*repositories.ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", key)
	}
	return &repositories.ObjectInfo{
		Key:          key,
		Size:         int64(len(obj.body)),
		LastModified: obj.lastModified,
	}, nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *MemoryStorage) List(_ context.Context, prefix string) ([]repositories.ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var objects []repositories.ObjectInfo
	for key, obj := range s.objects {
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, repositories.ObjectInfo{
				Key:          key,
				Size:         int64(len(obj.body)),
				LastModified: obj.lastModified,
			})
		}
	}
	return objects, nil
}

func (s *MemoryStorage) PresignPut(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	return s.publicBaseURL + "/presigned/" + key, nil
}

func (s *MemoryStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// Len reports the number of stored objects. Test helper.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Keys lists every stored key. Test helper.
func (s *MemoryStorage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.objects))
	for key := range s.objects {
		keys = append(keys, key)
	}
	return keys
}

// Package db persists analyses so they can be fetched again by ID.
package db

import (
	"context"
	"errors"
	"sync"

	"github.com/jsphweid/motifdex/model"
)

var ErrNotFound = errors.New("analysis not found")

type Store interface {
	Put(ctx context.Context, a model.Analysis) error
	Get(ctx context.Context, id string) (*model.Analysis, error)
}

// MemoryStore keeps analyses for the lifetime of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[string]model.Analysis
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{analyses: make(map[string]model.Analysis)}
}

func (s *MemoryStore) Put(ctx context.Context, a model.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[a.ID] = a
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*model.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.analyses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

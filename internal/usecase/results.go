package usecase

import (
	"sync"

	"github.com/cartfinder/backend/internal/domain"
)

// ResultStore holds the single current search result, overwritten by each
// new search. It is an explicit object handed to the delivery layer rather
// than ambient global state; nothing is persisted beyond process memory.
type ResultStore struct {
	mu      sync.RWMutex
	current *domain.SearchResult
}

// NewResultStore creates an empty result store.
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Set replaces the current result.
func (r *ResultStore) Set(result *domain.SearchResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = result
}

// Latest returns the most recent result, or ErrNoResult when no search
// has completed yet.
func (r *ResultStore) Latest() (*domain.SearchResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return nil, domain.ErrNoResult
	}
	return r.current, nil
}

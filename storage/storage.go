// Package storage provides the in-memory metrics store filled by one
// collection run.
package storage

import (
	"fmt"
	"sync"

	"github.com/and161185/memstat/internal/errs"
)

// Store maps a metric name to its integer value (bytes, or a raw level or
// percentage). It is filled once by the collector and read-only afterwards.
type Store struct {
	metrics map[string]int64
	mu      sync.RWMutex
}

func New() *Store {
	return &Store{
		metrics: make(map[string]int64),
	}
}

// Save registers a metric value, overwriting any previous entry.
func (store *Store) Save(name string, value int64) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.metrics[name] = value
}

// Get returns the value for name or errs.ErrMetricNotFound.
func (store *Store) Get(name string) (int64, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	val, ok := store.metrics[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, errs.ErrMetricNotFound)
	}
	return val, nil
}

// All returns a copy of the stored metrics.
func (store *Store) All() map[string]int64 {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make(map[string]int64, len(store.metrics))
	for k, v := range store.metrics {
		result[k] = v
	}
	return result
}

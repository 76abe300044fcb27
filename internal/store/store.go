// Package store provides persistence for brand profiles. Profiles live in a
// single shared mapping keyed by brand name; writes are last-write-wins and
// there is no versioning.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/social-poster/internal/types"
)

// Store is the brand profile persistence interface. Get returns (nil, nil)
// when the name is absent; callers must treat a nil profile as "not found",
// not as an error.
type Store interface {
	Get(ctx context.Context, name string) (*types.BrandProfile, error)
	Set(ctx context.Context, name string, profile *types.BrandProfile) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// MemoryStore is an in-memory Store used in tests and as a fallback when no
// store path is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]types.BrandProfile
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]types.BrandProfile)}
}

// Get returns a copy of the stored profile, or nil when absent.
func (s *MemoryStore) Get(_ context.Context, name string) (*types.BrandProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[name]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

// Set stores a profile under name, replacing any previous entry.
func (s *MemoryStore) Set(_ context.Context, name string, profile *types.BrandProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[name] = *profile
	return nil
}

// List returns the stored brand names in sorted order.
func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

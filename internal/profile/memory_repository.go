package profile

import (
	"context"
	"sync"
)

// InMemoryRepository is a volatile, process-lifetime implementation of
// Repository. Same-key concurrent saves resolve last-write-wins.
type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewInMemoryRepository creates a new in-memory profile repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		profiles: make(map[string]*Profile),
	}
}

// Save inserts or overwrites the entry keyed by the profile's user ID.
func (r *InMemoryRepository) Save(_ context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *p
	r.profiles[p.UserID] = &cpy
	return nil
}

// Get retrieves a profile by user ID.
func (r *InMemoryRepository) Get(_ context.Context, userID string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}

	// Return a copy
	cpy := *p
	return &cpy, nil
}

// Ensure InMemoryRepository implements Repository.
var _ Repository = (*InMemoryRepository)(nil)

package masters

import (
	"context"
	"sync"

	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
)

// InMemoryRepository is an in-memory master registry for testing and development
type InMemoryRepository struct {
	mu      sync.RWMutex
	members map[string]struct{}
}

// NewInMemoryRepository creates a new in-memory master registry
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		members: make(map[string]struct{}),
	}
}

// Add inserts a user ID into the set. Reports whether it was newly added.
func (r *InMemoryRepository) Add(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, dnderr.InvalidArgument("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.members[userID]; exists {
		return false, nil
	}

	r.members[userID] = struct{}{}
	return true, nil
}

// Remove deletes a user ID from the set. Reports whether it was present.
func (r *InMemoryRepository) Remove(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, dnderr.InvalidArgument("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.members[userID]; !exists {
		return false, nil
	}

	delete(r.members, userID)
	return true, nil
}

// Contains checks membership
func (r *InMemoryRepository) Contains(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, dnderr.InvalidArgument("user ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.members[userID]
	return exists, nil
}

// List returns all master user IDs
func (r *InMemoryRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.members))
	for id := range r.members {
		ids = append(ids, id)
	}
	return ids, nil
}

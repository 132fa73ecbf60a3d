package players

import (
	"context"
	"sync"

	"github.com/archaosrpg/archaos-bot/internal/domain/character"
	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the player repository.
// Useful for testing and development.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

// Upsert writes a full replace of the row keyed by the character's user ID
func (r *InMemoryRepository) Upsert(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.UserID == "" {
		return dnderr.InvalidArgument("character user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy to avoid external modifications
	charCopy := *char
	r.characters[char.UserID] = &charCopy

	return nil
}

// Get retrieves a character by user ID
func (r *InMemoryRepository) Get(ctx context.Context, userID string) (*character.Character, error) {
	if userID == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[userID]
	if !exists {
		return nil, dnderr.NotFoundf("no character for user '%s'", userID).
			WithMeta("user_id", userID)
	}

	charCopy := *char
	return &charCopy, nil
}

// Delete removes a character. Deleting a missing row is a no-op.
func (r *InMemoryRepository) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.characters, userID)
	return nil
}

// UpdateAttributes overwrites the five attribute scores, preserving all other fields
func (r *InMemoryRepository) UpdateAttributes(ctx context.Context, userID string, attrs character.Attributes) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[userID]
	if !exists {
		return dnderr.NotFoundf("no character for user '%s'", userID).
			WithMeta("user_id", userID)
	}

	char.Attributes = attrs
	return nil
}

// UpdateAvatar sets the avatar URL, preserving all other fields
func (r *InMemoryRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[userID]
	if !exists {
		return dnderr.NotFoundf("no character for user '%s'", userID).
			WithMeta("user_id", userID)
	}

	char.AvatarURL = avatarURL
	return nil
}

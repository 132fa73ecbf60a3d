package players

//go:generate mockgen -destination=mock/mock.go -package=mockplayers -source=interface.go

import (
	"context"

	"github.com/archaosrpg/archaos-bot/internal/domain/character"
)

// Repository defines the interface for character sheet persistence.
// There is at most one character per user ID; Upsert replaces the row
// wholesale while the narrow updates touch only their own fields.
type Repository interface {
	// Upsert writes a full replace of the row keyed by the character's user ID
	Upsert(ctx context.Context, char *character.Character) error

	// Get retrieves a character by user ID
	Get(ctx context.Context, userID string) (*character.Character, error)

	// Delete removes a character. Deleting a missing row is a no-op.
	Delete(ctx context.Context, userID string) error

	// UpdateAttributes overwrites the five attribute scores, preserving all other fields
	UpdateAttributes(ctx context.Context, userID string, attrs character.Attributes) error

	// UpdateAvatar sets the avatar URL, preserving all other fields
	UpdateAvatar(ctx context.Context, userID, avatarURL string) error
}

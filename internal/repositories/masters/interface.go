package masters

//go:generate mockgen -destination=mock/mock.go -package=mockmasters -source=interface.go

import (
	"context"
)

// Repository persists the set of privileged ("master") user IDs.
// Every mutation is a durable write; there is no in-memory-only state.
type Repository interface {
	// Add inserts a user ID into the set. Reports whether it was newly added.
	Add(ctx context.Context, userID string) (bool, error)

	// Remove deletes a user ID from the set. Reports whether it was present.
	Remove(ctx context.Context, userID string) (bool, error)

	// Contains checks membership
	Contains(ctx context.Context, userID string) (bool, error)

	// List returns all master user IDs
	List(ctx context.Context) ([]string, error)
}

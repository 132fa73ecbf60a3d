package masters

import (
	"context"
	"fmt"

	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	"github.com/redis/go-redis/v9"
)

// mastersKey is the Redis set holding all master user IDs
const mastersKey = "masters"

// redisRepo implements the Repository interface using a Redis set
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed master registry
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

// Add inserts a user ID into the set. Reports whether it was newly added.
func (r *redisRepo) Add(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, dnderr.InvalidArgument("user ID is required")
	}

	added, err := r.client.SAdd(ctx, mastersKey, userID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add master: %w", err)
	}

	return added > 0, nil
}

// Remove deletes a user ID from the set. Reports whether it was present.
func (r *redisRepo) Remove(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, dnderr.InvalidArgument("user ID is required")
	}

	removed, err := r.client.SRem(ctx, mastersKey, userID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to remove master: %w", err)
	}

	return removed > 0, nil
}

// Contains checks membership
func (r *redisRepo) Contains(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, dnderr.InvalidArgument("user ID is required")
	}

	member, err := r.client.SIsMember(ctx, mastersKey, userID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check master: %w", err)
	}

	return member, nil
}

// List returns all master user IDs
func (r *redisRepo) List(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, mastersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list masters: %w", err)
	}

	return ids, nil
}

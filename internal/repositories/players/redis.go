package players

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/archaosrpg/archaos-bot/internal/domain/character"
	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	"github.com/redis/go-redis/v9"
)

// playerData is the serialized form of a character in Redis
type playerData struct {
	UserID     string               `json:"user_id"`
	Name       string               `json:"name"`
	Level      int                  `json:"level"`
	HitPoints  int                  `json:"hit_points"`
	Race       character.Race       `json:"race"`
	Class      character.Class      `json:"char_class"`
	Attributes character.Attributes `json:"attributes"`
	AvatarURL  string               `json:"avatar_url,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed player repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// NewRedis creates a Redis-backed player repository with defaults
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// key generates the Redis key for a player's character
func (r *redisRepo) key(userID string) string {
	return fmt.Sprintf("player:%s", userID)
}

// Upsert writes a full replace of the row keyed by the character's user ID
func (r *redisRepo) Upsert(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.UserID == "" {
		return dnderr.InvalidArgument("character user ID is required")
	}

	now := time.Now().UTC()
	data := playerData{
		UserID:     char.UserID,
		Name:       char.Name,
		Level:      char.Level,
		HitPoints:  char.HitPoints,
		Race:       char.Race,
		Class:      char.Class,
		Attributes: char.Attributes,
		AvatarURL:  char.AvatarURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Preserve the original creation time on replace
	if existing, err := r.read(ctx, char.UserID); err == nil {
		data.CreatedAt = existing.CreatedAt
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(char.UserID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to store character: %w", err)
	}

	return nil
}

// Get retrieves a character by user ID
func (r *redisRepo) Get(ctx context.Context, userID string) (*character.Character, error) {
	if userID == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}

	data, err := r.read(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &character.Character{
		UserID:     data.UserID,
		Name:       data.Name,
		Level:      data.Level,
		HitPoints:  data.HitPoints,
		Race:       data.Race,
		Class:      data.Class,
		Attributes: data.Attributes,
		AvatarURL:  data.AvatarURL,
	}, nil
}

// Delete removes a character. Deleting a missing row is a no-op.
func (r *redisRepo) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID is required")
	}

	if err := r.client.Del(ctx, r.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

// UpdateAttributes overwrites the five attribute scores, preserving all other fields
func (r *redisRepo) UpdateAttributes(ctx context.Context, userID string, attrs character.Attributes) error {
	return r.patch(ctx, userID, func(data *playerData) {
		data.Attributes = attrs
	})
}

// UpdateAvatar sets the avatar URL, preserving all other fields
func (r *redisRepo) UpdateAvatar(ctx context.Context, userID, avatarURL string) error {
	return r.patch(ctx, userID, func(data *playerData) {
		data.AvatarURL = avatarURL
	})
}

// read loads and decodes the stored row for a user
func (r *redisRepo) read(ctx context.Context, userID string) (*playerData, error) {
	jsonData, err := r.client.Get(ctx, r.key(userID)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("no character for user '%s'", userID).
			WithMeta("user_id", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data playerData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}

	return &data, nil
}

// patch applies a narrow read-modify-write to the single row
func (r *redisRepo) patch(ctx context.Context, userID string, apply func(*playerData)) error {
	if userID == "" {
		return dnderr.InvalidArgument("user ID is required")
	}

	data, err := r.read(ctx, userID)
	if err != nil {
		return err
	}

	apply(data)
	data.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(userID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

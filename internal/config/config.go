package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Roller  RollerConfig
	Emojis  Emojis
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RollerConfig holds dice roll service configuration
type RollerConfig struct {
	BaseURL string
}

// Emojis maps the sheet's logical field names to display glyphs
type Emojis struct {
	Level string `json:"LEVEL"`
	HP    string `json:"HP"`
	Race  string `json:"RACE"`
	Class string `json:"CLASS"`
}

// DefaultEmojis returns the glyphs used when no emoji file is configured
func DefaultEmojis() Emojis {
	return Emojis{
		Level: "🏅",
		HP:    "❤️",
		Race:  "🧬",
		Class: "⚔️",
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Roller: RollerConfig{
			BaseURL: getEnvOrDefault("DICE_API_URL", "https://rolldicewithfriends.com/api/new-roll"),
		},
	}

	emojis, err := LoadEmojis(getEnvOrDefault("EMOJI_CONFIG_PATH", "emojis.json"))
	if err != nil {
		return nil, err
	}
	cfg.Emojis = emojis

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

// LoadEmojis reads the emoji glyph file. A missing file falls back to
// the defaults; a present but malformed file is an error.
func LoadEmojis(path string) (Emojis, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultEmojis(), nil
	}
	if err != nil {
		return Emojis{}, fmt.Errorf("failed to read emoji config: %w", err)
	}

	emojis := DefaultEmojis()
	if err := json.Unmarshal(data, &emojis); err != nil {
		return Emojis{}, fmt.Errorf("failed to parse emoji config %s: %w", path, err)
	}
	return emojis, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/zacharysnewman/web-mp-test/internal/game"
)

// Config is the full server configuration: process settings plus gameplay
// tuning. Everything comes from the environment with sensible defaults; a
// .env file in the working directory is picked up when present.
type Config struct {
	Port       int
	LogLevel   string
	LogFormat  string
	WireFormat string // "json" or "msgpack"
	StaticDir  string
	Tuning     game.Tuning
}

// Load reads configuration from the environment.
func Load() *Config {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	t := game.DefaultTuning()
	t.TickRate = getEnvInt("TICK_RATE", t.TickRate)
	t.RoundDuration = getEnvSeconds("ROUND_SECONDS", t.RoundDuration)
	t.GraceDelay = getEnvSeconds("GRACE_SECONDS", t.GraceDelay)
	t.SpawnInterval = getEnvSeconds("SPAWN_INTERVAL_SECONDS", t.SpawnInterval)
	t.ItemCap = getEnvInt("ITEM_CAP", t.ItemCap)
	t.CollisionRadius = getEnvFloat("COLLISION_RADIUS", t.CollisionRadius)
	t.ArenaHalfExtent = getEnvFloat("ARENA_HALF_EXTENT", t.ArenaHalfExtent)
	t.SpawnAreaExtent = getEnvFloat("SPAWN_AREA_EXTENT", t.SpawnAreaExtent)
	t.LeaderboardSize = getEnvInt("LEADERBOARD_SIZE", t.LeaderboardSize)

	return &Config{
		Port:       getEnvInt("PORT", 8080),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		WireFormat: getEnv("WIRE_FORMAT", "json"),
		StaticDir:  getEnv("STATIC_DIR", "public"),
		Tuning:     t,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}

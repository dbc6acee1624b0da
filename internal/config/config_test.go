package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zacharysnewman/web-mp-test/internal/game"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "json", cfg.WireFormat)
	assert.Equal(t, game.DefaultTuning(), cfg.Tuning)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WIRE_FORMAT", "msgpack")
	t.Setenv("TICK_RATE", "60")
	t.Setenv("ROUND_SECONDS", "120")
	t.Setenv("GRACE_SECONDS", "5")
	t.Setenv("ITEM_CAP", "10")
	t.Setenv("COLLISION_RADIUS", "2.5")

	cfg := Load()

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "msgpack", cfg.WireFormat)
	assert.Equal(t, 60, cfg.Tuning.TickRate)
	assert.Equal(t, 120*time.Second, cfg.Tuning.RoundDuration)
	assert.Equal(t, 5*time.Second, cfg.Tuning.GraceDelay)
	assert.Equal(t, 10, cfg.Tuning.ItemCap)
	assert.Equal(t, 2.5, cfg.Tuning.CollisionRadius)
	// Untouched values keep their defaults.
	assert.Equal(t, game.DefaultSpawnInterval, cfg.Tuning.SpawnInterval)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("TICK_RATE", "")
	t.Setenv("ROUND_SECONDS", "-5")
	t.Setenv("COLLISION_RADIUS", "wide")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, game.DefaultTickRate, cfg.Tuning.TickRate)
	assert.Equal(t, game.DefaultRoundDuration, cfg.Tuning.RoundDuration)
	assert.Equal(t, game.DefaultCollisionRadius, cfg.Tuning.CollisionRadius)
}

func TestTuning_TickInterval(t *testing.T) {
	tuning := game.DefaultTuning()
	assert.Equal(t, time.Second/30, tuning.TickInterval())
	assert.Equal(t, 60, tuning.RoundSeconds())
}

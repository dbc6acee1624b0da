package game

import "time"

// Default tuning values. Clients bake matching values for interpolation, so
// overrides must be coordinated with the deployed client bundle.
const (
	DefaultTickRate        = 30 // simulation ticks per second
	DefaultRoundDuration   = 60 * time.Second
	DefaultGraceDelay      = 10 * time.Second
	DefaultSpawnInterval   = 2 * time.Second
	DefaultItemCap         = 20
	DefaultCollisionRadius = 1.5
	DefaultArenaHalfExtent = 25.0 // half-width and half-depth of the square arena
	DefaultItemHeight      = 0.5
	DefaultSpawnAreaExtent = 5.0 // half-extent of the central player spawn square
	DefaultLeaderboardSize = 5
)

// Tuning holds every gameplay parameter. All fields can be overridden through
// the environment (see internal/config).
type Tuning struct {
	TickRate        int
	RoundDuration   time.Duration
	GraceDelay      time.Duration
	SpawnInterval   time.Duration
	ItemCap         int
	CollisionRadius float64
	ArenaHalfExtent float64
	ItemHeight      float64
	SpawnAreaExtent float64
	LeaderboardSize int
}

// DefaultTuning returns the standard parameter set.
func DefaultTuning() Tuning {
	return Tuning{
		TickRate:        DefaultTickRate,
		RoundDuration:   DefaultRoundDuration,
		GraceDelay:      DefaultGraceDelay,
		SpawnInterval:   DefaultSpawnInterval,
		ItemCap:         DefaultItemCap,
		CollisionRadius: DefaultCollisionRadius,
		ArenaHalfExtent: DefaultArenaHalfExtent,
		ItemHeight:      DefaultItemHeight,
		SpawnAreaExtent: DefaultSpawnAreaExtent,
		LeaderboardSize: DefaultLeaderboardSize,
	}
}

// TickInterval returns the period of one simulation tick.
func (t Tuning) TickInterval() time.Duration {
	return time.Second / time.Duration(t.TickRate)
}

// RoundSeconds returns the round duration as whole seconds, the unit the
// countdown runs in.
func (t Tuning) RoundSeconds() int {
	return int(t.RoundDuration / time.Second)
}

package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Item is a collectible placed on the arena floor. Items live only for the
// duration of a round.
type Item struct {
	ID        string    `json:"id" msgpack:"id"`
	X         float64   `json:"x" msgpack:"x"`
	Y         float64   `json:"y" msgpack:"y"`
	Z         float64   `json:"z" msgpack:"z"`
	CreatedAt time.Time `json:"-" msgpack:"-"`
}

// Spawner creates items at uniformly random positions within the arena
// bounds, at a fixed height, subject to a population cap.
type Spawner struct {
	halfExtent float64
	height     float64
	cap        int
}

// NewSpawner creates a spawner for the given tuning.
func NewSpawner(t Tuning) *Spawner {
	return &Spawner{
		halfExtent: t.ArenaHalfExtent,
		height:     t.ItemHeight,
		cap:        t.ItemCap,
	}
}

// TrySpawn creates a new item if the live population is below the cap.
// Returns false when the cap is reached; that is not an error.
func (s *Spawner) TrySpawn(live int) (Item, bool) {
	if live >= s.cap {
		return Item{}, false
	}
	return Item{
		ID:        uuid.New().String(),
		X:         -s.halfExtent + rand.Float64()*2*s.halfExtent,
		Y:         s.height,
		Z:         -s.halfExtent + rand.Float64()*2*s.halfExtent,
		CreatedAt: time.Now(),
	}, true
}

package game

import (
	"fmt"
	"math/rand"
)

// Player is one connected participant. The ID is the opaque connection
// identity assigned by the transport; it is not persisted anywhere.
type Player struct {
	ID    string  `json:"id" msgpack:"id"`
	Name  string  `json:"name" msgpack:"name"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	Z     float64 `json:"z" msgpack:"z"`
	Score int     `json:"score" msgpack:"score"`
}

// NewPlayer creates a player at a random position inside the central spawn
// square. An empty requested name gets a generated fallback.
func NewPlayer(id, name string, spawnExtent float64) *Player {
	if name == "" {
		name = fmt.Sprintf("player-%04d", rand.Intn(10000))
	}
	return &Player{
		ID:   id,
		Name: name,
		X:    -spawnExtent + rand.Float64()*2*spawnExtent,
		Y:    0,
		Z:    -spawnExtent + rand.Float64()*2*spawnExtent,
	}
}

// SetPosition updates the player's position. Submitted positions are taken
// as-is; there is no server-side movement validation.
func (p *Player) SetPosition(x, y, z float64) {
	p.X = x
	p.Y = y
	p.Z = z
}

package game

import "math"

// HorizontalDistance calculates the Euclidean distance between two points in
// the horizontal (x, z) plane. Height is ignored for collection checks.
func HorizontalDistance(x1, z1, x2, z2 float64) float64 {
	dx := x1 - x2
	dz := z1 - z2
	return math.Sqrt(dx*dx + dz*dz)
}

// InCollectRange checks if a player is close enough to collect an item.
func InCollectRange(p *Player, it Item, radius float64) bool {
	return HorizontalDistance(p.X, p.Z, it.X, it.Z) < radius
}

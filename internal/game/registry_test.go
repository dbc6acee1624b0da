package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(DefaultSpawnAreaExtent)
}

func TestJoin_CreatesPlayer(t *testing.T) {
	r := newTestRegistry()
	p := r.Join("c1", "Ann")

	require.NotNil(t, p)
	assert.Equal(t, "c1", p.ID)
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, 1, r.Len())
}

func TestJoin_SpawnsInCentralArea(t *testing.T) {
	r := newTestRegistry()

	for i := 0; i < 20; i++ {
		p := r.Join("c1", "Ann")
		assert.GreaterOrEqual(t, p.X, -DefaultSpawnAreaExtent)
		assert.LessOrEqual(t, p.X, DefaultSpawnAreaExtent)
		assert.GreaterOrEqual(t, p.Z, -DefaultSpawnAreaExtent)
		assert.LessOrEqual(t, p.Z, DefaultSpawnAreaExtent)
		assert.Equal(t, 0.0, p.Y)
	}
}

func TestJoin_FallbackName(t *testing.T) {
	r := newTestRegistry()
	p := r.Join("c1", "")

	assert.NotEmpty(t, p.Name)
	assert.Contains(t, p.Name, "player-")
}

func TestJoin_SameIdentityOverwrites(t *testing.T) {
	r := newTestRegistry()
	r.Join("c1", "Ann")
	r.Join("c2", "Bob")
	p := r.Join("c1", "Ann2")

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "Ann2", r.Get("c1").Name)
	assert.Equal(t, 0, p.Score)

	// Rejoin keeps the original slot in join order.
	players := r.Players()
	require.Len(t, players, 2)
	assert.Equal(t, "c1", players[0].ID)
	assert.Equal(t, "c2", players[1].ID)
}

func TestApplyMove_UpdatesPosition(t *testing.T) {
	r := newTestRegistry()
	r.Join("c1", "Ann")

	r.ApplyMove("c1", 1.5, 0, -2.5)

	p := r.Get("c1")
	assert.Equal(t, 1.5, p.X)
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, -2.5, p.Z)
}

func TestApplyMove_UnknownIdentityIsNoop(t *testing.T) {
	r := newTestRegistry()
	r.Join("c1", "Ann")

	// Must not panic or create a record.
	r.ApplyMove("ghost", 1, 2, 3)
	assert.Equal(t, 1, r.Len())
	assert.Nil(t, r.Get("ghost"))
}

func TestRemove_ReportsEmpty(t *testing.T) {
	r := newTestRegistry()
	r.Join("c1", "Ann")
	r.Join("c2", "Bob")

	assert.False(t, r.Remove("c1"))
	assert.True(t, r.Remove("c2"))
	assert.Equal(t, 0, r.Len())
}

func TestRemove_UnknownIdentity(t *testing.T) {
	r := newTestRegistry()
	assert.True(t, r.Remove("ghost"))

	r.Join("c1", "Ann")
	assert.False(t, r.Remove("ghost"))
	assert.Equal(t, 1, r.Len())
}

func TestResetScores(t *testing.T) {
	r := newTestRegistry()
	r.Join("c1", "Ann").Score = 5
	r.Join("c2", "Bob").Score = 3

	r.ResetScores()

	for _, p := range r.Players() {
		assert.Equal(t, 0, p.Score)
	}
}

func TestPlayers_JoinOrder(t *testing.T) {
	r := newTestRegistry()
	r.Join("c3", "C")
	r.Join("c1", "A")
	r.Join("c2", "B")

	ids := func() []string {
		var out []string
		for _, p := range r.Players() {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"c3", "c1", "c2"}, ids())

	// Order holds after a removal in the middle.
	r.Remove("c1")
	assert.Equal(t, []string{"c3", "c2"}, ids())
}

func TestSnapshot_IsValueCopy(t *testing.T) {
	r := newTestRegistry()
	r.Join("c1", "Ann")

	snap := r.Snapshot()
	r.Get("c1").Score = 10
	r.ApplyMove("c1", 99, 0, 99)

	assert.Equal(t, 0, snap["c1"].Score)
	assert.NotEqual(t, 99.0, snap["c1"].X)
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrySpawn_WithinArenaBounds(t *testing.T) {
	s := NewSpawner(DefaultTuning())

	for i := 0; i < 50; i++ {
		it, ok := s.TrySpawn(0)
		require.True(t, ok)

		assert.GreaterOrEqual(t, it.X, -DefaultArenaHalfExtent)
		assert.LessOrEqual(t, it.X, DefaultArenaHalfExtent)
		assert.GreaterOrEqual(t, it.Z, -DefaultArenaHalfExtent)
		assert.LessOrEqual(t, it.Z, DefaultArenaHalfExtent)
		assert.Equal(t, DefaultItemHeight, it.Y)
	}
}

func TestTrySpawn_DeclinesAtCap(t *testing.T) {
	s := NewSpawner(DefaultTuning())

	_, ok := s.TrySpawn(DefaultItemCap)
	assert.False(t, ok)

	_, ok = s.TrySpawn(DefaultItemCap + 1)
	assert.False(t, ok)

	_, ok = s.TrySpawn(DefaultItemCap - 1)
	assert.True(t, ok)
}

func TestTrySpawn_UniqueTokens(t *testing.T) {
	s := NewSpawner(DefaultTuning())

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		it, ok := s.TrySpawn(0)
		require.True(t, ok)
		require.NotEmpty(t, it.ID)
		assert.False(t, seen[it.ID], "item token %s repeated", it.ID)
		seen[it.ID] = true
	}
}

func TestTrySpawn_HonorsTuning(t *testing.T) {
	tuning := DefaultTuning()
	tuning.ArenaHalfExtent = 2
	tuning.ItemHeight = 1.25
	tuning.ItemCap = 1
	s := NewSpawner(tuning)

	it, ok := s.TrySpawn(0)
	require.True(t, ok)
	assert.LessOrEqual(t, it.X, 2.0)
	assert.GreaterOrEqual(t, it.X, -2.0)
	assert.Equal(t, 1.25, it.Y)

	_, ok = s.TrySpawn(1)
	assert.False(t, ok)
}

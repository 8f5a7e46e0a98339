package sleeper

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlayerCache_ColdGet verifies a fresh cache reports a miss
func TestPlayerCache_ColdGet(t *testing.T) {
	cache, err := NewPlayerCache(filepath.Join(t.TempDir(), "players.db"))
	require.NoError(t, err)
	defer cache.Close()

	players, ok, err := cache.Get()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, players)
}

// TestPlayerCache_RoundTrip verifies a snapshot survives close and reopen
func TestPlayerCache_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.db")

	cache, err := NewPlayerCache(path)
	require.NoError(t, err)
	require.NoError(t, cache.Put(testPlayers()))
	require.NoError(t, cache.Close())

	reopened, err := NewPlayerCache(path)
	require.NoError(t, err)
	defer reopened.Close()

	players, ok, err := reopened.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testPlayers(), players)
}

// TestPlayerCache_PutReplaces verifies a second snapshot overwrites the
// first
func TestPlayerCache_PutReplaces(t *testing.T) {
	cache, err := NewPlayerCache(filepath.Join(t.TempDir(), "players.db"))
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Put(testPlayers()))
	replacement := map[string]Player{
		"1111": {FirstName: "Other", LastName: "Player", Team: "DAL", Position: "WR"},
	}
	require.NoError(t, cache.Put(replacement))

	players, ok, err := cache.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, replacement, players)
}

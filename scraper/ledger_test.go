package scraper

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLedger_LoadMissingFile verifies a missing ledger file yields an
// empty set rather than an error
func TestLedger_LoadMissingFile(t *testing.T) {
	ledger := NewLedger(filepath.Join(t.TempDir(), "scraped_urls.json"))
	ledger.Load()
	assert.Equal(t, 0, ledger.Len())
}

// TestLedger_LoadCorruptFile verifies unparseable ledger content starts a
// fresh set
func TestLedger_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraped_urls.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	ledger := NewLedger(path)
	ledger.Load()
	assert.Equal(t, 0, ledger.Len())
}

// TestLedger_RoundTrip verifies recorded URLs survive a persist and reload
func TestLedger_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraped_urls.json")

	ledger := NewLedger(path)
	ledger.Load()
	ledger.Record("https://www.fantasypros.com/nfl/news/a")
	ledger.Record("https://www.fantasypros.com/nfl/news/b")
	require.NoError(t, ledger.Persist())

	reloaded := NewLedger(path)
	reloaded.Load()
	assert.Equal(t, 2, reloaded.Len())
	assert.True(t, reloaded.Contains("https://www.fantasypros.com/nfl/news/a"))
	assert.True(t, reloaded.Contains("https://www.fantasypros.com/nfl/news/b"))
	assert.False(t, reloaded.Contains("https://www.fantasypros.com/nfl/news/c"))
}

// TestLedger_PersistedShape verifies the on-disk JSON carries the URL list,
// a timestamp and a count
func TestLedger_PersistedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraped_urls.json")

	ledger := NewLedger(path)
	ledger.Record("https://www.fantasypros.com/nfl/news/z")
	ledger.Record("https://www.fantasypros.com/nfl/news/a")
	require.NoError(t, ledger.Persist())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var file struct {
		URLs        []string `json:"urls"`
		LastUpdated string   `json:"last_updated"`
		TotalURLs   int      `json:"total_urls"`
	}
	require.NoError(t, json.Unmarshal(data, &file))

	assert.Equal(t, []string{
		"https://www.fantasypros.com/nfl/news/a",
		"https://www.fantasypros.com/nfl/news/z",
	}, file.URLs)
	assert.Equal(t, 2, file.TotalURLs)
	assert.NotEmpty(t, file.LastUpdated)
}

// TestLedger_Clear verifies Clear empties the set and removes the file
func TestLedger_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraped_urls.json")

	ledger := NewLedger(path)
	ledger.Record("https://www.fantasypros.com/nfl/news/a")
	require.NoError(t, ledger.Persist())

	require.NoError(t, ledger.Clear())
	assert.Equal(t, 0, ledger.Len())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-clear ledger is fine
	require.NoError(t, ledger.Clear())
}

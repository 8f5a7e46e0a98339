package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_MissingFile verifies pure defaults when no config file exists
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSite(), cfg.Site)
	assert.Equal(t, DefaultFantasyKeywords(), cfg.FantasyKeywords)
	assert.Empty(t, cfg.FeedURLs)
}

// TestLoad_Overlay verifies that only fields set in the file override the
// defaults
func TestLoad_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
site:
  domain: example.com
  listing_urls:
    - https://example.com/nfl/news/
fantasy_keywords:
  - injured
feed_urls:
  - https://example.com/feed.xml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "example.com", cfg.Site.Domain)
	assert.Equal(t, []string{"https://example.com/nfl/news/"}, cfg.Site.ListingURLs)
	assert.Equal(t, []string{"injured"}, cfg.FantasyKeywords)
	assert.Equal(t, []string{"https://example.com/feed.xml"}, cfg.FeedURLs)

	// Untouched fields keep their defaults
	assert.Equal(t, DefaultSite().SkipPatterns, cfg.Site.SkipPatterns)
	assert.Equal(t, DefaultSite().SectionMap, cfg.Site.SectionMap)
}

// TestLoad_ParseError verifies that an unparseable file is an error rather
// than silent defaults
func TestLoad_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: [not: a: mapping"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

// TestLoadFile_Missing verifies the nil-without-error contract
func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

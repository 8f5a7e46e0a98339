package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shwinn/fantasy-football-alerts/config"
)

// TestIsArticleURL_Valid verifies that genuine article URLs pass
func TestIsArticleURL_Valid(t *testing.T) {
	v := NewValidator(config.DefaultSite())

	validURLs := []string{
		"https://www.fantasypros.com/nfl/news/player-injury-update",
		"https://www.fantasypros.com/nfl/articles/week-10-waiver-targets",
		"https://www.fantasypros.com/nfl/advice/start-em-sit-em",
		"https://www.fantasypros.com/2025/10/breakout-candidates/",
		"https://www.fantasypros.com/nfl/rankings/ros-wr.php",
	}
	for _, url := range validURLs {
		assert.True(t, v.IsArticleURL(url), "expected valid: %s", url)
	}
}

// TestIsArticleURL_OutsideDomain verifies that URLs outside the target
// domain are rejected regardless of path content
func TestIsArticleURL_OutsideDomain(t *testing.T) {
	v := NewValidator(config.DefaultSite())

	assert.False(t, v.IsArticleURL("https://www.espn.com/nfl/news/some-article"))
	assert.False(t, v.IsArticleURL("https://example.com/nfl/articles/waiver-wire-pickups"))
}

// TestIsArticleURL_NoIndicator verifies that URLs lacking any topical
// indicator substring are rejected
func TestIsArticleURL_NoIndicator(t *testing.T) {
	v := NewValidator(config.DefaultSite())

	assert.False(t, v.IsArticleURL("https://www.fantasypros.com/nfl/some/random-page"))
	assert.False(t, v.IsArticleURL("https://www.fantasypros.com/about/company"))
}

// TestIsArticleURL_SectionRoot verifies that bare section listing pages are
// rejected even though their path contains an indicator
func TestIsArticleURL_SectionRoot(t *testing.T) {
	v := NewValidator(config.DefaultSite())

	assert.False(t, v.IsArticleURL("https://www.fantasypros.com/nfl/news/"))
	assert.False(t, v.IsArticleURL("https://www.fantasypros.com/nfl/articles/"))
	assert.False(t, v.IsArticleURL("https://www.fantasypros.com/nfl/rankings/"))
}

// TestIsArticleURL_SkipPatterns verifies the asset/auth/pagination denylist
func TestIsArticleURL_SkipPatterns(t *testing.T) {
	v := NewValidator(config.DefaultSite())

	skipped := []string{
		"https://www.fantasypros.com/api/news/latest",
		"https://www.fantasypros.com/static/news/bundle.css",
		"https://www.fantasypros.com/nfl/news/js/tracker.js",
		"https://www.fantasypros.com/nfl/news/article?utm_source=feed",
		"https://www.fantasypros.com/nfl/news/article?page=2",
		"https://www.fantasypros.com/nfl/news/article#comments",
		"https://www.fantasypros.com/login",
		"mailto:tips@fantasypros.com",
		"javascript:void(0)",
	}
	for _, url := range skipped {
		assert.False(t, v.IsArticleURL(url), "expected rejected: %s", url)
	}
}

// TestIsArticleURL_ShallowPath verifies that paths with fewer than two
// segments are treated as listing pages
func TestIsArticleURL_ShallowPath(t *testing.T) {
	v := NewValidator(config.DefaultSite())

	assert.False(t, v.IsArticleURL("https://www.fantasypros.com/draft"))
	assert.False(t, v.IsArticleURL("https://www.fantasypros.com/"))
}

// TestIsArticleURL_MalformedInput verifies that junk input yields false
// without panicking
func TestIsArticleURL_MalformedInput(t *testing.T) {
	v := NewValidator(config.DefaultSite())

	assert.False(t, v.IsArticleURL(""))
	assert.False(t, v.IsArticleURL("not a url at all"))
	assert.False(t, v.IsArticleURL("https://www.fantasypros.com/nfl/news/%zz%"))
}

package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shwinn/fantasy-football-alerts/config"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func newLinkExtractor() *LinkExtractor {
	site := config.DefaultSite()
	return NewLinkExtractor(site, NewValidator(site))
}

// TestExtract_ValidAndInvalidLinks verifies that a listing page with three
// valid article links, an asset link and a section-root link yields exactly
// the three valid URLs in page order
func TestExtract_ValidAndInvalidLinks(t *testing.T) {
	html := `<html><body>
		<a href="/nfl/news/player-a-injury-update">Player A hurt</a>
		<a href="/nfl/news/js/tracker.js">asset</a>
		<a href="/nfl/news/player-b-promoted">Player B up</a>
		<a href="/nfl/news/">All news</a>
		<a href="/nfl/news/player-c-traded">Player C dealt</a>
	</body></html>`

	links := newLinkExtractor().Extract(docFromHTML(t, html), "https://www.fantasypros.com/nfl/news/")

	assert.Equal(t, []string{
		"https://www.fantasypros.com/nfl/news/player-a-injury-update",
		"https://www.fantasypros.com/nfl/news/player-b-promoted",
		"https://www.fantasypros.com/nfl/news/player-c-traded",
	}, links)
}

// TestExtract_DeduplicatesPreservingOrder verifies first-occurrence-wins
// deduplication
func TestExtract_DeduplicatesPreservingOrder(t *testing.T) {
	html := `<html><body>
		<a href="/nfl/news/first-story">one</a>
		<a href="/nfl/news/second-story">two</a>
		<a href="/nfl/news/first-story">one again</a>
	</body></html>`

	links := newLinkExtractor().Extract(docFromHTML(t, html), "https://www.fantasypros.com/nfl/")

	assert.Equal(t, []string{
		"https://www.fantasypros.com/nfl/news/first-story",
		"https://www.fantasypros.com/nfl/news/second-story",
	}, links)
}

// TestExtract_RelativeURLResolution verifies that relative hrefs resolve
// against the listing page URL
func TestExtract_RelativeURLResolution(t *testing.T) {
	html := `<html><body><a href="week-10-sleepers">sleepers</a></body></html>`

	links := newLinkExtractor().Extract(docFromHTML(t, html), "https://www.fantasypros.com/nfl/sleepers/")

	require.Len(t, links, 1)
	assert.Equal(t, "https://www.fantasypros.com/nfl/sleepers/week-10-sleepers", links[0])
}

// TestExtract_BroadFallback verifies the fallback pass: with zero targeted
// selector matches, all hyperlinks are scanned with the keyword filter, and
// nothing the validator would reject survives
func TestExtract_BroadFallback(t *testing.T) {
	// No href matches a targeted pattern; the fallback keyword filter
	// must still find topical links and drop off-site and noise links
	html := `<html><body>
		<a href="https://www.fantasypros.com/nfl/correspondents/waiver-analysis">waiver</a>
		<a href="https://www.espn.com/nfl/draft-grades">offsite</a>
		<a href="https://www.fantasypros.com/nfl/login-news">login noise</a>
	</body></html>`

	site := config.DefaultSite()
	validator := NewValidator(site)
	links := NewLinkExtractor(site, validator).Extract(docFromHTML(t, html), "https://www.fantasypros.com/nfl/")

	require.Len(t, links, 1)
	assert.Equal(t, "https://www.fantasypros.com/nfl/correspondents/waiver-analysis", links[0])
	for _, link := range links {
		assert.True(t, validator.IsArticleURL(link))
	}
}

// TestExtract_EmptyPage verifies that a page without links yields an empty
// result rather than an error
func TestExtract_EmptyPage(t *testing.T) {
	links := newLinkExtractor().Extract(docFromHTML(t, "<html><body><p>nothing here</p></body></html>"), "https://www.fantasypros.com/nfl/")
	assert.Empty(t, links)
}

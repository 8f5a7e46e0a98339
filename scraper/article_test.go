package scraper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longParagraph returns filler text comfortably above the substantiveness
// threshold.
func longParagraph() string {
	return strings.Repeat("The running back took every snap in practice today. ", 5)
}

// TestExtract_TitleSelectors verifies the ordered title strategy list
func TestExtract_TitleSelectors(t *testing.T) {
	e := NewArticleExtractor()

	doc := docFromHTML(t, `<html><head><title>Page Title</title></head>
		<body><h1 class="article-title">Real Headline</h1></body></html>`)
	assert.Equal(t, "Real Headline", e.Extract(doc).Title)

	// Falls through to the document title when no heading matches
	doc = docFromHTML(t, `<html><head><title>Page Title</title></head><body></body></html>`)
	assert.Equal(t, "Page Title", e.Extract(doc).Title)

	doc = docFromHTML(t, `<html><body></body></html>`)
	assert.Equal(t, NoTitleSentinel, e.Extract(doc).Title)
}

// TestExtract_AuthorFromMeta verifies that meta-tag matches read the
// content attribute, not element text
func TestExtract_AuthorFromMeta(t *testing.T) {
	e := NewArticleExtractor()

	doc := docFromHTML(t, `<html><head><meta name="author" content="Pat Fitzmaurice"></head><body></body></html>`)
	assert.Equal(t, "Pat Fitzmaurice", e.Extract(doc).Author)

	doc = docFromHTML(t, `<html><body><span class="author-name">Andrew Erickson</span></body></html>`)
	assert.Equal(t, "Andrew Erickson", e.Extract(doc).Author)

	doc = docFromHTML(t, `<html><body></body></html>`)
	assert.Equal(t, NoAuthorSentinel, e.Extract(doc).Author)
}

// TestExtract_DateFromTimeElement verifies the datetime attribute is
// preferred, with element text as fallback
func TestExtract_DateFromTimeElement(t *testing.T) {
	e := NewArticleExtractor()

	doc := docFromHTML(t, `<html><body><time datetime="2025-10-28T09:00:00Z">Oct 28</time></body></html>`)
	assert.Equal(t, "2025-10-28T09:00:00Z", e.Extract(doc).Date)

	// No date anywhere: defaults to today's date
	doc = docFromHTML(t, `<html><body></body></html>`)
	assert.Equal(t, time.Now().Format("2006-01-02"), e.Extract(doc).Date)
}

// TestExtract_ContentSingleContainer verifies extraction from the first
// substantial content container, with noise subtrees stripped
func TestExtract_ContentSingleContainer(t *testing.T) {
	e := NewArticleExtractor()

	doc := docFromHTML(t, `<html><body>
		<div class="article-content">
			<script>trackPageView();</script>
			<nav>Home | News</nav>
			<p>`+longParagraph()+`</p>
		</div>
	</body></html>`)

	content := e.Extract(doc).Content
	assert.Greater(t, len(content), MinContentLen)
	assert.NotContains(t, content, "trackPageView")
	assert.NotContains(t, content, "Home | News")
	assert.Contains(t, content, "took every snap")
}

// TestExtract_ContentFragments verifies that pages spreading their text
// across multiple .content elements produce the fragments joined by blank
// lines, in document order
func TestExtract_ContentFragments(t *testing.T) {
	e := NewArticleExtractor()

	frag1 := "Quarterback news: the veteran passer cleared concussion protocol on Thursday."
	frag2 := "Receiver update: the rookie wideout drew nine targets in his first full game."
	frag3 := "Injury report: the starting tight end remains limited with a hamstring issue."
	require.Greater(t, len(frag1), minFragmentLen)
	require.Less(t, len(frag1), MinContentLen)

	doc := docFromHTML(t, `<html><body>
		<div class="content">`+frag1+`</div>
		<div class="content">tiny</div>
		<div class="content">`+frag2+`</div>
		<div class="content">`+frag3+`</div>
	</body></html>`)

	content := e.Extract(doc).Content
	assert.Equal(t, frag1+"\n\n"+frag2+"\n\n"+frag3, content)
}

// TestExtract_NoContent verifies the sentinel for pages with nothing
// substantial; the sentinel itself is below the substantiveness threshold
func TestExtract_NoContent(t *testing.T) {
	e := NewArticleExtractor()

	doc := docFromHTML(t, `<html><body><p>short</p></body></html>`)
	content := e.Extract(doc).Content

	assert.Equal(t, NoContentSentinel, content)
	assert.Less(t, len(content), MinContentLen)
}

// TestExtract_Tags verifies tag collection and deduplication
func TestExtract_Tags(t *testing.T) {
	e := NewArticleExtractor()

	doc := docFromHTML(t, `<html><body>
		<div class="tags"><a>waiver-wire</a><a>injuries</a></div>
		<div class="article-tags"><a>waiver-wire</a><a>rankings</a></div>
	</body></html>`)

	assert.Equal(t, []string{"waiver-wire", "injuries", "rankings"}, e.Extract(doc).Tags)
}

// TestExtract_TagsEmpty verifies a page without tags yields an empty list
func TestExtract_TagsEmpty(t *testing.T) {
	e := NewArticleExtractor()
	doc := docFromHTML(t, `<html><body><p>no tags here</p></body></html>`)
	assert.Empty(t, e.Extract(doc).Tags)
}

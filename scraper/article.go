package scraper

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Sentinel values used when extraction finds nothing. NoContentSentinel is
// shorter than MinContentLen, so a record carrying it always fails the
// substantiveness check and is never persisted.
const (
	NoTitleSentinel   = "No title found"
	NoAuthorSentinel  = "Unknown author"
	NoContentSentinel = "No content found"
)

// MinContentLen is the substantiveness threshold: extracted content shorter
// than this is treated as an extraction failure.
const MinContentLen = 100

// minFragmentLen is the per-fragment threshold used when combining multiple
// content-classed elements.
const minFragmentLen = 50

// Extraction holds the fields pulled from a single article page.
type Extraction struct {
	Title   string
	Author  string
	Date    string
	Content string
	Tags    []string
}

// fieldRule is one candidate extraction strategy: a CSS selector plus how to
// read a value from the first matching element. Rules are tried in order and
// the first one that yields a non-empty value wins.
type fieldRule struct {
	selector string
	attr     string // read this attribute instead of element text
	textFall bool   // fall back to element text when the attribute is empty
}

// ArticleExtractor extracts structured fields from heterogeneous article
// HTML using ordered candidate rule lists.
type ArticleExtractor struct {
	titleRules   []fieldRule
	authorRules  []fieldRule
	dateRules    []fieldRule
	contentSel   []string
	tagSelectors []string
}

// NewArticleExtractor creates an extractor with the built-in rule lists.
func NewArticleExtractor() *ArticleExtractor {
	return &ArticleExtractor{
		titleRules: []fieldRule{
			{selector: "h1.article-title"},
			{selector: "h1.entry-title"},
			{selector: "h1.post-title"},
			{selector: `h1[class*="title"]`},
			{selector: "title"},
		},
		authorRules: []fieldRule{
			{selector: ".author-name"},
			{selector: ".byline"},
			{selector: ".article-author"},
			{selector: `[class*="author"]`},
			{selector: `meta[name="author"]`, attr: "content"},
		},
		dateRules: []fieldRule{
			{selector: ".article-date"},
			{selector: ".published-date"},
			{selector: ".post-date"},
			{selector: `[class*="date"]`},
			{selector: "time[datetime]", attr: "datetime", textFall: true},
			{selector: `meta[property="article:published_time"]`, attr: "content"},
		},
		contentSel: []string{
			".article-content",
			".entry-content",
			".post-content",
			".main-content",
			".content",
			"article",
			".article-body",
			`[class*="content"]`,
		},
		tagSelectors: []string{
			".tags a",
			".tag-list a",
			".article-tags a",
			`[class*="tag"] a`,
		},
	}
}

// Extract pulls title, author, date, content and tags from the page. Every
// field is extracted independently; a rule that matches nothing is skipped,
// never aborting the remaining fields.
func (e *ArticleExtractor) Extract(doc *goquery.Document) Extraction {
	return Extraction{
		Title:   firstMatch(doc, e.titleRules, NoTitleSentinel),
		Author:  firstMatch(doc, e.authorRules, NoAuthorSentinel),
		Date:    firstMatch(doc, e.dateRules, time.Now().Format("2006-01-02")),
		Content: e.extractContent(doc),
		Tags:    e.extractTags(doc),
	}
}

// firstMatch evaluates rules in order and returns the first non-empty value,
// or fallback when no rule matches.
func firstMatch(doc *goquery.Document, rules []fieldRule, fallback string) string {
	for _, rule := range rules {
		sel := doc.Find(rule.selector).First()
		if sel.Length() == 0 {
			continue
		}

		var value string
		if rule.attr != "" {
			value, _ = sel.Attr(rule.attr)
			if value == "" && rule.textFall {
				value = sel.Text()
			}
		} else {
			value = sel.Text()
		}

		value = strings.TrimSpace(value)
		if value != "" {
			return value
		}
	}
	return fallback
}

// extractContent extracts the article body text. It tries the candidate
// container selectors first, then combines individually substantial
// .content fragments, then hands the whole page to readability as a last
// resort. The NoContentSentinel is returned only when all three fail.
func (e *ArticleExtractor) extractContent(doc *goquery.Document) string {
	// Single main container, first selector with substantial text wins
	for _, selector := range e.contentSel {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		stripNoise(sel)
		content := blockText(sel)
		if len(content) > MinContentLen {
			return content
		}
	}

	// Some pages spread news items across multiple .content divs; combine
	// the fragments that are individually substantial
	var fragments []string
	doc.Find(".content").Each(func(_ int, sel *goquery.Selection) {
		stripNoise(sel)
		text := blockText(sel)
		if len(text) > minFragmentLen {
			fragments = append(fragments, text)
		}
	})
	if len(fragments) > 0 {
		return strings.Join(fragments, "\n\n")
	}

	// Last resort: run the whole page through readability
	if content := readabilityText(doc); len(content) > MinContentLen {
		return content
	}

	return NoContentSentinel
}

// extractTags collects tag text from the candidate tag containers,
// deduplicated in document order.
func (e *ArticleExtractor) extractTags(doc *goquery.Document) []string {
	var tags []string
	seen := make(map[string]bool)

	for _, selector := range e.tagSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			tag := strings.TrimSpace(sel.Text())
			if tag != "" && !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		})
	}

	return tags
}

// stripNoise removes script, style and page-chrome subtrees in place.
func stripNoise(sel *goquery.Selection) {
	sel.Find("script, style, nav, header, footer").Remove()
}

// blockText extracts visible text with one line per text node, preserving
// the document's structural breaks.
func blockText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}

// readabilityText renders the document back to HTML and lets readability
// pick out the main text. Best effort: any failure yields "".
func readabilityText(doc *goquery.Document) string {
	rawHTML, err := doc.Html()
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(article.TextContent)
}

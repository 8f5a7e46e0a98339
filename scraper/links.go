package scraper

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Shwinn/fantasy-football-alerts/config"
)

// LinkExtractor discovers candidate article URLs on a listing page. It first
// applies targeted selectors for known link patterns; if those find nothing
// it falls back to scanning every hyperlink on the page with a broader
// keyword filter. Both passes deduplicate while preserving first-seen order.
type LinkExtractor struct {
	domain          string
	selectors       []string
	topicalKeywords []string
	skipKeywords    []string
	validator       *Validator
}

// NewLinkExtractor creates a link extractor for the given site
// configuration. Candidate links are filtered through the validator.
func NewLinkExtractor(site config.Site, validator *Validator) *LinkExtractor {
	selectors := make([]string, 0, len(site.LinkPatterns))
	for _, pattern := range site.LinkPatterns {
		selectors = append(selectors, fmt.Sprintf("a[href*=%q]", pattern))
	}

	return &LinkExtractor{
		domain:          site.Domain,
		selectors:       selectors,
		topicalKeywords: site.TopicalKeywords,
		skipKeywords:    site.SkipKeywords,
		validator:       validator,
	}
}

// Extract returns the unique article URLs discovered on the page, in
// first-seen order. pageURL is used to resolve relative links.
func (e *LinkExtractor) Extract(doc *goquery.Document, pageURL string) []string {
	links := e.extractTargeted(doc, pageURL)

	if len(links) == 0 {
		log.Printf("INFO: No article links found with targeted selectors on %s, trying broad scan", pageURL)
		links = e.extractBroad(doc, pageURL)
	}

	return links
}

// extractTargeted applies the ordered targeted selector list and keeps only
// links that pass the validator.
func (e *LinkExtractor) extractTargeted(doc *goquery.Document, pageURL string) []string {
	var links []string
	seen := make(map[string]bool)

	for _, selector := range e.selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok || href == "" {
				return
			}
			fullURL := resolveURL(pageURL, href)
			if fullURL == "" || !e.validator.IsArticleURL(fullURL) {
				return
			}
			if !seen[fullURL] {
				seen[fullURL] = true
				links = append(links, fullURL)
			}
		})
	}

	return links
}

// extractBroad scans every hyperlink on the page and keeps links containing
// the site domain plus at least one topical keyword and none of the skip
// keywords. Used only when the targeted pass finds nothing.
func (e *LinkExtractor) extractBroad(doc *goquery.Document, pageURL string) []string {
	var links []string
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}
		fullURL := resolveURL(pageURL, href)
		if fullURL == "" {
			return
		}

		lowered := strings.ToLower(fullURL)
		if !strings.Contains(lowered, e.domain) {
			return
		}
		topical := false
		for _, keyword := range e.topicalKeywords {
			if strings.Contains(lowered, keyword) {
				topical = true
				break
			}
		}
		if !topical {
			return
		}
		for _, keyword := range e.skipKeywords {
			if strings.Contains(lowered, keyword) {
				return
			}
		}

		if !seen[fullURL] {
			seen[fullURL] = true
			links = append(links, fullURL)
		}
	})

	log.Printf("INFO: Broad scan found %d links on %s", len(links), pageURL)
	return links
}

// resolveURL resolves href against base, returning "" when either side is
// unparseable.
func resolveURL(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(ref).String()
}

package scraper

import (
	"net/url"
	"strings"

	"github.com/Shwinn/fantasy-football-alerts/config"
)

// Validator decides whether a candidate URL points at a scrapeable article
// as opposed to a listing page, asset, tracking link, or auth page. It is a
// pure predicate with no side effects; malformed input yields false.
type Validator struct {
	domain       string
	skipPatterns []string
	indicators   []string
	sectionRoots []string
}

// NewValidator creates a validator for the given site configuration.
func NewValidator(site config.Site) *Validator {
	return &Validator{
		domain:       site.Domain,
		skipPatterns: site.SkipPatterns,
		indicators:   site.ArticleIndicators,
		sectionRoots: site.SectionRoots,
	}
}

// IsArticleURL reports whether raw looks like an individual article on the
// target site.
func (v *Validator) IsArticleURL(raw string) bool {
	if raw == "" {
		return false
	}

	// Must belong to the target site
	if !strings.Contains(raw, v.domain) {
		return false
	}

	// Reject assets, auth pages, tracking links, pagination and sort/filter
	// query parameters
	lowered := strings.ToLower(raw)
	for _, pattern := range v.skipPatterns {
		if strings.Contains(lowered, pattern) {
			return false
		}
	}

	// Listing pages are shallow; require at least two path segments
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	path := strings.Trim(parsed.Path, "/")
	if len(strings.Split(path, "/")) < 2 {
		return false
	}

	// Must contain at least one article indicator (topical section or a
	// year-prefixed date path)
	hasIndicator := false
	for _, indicator := range v.indicators {
		if strings.Contains(raw, indicator) {
			hasIndicator = true
			break
		}
	}
	if !hasIndicator {
		return false
	}

	// A bare section root (e.g. .../news/) is a listing page, not an
	// article, even though it matches an indicator
	for _, root := range v.sectionRoots {
		if strings.HasSuffix(raw, root) {
			return false
		}
	}

	return true
}

// Package scraper discovers, extracts, deduplicates and persists articles
// from a sports news site. A run is single-threaded and sequential by
// design: the fixed politeness delay between fetches is the sole rate
// control, so no concurrent requests are ever issued.
package scraper

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Shwinn/fantasy-football-alerts/config"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Options holds the scraper's runtime knobs.
type Options struct {
	// Delay between successive article fetch attempts.
	Delay time.Duration
	// ListingTimeout bounds each listing page fetch.
	ListingTimeout time.Duration
	// ArticleTimeout bounds each article fetch; on expiry the article is
	// counted as failed and the run continues.
	ArticleTimeout time.Duration
	UserAgent      string
}

// DefaultOptions returns the production settings.
func DefaultOptions() *Options {
	return &Options{
		Delay:          1 * time.Second,
		ListingTimeout: 10 * time.Second,
		ArticleTimeout: 15 * time.Second,
		UserAgent:      defaultUserAgent,
	}
}

// Scraper drives a full scraping pass: enumerate listing pages, extract and
// validate links, deduplicate against the ledger, fetch and extract each
// article, persist it, and report counts.
type Scraper struct {
	site      config.Site
	opts      *Options
	client    *http.Client
	validator *Validator
	links     *LinkExtractor
	extractor *ArticleExtractor
	ledger    *Ledger
	store     *Store
}

// New creates a scraper. The ledger's lifecycle is owned by the scraper's
// Run: loaded at the start, mutated in memory, persisted once at the end.
func New(site config.Site, ledger *Ledger, store *Store, opts *Options) *Scraper {
	if opts == nil {
		opts = DefaultOptions()
	}

	validator := NewValidator(site)
	return &Scraper{
		site:      site,
		opts:      opts,
		client:    &http.Client{},
		validator: validator,
		links:     NewLinkExtractor(site, validator),
		extractor: NewArticleExtractor(),
		ledger:    ledger,
		store:     store,
	}
}

// Validator exposes the scraper's URL validator.
func (s *Scraper) Validator() *Validator {
	return s.validator
}

// candidate pairs a discovered article URL with the listing page it was
// found on; the listing page drives section classification fallback.
type candidate struct {
	url       string
	sourceURL string
}

// Run performs one scraping pass and returns the successfully scraped
// articles. Partial failures never abort the run; only total inability to
// reach any listing page surfaces, as an empty result.
func (s *Scraper) Run(maxArticles int) []Article {
	log.Printf("INFO: Starting scraping pass (max %d articles)", maxArticles)

	s.ledger.Load()

	// Collect roughly twice as many candidates as requested for variety
	// and filtering headroom
	var all []candidate
	for _, listingURL := range s.site.ListingURLs {
		links := s.pageLinks(listingURL)
		for _, link := range links {
			all = append(all, candidate{url: link, sourceURL: listingURL})
		}
		log.Printf("INFO: Found %d links on %s", len(links), listingURL)

		if len(all) >= maxArticles*2 {
			break
		}
	}

	// Deduplicate by article URL, keeping the first-seen source listing
	var unique []candidate
	seen := make(map[string]bool)
	for _, c := range all {
		if !seen[c.url] {
			seen[c.url] = true
			unique = append(unique, c)
		}
	}

	if len(unique) == 0 {
		log.Println("WARN: No article links found from any listing page")
		return nil
	}
	log.Printf("INFO: Found %d unique articles across all listing pages", len(unique))

	if len(unique) > maxArticles {
		unique = unique[:maxArticles]
	}

	var scraped []Article
	failed := 0
	skipped := 0

	for i, c := range unique {
		log.Printf("INFO: Scraping article %d/%d: %s", i+1, len(unique), c.url)

		if s.ledger.Contains(c.url) {
			skipped++
			log.Printf("INFO: Skipped (already scraped): %s", c.url)
			continue
		}

		article, err := s.scrapeArticle(c.url, c.sourceURL)
		if err != nil {
			failed++
			log.Printf("WARN: Failed to scrape %s: %v", c.url, err)
		} else {
			s.ledger.Record(c.url)
			scraped = append(scraped, *article)
			log.Printf("INFO: Successfully scraped: %.50s", article.Title)
		}

		// Politeness delay between fetch attempts regardless of outcome
		time.Sleep(s.opts.Delay)
	}

	if err := s.ledger.Persist(); err != nil {
		log.Printf("ERROR: Failed to persist scraped URL ledger: %v", err)
	}

	log.Printf("INFO: Scraping complete: %d scraped, %d failed, %d skipped, %d URLs tracked",
		len(scraped), failed, skipped, s.ledger.Len())

	return scraped
}

// pageLinks fetches one listing page and extracts candidate article links.
// Fetch and parse failures are logged and yield an empty list so the run
// continues with the remaining listing pages.
func (s *Scraper) pageLinks(listingURL string) []string {
	doc, err := s.fetch(listingURL, s.opts.ListingTimeout)
	if err != nil {
		log.Printf("WARN: Error fetching links from %s: %v", listingURL, err)
		return nil
	}
	return s.links.Extract(doc, listingURL)
}

// scrapeArticle fetches one article page, extracts its fields and persists
// the record. An extraction without substantial content, or a persistence
// failure, is an error: the URL is not recorded in the ledger so a later
// run can retry it.
func (s *Scraper) scrapeArticle(articleURL, sourceURL string) (*Article, error) {
	doc, err := s.fetch(articleURL, s.opts.ArticleTimeout)
	if err != nil {
		return nil, err
	}

	extraction := s.extractor.Extract(doc)
	if len(extraction.Content) < MinContentLen {
		return nil, fmt.Errorf("no substantial content extracted")
	}

	article := &Article{
		URL:       articleURL,
		Title:     extraction.Title,
		Author:    extraction.Author,
		Date:      extraction.Date,
		Content:   extraction.Content,
		Tags:      extraction.Tags,
		ScrapedAt: time.Now(),
		SourceURL: sourceURL,
	}

	filename := s.store.Save(article, sourceURL)
	if filename == ErrSavingFilename {
		return nil, fmt.Errorf("failed to persist article")
	}
	article.Filename = filename

	return article, nil
}

// fetch retrieves a page and parses it. Non-2xx responses are errors.
func (s *Scraper) fetch(pageURL string, timeout time.Duration) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return doc, nil
}

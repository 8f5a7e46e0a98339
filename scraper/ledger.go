package scraper

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"time"
)

// Ledger is the persisted set of already-scraped URLs. It is loaded once at
// the start of a run, consulted and updated in memory, and flushed to disk
// once at the end. Entries are never removed except by an explicit Clear.
type Ledger struct {
	path string
	urls map[string]struct{}
}

// ledgerFile is the on-disk JSON shape of the ledger.
type ledgerFile struct {
	URLs        []string `json:"urls"`
	LastUpdated string   `json:"last_updated"`
	TotalURLs   int      `json:"total_urls"`
}

// NewLedger creates an empty ledger backed by the given file path. Call
// Load to read any previously persisted set.
func NewLedger(path string) *Ledger {
	return &Ledger{
		path: path,
		urls: make(map[string]struct{}),
	}
}

// Load reads the persisted URL set. A missing or corrupt file is treated as
// an empty set; it is logged but never fatal.
func (l *Ledger) Load() {
	l.urls = make(map[string]struct{})

	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		log.Println("INFO: No previous scraped URLs found, starting fresh")
		return
	}
	if err != nil {
		log.Printf("WARN: Error loading scraped URLs: %v", err)
		return
	}

	var file ledgerFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Printf("WARN: Error parsing scraped URLs file, starting fresh: %v", err)
		return
	}

	for _, url := range file.URLs {
		l.urls[url] = struct{}{}
	}
	log.Printf("INFO: Loaded %d previously scraped URLs", len(l.urls))
}

// Contains reports whether url has already been scraped. In-memory only,
// no I/O.
func (l *Ledger) Contains(url string) bool {
	_, ok := l.urls[url]
	return ok
}

// Record marks url as scraped. In-memory only; call Persist to flush.
func (l *Ledger) Record(url string) {
	l.urls[url] = struct{}{}
}

// Len returns the number of tracked URLs.
func (l *Ledger) Len() int {
	return len(l.urls)
}

// Path returns the ledger's backing file path.
func (l *Ledger) Path() string {
	return l.path
}

// Persist writes the full set plus a timestamp and count to disk,
// overwriting any prior content. Called once per scraping pass.
func (l *Ledger) Persist() error {
	urls := make([]string, 0, len(l.urls))
	for url := range l.urls {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	file := ledgerFile{
		URLs:        urls,
		LastUpdated: time.Now().Format(time.RFC3339),
		TotalURLs:   len(urls),
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scraped URLs: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scraped URLs: %w", err)
	}
	return nil
}

// Clear empties the set and removes the persisted file. Intended only for
// manual resets, never called by the normal scraping flow.
func (l *Ledger) Clear() error {
	l.urls = make(map[string]struct{})
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove scraped URLs file: %w", err)
	}
	log.Println("INFO: Cleared all scraped URL tracking")
	return nil
}

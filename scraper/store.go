package scraper

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Article is one scraped article record. URL is the identity key for
// deduplication; ScrapedAt is always assigned by the scraper, never taken
// from the page.
type Article struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	ScrapedAt time.Time `json:"scraped_at"`
	SourceURL string    `json:"source_url"`
	Filename  string    `json:"filename,omitempty"`
}

// ErrSavingFilename is returned by Save when persisting fails. Callers must
// treat it as "persist failed" and not count the article as stored.
const ErrSavingFilename = "error_saving.txt"

// headerSeparator splits the fixed header from the body in persisted
// article files.
const headerSeparator = "=================================================="

const maxFilenameTitleLen = 50

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_\s-]`)
	filenameWhitespace  = regexp.MustCompile(`[-\s]+`)
)

// urlSectionRules classify an article by its own URL path, checked in order
// before falling back to the source listing URL.
var urlSectionRules = []struct {
	pattern string
	section string
}{
	{"/news/", "news"},
	{"/rankings/", "rankings"},
	{"/advice/", "advice"},
	{"/articles/", "articles"},
}

// Store persists articles as structured text records under
// root/section/date/filename. Records are write-once; they are read back
// only for browsing and summarization, never for dedup decisions.
type Store struct {
	root       string
	sectionMap map[string]string
}

// NewStore creates an article store rooted at root. sectionMap maps listing
// URL prefixes to section names and is used when an article's own URL gives
// no classification.
func NewStore(root string, sectionMap map[string]string) *Store {
	return &Store{
		root:       root,
		sectionMap: sectionMap,
	}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Section determines the section for an article: URL path rules first, then
// the longest matching listing-URL prefix of sourceURL, else "unknown".
// When two prefixes of equal length both match they are identical strings,
// so the longest-prefix rule is deterministic.
func (s *Store) Section(articleURL, sourceURL string) string {
	for _, rule := range urlSectionRules {
		if strings.Contains(articleURL, rule.pattern) {
			return rule.section
		}
	}

	if sourceURL != "" {
		bestLen := 0
		best := ""
		for prefix, section := range s.sectionMap {
			if strings.HasPrefix(sourceURL, prefix) && len(prefix) > bestLen {
				best = section
				bestLen = len(prefix)
			}
		}
		if best != "" {
			return best
		}
	}

	return "unknown"
}

// Save writes the article under section/date/filename and returns the
// filename. Any failure is logged and ErrSavingFilename is returned rather
// than an error; the article must then not be counted as stored.
func (s *Store) Save(article *Article, sourceURL string) string {
	section := s.Section(article.URL, sourceURL)
	dateFolder := dateFolderFor(article.Date)

	dir := filepath.Join(s.root, section, dateFolder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("ERROR: Failed to create article directory %s: %v", dir, err)
		return ErrSavingFilename
	}

	filename := safeFilename(article.Title) + "_" + time.Now().Format("150405") + ".txt"
	path := filepath.Join(dir, filename)

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", article.Title)
	fmt.Fprintf(&b, "Author: %s\n", article.Author)
	fmt.Fprintf(&b, "Date: %s\n", article.Date)
	fmt.Fprintf(&b, "URL: %s\n", article.URL)
	fmt.Fprintf(&b, "Section: %s\n", section)
	fmt.Fprintf(&b, "Source URL: %s\n", sourceURL)
	fmt.Fprintf(&b, "Tags: %s\n", strings.Join(article.Tags, ", "))
	fmt.Fprintf(&b, "Scraped: %s\n", article.ScrapedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "\n%s\n\n", headerSeparator)
	b.WriteString(article.Content)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		log.Printf("ERROR: Failed to save article %s: %v", path, err)
		return ErrSavingFilename
	}

	log.Printf("INFO: Saved article: %s/%s/%s", section, dateFolder, filename)
	return filename
}

// ArticleInfo is a per-record summary returned by ListAll.
type ArticleInfo struct {
	Filename string
	Title    string
	Author   string
	Section  string
	Date     string
	Path     string // relative to the store root
}

// Summary aggregates the store's contents for browsing and reporting.
type Summary struct {
	TotalArticles int
	Articles      []ArticleInfo
	Sections      map[string]int
}

// ListAll walks the store and returns per-article summaries plus
// per-section counts. Corrupt records are skipped and logged, not fatal. A
// missing root yields an empty summary.
func (s *Store) ListAll() *Summary {
	summary := &Summary{Sections: make(map[string]int)}

	if _, err := os.Stat(s.root); os.IsNotExist(err) {
		return summary
	}

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("WARN: Error walking %s: %v", path, err)
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}

		info, parseErr := parseArticleFile(path, s.root)
		if parseErr != nil {
			log.Printf("WARN: Error reading %s: %v", d.Name(), parseErr)
			return nil
		}

		summary.Articles = append(summary.Articles, *info)
		summary.Sections[info.Section]++
		return nil
	})
	if err != nil {
		log.Printf("WARN: Error walking article store: %v", err)
	}

	summary.TotalArticles = len(summary.Articles)
	return summary
}

// parseArticleFile reads the positional header of a persisted record. Line
// 0 is Title, line 1 Author, line 2 Date, line 4 Section.
func parseArticleFile(path, root string) (*ArticleInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 5 {
		return nil, fmt.Errorf("truncated article record")
	}

	relPath, err := filepath.Rel(root, path)
	if err != nil {
		relPath = path
	}

	return &ArticleInfo{
		Filename: filepath.Base(path),
		Title:    strings.TrimPrefix(lines[0], "Title: "),
		Author:   strings.TrimPrefix(lines[1], "Author: "),
		Date:     strings.TrimPrefix(lines[2], "Date: "),
		Section:  strings.TrimPrefix(lines[4], "Section: "),
		Path:     relPath,
	}, nil
}

// dateFolderFor parses the article's reported date leniently; anything
// unparseable falls back to today.
func dateFolderFor(date string) string {
	if date != "" {
		if parsed, err := dateparse.ParseAny(date); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return time.Now().Format("2006-01-02")
}

// safeFilename reduces a title to filesystem-safe characters: strip
// anything outside word characters, spaces and hyphens, collapse runs of
// whitespace and hyphens to a single hyphen, and truncate.
func safeFilename(title string) string {
	safe := unsafeFilenameChars.ReplaceAllString(title, "")
	safe = strings.TrimSpace(safe)
	safe = filenameWhitespace.ReplaceAllString(safe, "-")
	if len(safe) > maxFilenameTitleLen {
		safe = safe[:maxFilenameTitleLen]
	}
	return safe
}

// Command scrape runs a full scraping pass. It prompts for the number of
// articles to fetch and prints a summary of the article store and the
// deduplication ledger when done.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/Shwinn/fantasy-football-alerts/config"
	"github.com/Shwinn/fantasy-football-alerts/scraper"
)

type options struct {
	ConfigPath  string `long:"config" env:"FFA_CONFIG" default:"config.yaml" description:"Path to the YAML configuration file"`
	ArticlesDir string `long:"articles-dir" env:"FFA_ARTICLES_DIR" default:"scraped_articles" description:"Root directory for scraped article records"`
	LedgerPath  string `long:"ledger" env:"FFA_LEDGER" default:"scraped_urls.json" description:"Path to the scraped URL tracking file"`
	ClearLedger bool   `long:"clear-ledger" description:"Clear all scraped URL tracking and exit (use with caution)"`
}

func main() {
	log.SetFlags(log.LstdFlags)

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	if opts.ClearLedger {
		ledger := scraper.NewLedger(opts.LedgerPath)
		if err := ledger.Clear(); err != nil {
			log.Fatalf("ERROR: Failed to clear ledger: %v", err)
		}
		return
	}

	fmt.Println("FantasyPros Web Scraper - Full Run")
	fmt.Println(strings.Repeat("=", 50))

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Fatalf("ERROR: Failed to load configuration: %v", err)
	}

	maxArticles := promptArticleCount(20)
	fmt.Printf("\nStarting scrape for %d articles...\n", maxArticles)

	ledger := scraper.NewLedger(opts.LedgerPath)
	store := scraper.NewStore(opts.ArticlesDir, cfg.Site.SectionMap)
	articles := scraper.New(cfg.Site, ledger, store, nil).Run(maxArticles)

	if len(articles) == 0 {
		fmt.Println("No articles were scraped successfully.")
		return
	}

	fmt.Printf("\nSuccessfully scraped %d articles!\n", len(articles))
	printSummary(store, ledger, opts.ArticlesDir)
}

// maxPromptedArticles caps a single interactive run.
const maxPromptedArticles = 100

// promptArticleCount asks how many articles to scrape, falling back to the
// default on empty or unparseable input.
func promptArticleCount(defaultCount int) int {
	fmt.Printf("How many articles would you like to scrape? (default: %d): ", defaultCount)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return defaultCount
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultCount
	}

	count, err := strconv.Atoi(line)
	if err != nil || count < 1 {
		return defaultCount
	}
	if count > maxPromptedArticles {
		return maxPromptedArticles
	}
	return count
}

func printSummary(store *scraper.Store, ledger *scraper.Ledger, articlesDir string) {
	summary := store.ListAll()

	fmt.Println("\nScraping Summary:")
	fmt.Printf("Total articles: %d\n", summary.TotalArticles)
	fmt.Printf("\nArticles saved to: %s\n", articlesDir)

	fmt.Println("\nArticles by section:")
	for section, count := range summary.Sections {
		fmt.Printf("  %s: %d articles\n", section, count)
	}

	fmt.Println("\nRecent articles:")
	recent := summary.Articles
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	for _, article := range recent {
		fmt.Printf("- [%s] %s (%s)\n", article.Section, article.Title, article.Date)
	}

	fmt.Println("\nDeduplication Stats:")
	fmt.Printf("  Total tracked URLs: %d\n", ledger.Len())
	fmt.Printf("  Tracking file: %s\n", ledger.Path())
}

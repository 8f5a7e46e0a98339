// Command browse lists and searches the scraped article store. With no
// arguments it prints sections, totals and recent articles; with arguments
// it searches titles and authors for the given term.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/Shwinn/fantasy-football-alerts/config"
	"github.com/Shwinn/fantasy-football-alerts/scraper"
)

type options struct {
	ConfigPath  string `long:"config" env:"FFA_CONFIG" default:"config.yaml" description:"Path to the YAML configuration file"`
	ArticlesDir string `long:"articles-dir" env:"FFA_ARTICLES_DIR" default:"scraped_articles" description:"Root directory for scraped article records"`

	Args struct {
		SearchTerms []string `positional-arg-name:"search-term"`
	} `positional-args:"yes"`
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

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Fatalf("ERROR: Failed to load configuration: %v", err)
	}

	store := scraper.NewStore(opts.ArticlesDir, cfg.Site.SectionMap)

	if len(opts.Args.SearchTerms) > 0 {
		searchArticles(store, strings.Join(opts.Args.SearchTerms, " "))
	} else {
		browseArticles(store)
	}
}

func browseArticles(store *scraper.Store) {
	summary := store.ListAll()

	fmt.Println("FantasyPros Articles Browser")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Total articles: %d\n", summary.TotalArticles)

	if summary.TotalArticles == 0 {
		fmt.Println("No articles found. Run the scraper first!")
		return
	}

	fmt.Println("\nArticles by section:")
	for section, count := range summary.Sections {
		fmt.Printf("  %s: %d articles\n", section, count)
	}

	fmt.Println("\nRecent articles (last 20):")
	recent := summary.Articles
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}
	for i, article := range recent {
		fmt.Printf("%2d. [%s] %s (%s)\n", i+1, article.Section, article.Title, article.Date)
		fmt.Printf("     Path: %s\n", article.Path)
	}

	// Group by date, newest first
	byDate := make(map[string][]scraper.ArticleInfo)
	for _, article := range summary.Articles {
		byDate[article.Date] = append(byDate[article.Date], article)
	}
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	fmt.Println("\nArticles by date:")
	for _, date := range dates {
		fmt.Printf("\n%s:\n", date)
		for _, article := range byDate[date] {
			fmt.Printf("  - [%s] %s\n", article.Section, article.Title)
		}
	}
}

func searchArticles(store *scraper.Store, term string) {
	summary := store.ListAll()

	fmt.Printf("Searching for: %q\n", term)
	fmt.Println(strings.Repeat("=", 40))

	lowered := strings.ToLower(term)
	var matches []scraper.ArticleInfo
	for _, article := range summary.Articles {
		if strings.Contains(strings.ToLower(article.Title), lowered) ||
			strings.Contains(strings.ToLower(article.Author), lowered) {
			matches = append(matches, article)
		}
	}

	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return
	}

	fmt.Printf("Found %d matches:\n", len(matches))
	for i, article := range matches {
		fmt.Printf("%2d. [%s] %s (%s)\n", i+1, article.Section, article.Title, article.Date)
		fmt.Printf("     Author: %s\n", article.Author)
		fmt.Printf("     Path: %s\n", article.Path)
	}
}

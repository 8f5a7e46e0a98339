// Command digest runs the full daily pipeline: fetch news from every
// source (Sleeper trending, RSS feeds, scraped articles), filter for
// fantasy relevance, generate the digest, and write it to disk.
package main

import (
	"context"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/Shwinn/fantasy-football-alerts/config"
	"github.com/Shwinn/fantasy-football-alerts/digest"
	"github.com/Shwinn/fantasy-football-alerts/filter"
	"github.com/Shwinn/fantasy-football-alerts/news"
	"github.com/Shwinn/fantasy-football-alerts/scraper"
	"github.com/Shwinn/fantasy-football-alerts/sleeper"
)

type options struct {
	ConfigPath      string `long:"config" env:"FFA_CONFIG" default:"config.yaml" description:"Path to the YAML configuration file"`
	ArticlesDir     string `long:"articles-dir" env:"FFA_ARTICLES_DIR" default:"scraped_articles" description:"Root directory for scraped article records"`
	LedgerPath      string `long:"ledger" env:"FFA_LEDGER" default:"scraped_urls.json" description:"Path to the scraped URL tracking file"`
	DigestsDir      string `long:"digests-dir" env:"FFA_DIGESTS_DIR" default:"digests" description:"Output directory for daily digests"`
	PlayerCachePath string `long:"player-cache" env:"FFA_PLAYER_CACHE" default:"sleeper_players.db" description:"Path to the Sleeper player cache database"`
	MaxArticles     int    `long:"max-articles" env:"FFA_MAX_ARTICLES" default:"10" description:"Maximum number of articles to scrape"`
	NoLLM           bool   `long:"no-llm" description:"Force simple digest generation without LLM API calls"`
	OpenAIKey       string `long:"openai-key" env:"OPENAI_API_KEY" description:"OpenAI API key for LLM-powered digests"`
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

	log.Println("INFO: NFL Fantasy Waiver Digest Generator")

	useLLM := opts.OpenAIKey != "" && !opts.NoLLM
	switch {
	case opts.NoLLM:
		log.Println("INFO: Mode: simple digest (LLM disabled by --no-llm flag)")
	case opts.OpenAIKey == "":
		log.Println("INFO: Mode: simple digest (no OpenAI API key found)")
	default:
		log.Println("INFO: Mode: LLM-powered digest")
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Fatalf("ERROR: Failed to load configuration: %v", err)
	}

	allNews := fetchAllNews(cfg, &opts)
	if len(allNews) == 0 {
		log.Println("WARN: No news items found, exiting")
		return
	}

	relevant := filter.New(cfg.FantasyKeywords).Relevant(allNews)
	if len(relevant) == 0 {
		log.Println("WARN: No fantasy-relevant news found, exiting")
		return
	}

	var content string
	if useLLM {
		log.Println("INFO: Generating digest with LLM")
		content = digest.Generate(relevant, opts.OpenAIKey)
	} else {
		log.Println("INFO: Generating simple digest")
		content = digest.GenerateSimple(relevant)
	}

	if path := digest.Write(content, opts.DigestsDir); path != "" {
		log.Printf("INFO: Digest successfully generated: %s", path)
	} else {
		log.Println("ERROR: Failed to write digest file")
		os.Exit(1)
	}
}

// fetchAllNews gathers news from every configured source. Each source
// failing is logged by the source itself and contributes nothing; the
// pipeline continues with whatever arrived.
func fetchAllNews(cfg *config.FileConfig, opts *options) []news.Item {
	var all []news.Item

	// Sleeper trending players
	cache, err := sleeper.NewPlayerCache(opts.PlayerCachePath)
	if err != nil {
		log.Printf("WARN: Player cache unavailable: %v", err)
		cache = nil
	} else {
		defer cache.Close()
	}
	all = append(all, sleeper.NewClient(cache).News(context.Background())...)

	// RSS feeds, when configured
	if len(cfg.FeedURLs) > 0 {
		all = append(all, news.FetchFeedNews(cfg.FeedURLs)...)
	}

	// Scraped articles
	ledger := scraper.NewLedger(opts.LedgerPath)
	store := scraper.NewStore(opts.ArticlesDir, cfg.Site.SectionMap)
	articles := scraper.New(cfg.Site, ledger, store, nil).Run(opts.MaxArticles)
	all = append(all, news.FromArticles(articles)...)

	log.Printf("INFO: Total news items fetched: %d", len(all))
	return all
}

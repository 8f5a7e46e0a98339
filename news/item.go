// Package news defines the shared news item model that every source
// (trending API, RSS feeds, scraped articles) is normalized into before
// filtering and digest generation.
package news

import (
	"time"

	"github.com/google/uuid"

	"github.com/Shwinn/fantasy-football-alerts/scraper"
)

// Source identifiers carried on items.
const (
	SourceSleeper = "sleeper"
	SourceScraped = "fantasypros_scraped"
	SourceFeed    = "rss"
)

// Trend direction for Sleeper trending items.
const (
	TrendAdd  = "add"
	TrendDrop = "drop"
)

// maxSummaryLen caps summaries built from scraped article bodies.
const maxSummaryLen = 500

// Item is one normalized news item. Player fields are empty for sources
// that don't attribute news to a single player; Trend fields are set only
// for Sleeper trending items.
type Item struct {
	ID         uuid.UUID `json:"id"`
	PlayerName string    `json:"player_name,omitempty"`
	Team       string    `json:"team,omitempty"`
	Position   string    `json:"position,omitempty"`
	Headline   string    `json:"headline"`
	Summary    string    `json:"summary"`
	Source     string    `json:"source"`
	Timestamp  time.Time `json:"timestamp"`
	TrendType  string    `json:"trend_type,omitempty"`
	TrendCount int       `json:"trend_count,omitempty"`
}

// IsTrend reports whether the item is a Sleeper trending entry. Trending
// items are always fantasy relevant.
func (i Item) IsTrend() bool {
	return i.Source == SourceSleeper && i.TrendType != ""
}

// FromArticle converts a scraped article into a news item. The body is
// truncated to a digest-friendly summary.
func FromArticle(a scraper.Article) Item {
	summary := a.Content
	if len(summary) > maxSummaryLen {
		summary = summary[:maxSummaryLen] + "..."
	}

	return Item{
		ID:        uuid.New(),
		Headline:  a.Title,
		Summary:   summary,
		Source:    SourceScraped,
		Timestamp: a.ScrapedAt,
	}
}

// FromArticles converts a batch of scraped articles.
func FromArticles(articles []scraper.Article) []Item {
	items := make([]Item, 0, len(articles))
	for _, a := range articles {
		items = append(items, FromArticle(a))
	}
	return items
}

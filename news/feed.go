package news

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

// FetchFeed fetches and parses an RSS or Atom feed. The gofeed library
// detects and handles both formats.
func FetchFeed(url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	feed, err := fp.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return feed, nil
}

// FeedItemToItem converts one feed entry to a news item.
func FeedItemToItem(item *gofeed.Item) Item {
	headline := item.Title
	if headline == "" {
		headline = "(No headline)"
	}

	var timestamp time.Time
	if item.PublishedParsed != nil {
		timestamp = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		timestamp = *item.UpdatedParsed
	} else {
		timestamp = time.Now()
	}

	return Item{
		ID:        uuid.New(),
		Headline:  headline,
		Summary:   item.Description,
		Source:    SourceFeed,
		Timestamp: timestamp,
	}
}

// FetchFeedNews fetches every configured feed and flattens the entries into
// news items. A feed that fails to fetch or parse is logged and skipped;
// the remaining feeds still contribute.
func FetchFeedNews(urls []string) []Item {
	var items []Item
	for _, url := range urls {
		feed, err := FetchFeed(url)
		if err != nil {
			log.Printf("WARN: Error fetching feed %s: %v", url, err)
			continue
		}
		for _, entry := range feed.Items {
			items = append(items, FeedItemToItem(entry))
		}
		log.Printf("INFO: Fetched %d items from feed %s", len(feed.Items), url)
	}
	return items
}

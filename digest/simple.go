// Package digest turns filtered news items into the daily markdown digest
// and writes it to disk. Generation is LLM-backed when an API key is
// available, with a plain template fallback.
package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/Shwinn/fantasy-football-alerts/news"
)

// maxItemSummaryLen truncates very long summaries in the simple digest.
const maxItemSummaryLen = 200

// GenerateSimple builds a digest without any LLM call, grouping items by
// source and trend direction.
func GenerateSimple(items []news.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# NFL Daily Fantasy Digest - %s\n\n", time.Now().Format("January 2, 2006"))

	if len(items) == 0 {
		b.WriteString("No fantasy-relevant news found today.\n")
		return b.String()
	}

	var adds, drops, otherSleeper, scraped []news.Item
	for _, item := range items {
		switch {
		case item.Source == news.SourceSleeper && item.TrendType == news.TrendAdd:
			adds = append(adds, item)
		case item.Source == news.SourceSleeper && item.TrendType == news.TrendDrop:
			drops = append(drops, item)
		case item.Source == news.SourceSleeper:
			otherSleeper = append(otherSleeper, item)
		case item.Source == news.SourceScraped:
			scraped = append(scraped, item)
		}
	}

	if len(adds) > 0 {
		b.WriteString("## Trending Up (Sleeper)\n\n")
		for _, item := range adds {
			fmt.Fprintf(&b, "- **%s** (%s) - %d adds in 24h\n",
				orUnknown(item.PlayerName), orUnknown(item.Team), item.TrendCount)
		}
		b.WriteString("\n")
	}

	if len(drops) > 0 {
		b.WriteString("## Trending Down (Sleeper)\n\n")
		for _, item := range drops {
			fmt.Fprintf(&b, "- **%s** (%s) - %d drops in 24h\n",
				orUnknown(item.PlayerName), orUnknown(item.Team), item.TrendCount)
		}
		b.WriteString("\n")
	}

	if len(otherSleeper) > 0 {
		b.WriteString("## Other Sleeper News\n\n")
		for _, item := range otherSleeper {
			fmt.Fprintf(&b, "- **%s** (%s) - %s\n",
				orUnknown(item.PlayerName), orUnknown(item.Team), orDefault(item.Headline, "No headline"))
		}
		b.WriteString("\n")
	}

	if len(scraped) > 0 {
		b.WriteString("## FantasyPros News\n\n")
		for _, item := range scraped {
			content := item.Summary
			if content == "" {
				content = orDefault(item.Headline, "No headline")
			}
			if len(content) > maxItemSummaryLen {
				content = content[:maxItemSummaryLen] + "..."
			}
			fmt.Fprintf(&b, "- **%s** - %s\n", orDefault(item.Headline, "Unknown"), content)
		}
		b.WriteString("\n")
	}

	b.WriteString("*(Data aggregated from Sleeper + FantasyPros)*\n")
	return b.String()
}

func orUnknown(s string) string {
	return orDefault(s, "Unknown")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Package filter decides which news items matter for fantasy football and
// groups them into digest categories.
package filter

import (
	"log"
	"strings"

	"github.com/Shwinn/fantasy-football-alerts/news"
)

// Filter is a keyword-based relevance filter.
type Filter struct {
	keywords []string
}

// New creates a filter over the given fantasy keyword list. Keywords are
// matched case-insensitively against headline plus summary.
func New(keywords []string) *Filter {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		lowered = append(lowered, strings.ToLower(kw))
	}
	return &Filter{keywords: lowered}
}

// IsRelevant reports whether a news item is fantasy relevant. Sleeper
// trending data is always relevant; everything else must match a keyword.
func (f *Filter) IsRelevant(item news.Item) bool {
	if item.IsTrend() {
		return true
	}

	text := strings.ToLower(item.Headline + " " + item.Summary)
	for _, kw := range f.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Relevant returns the subsequence of fantasy-relevant items.
func (f *Filter) Relevant(items []news.Item) []news.Item {
	var relevant []news.Item
	for _, item := range items {
		if f.IsRelevant(item) {
			relevant = append(relevant, item)
		}
	}

	log.Printf("INFO: Filtered %d news items down to %d fantasy-relevant items",
		len(items), len(relevant))
	return relevant
}

// Category names used by Categorize.
const (
	CategoryInjuries     = "injuries"
	CategoryRoleChanges  = "role_changes"
	CategoryTransactions = "transactions"
	CategoryPerformance  = "performance"
	CategoryTrendingUp   = "trending_up"
	CategoryTrendingDown = "trending_down"
	CategoryOther        = "other"
)

var injuryKeywords = []string{
	"injured", "injury", "out", "questionable", "doubtful", "probable",
	"hamstring", "knee", "ankle", "concussion", "shoulder", "back",
	"limited", "full", "practice", "rehab", "recovery",
}

var roleKeywords = []string{
	"promoted", "demoted", "starter", "backup", "depth chart", "depth",
	"snap count", "snaps", "targets", "carries", "touches",
}

var transactionKeywords = []string{
	"signed", "released", "traded", "waived", "claimed",
	"contract", "extension", "restructure",
}

var performanceKeywords = []string{
	"breakout", "breakout game", "career high", "season high",
	"struggling", "struggles", "slumping", "slump",
	"hot", "cold", "streak", "trending",
}

// Categorize groups items by news type. Sleeper trending items go straight
// to the trending buckets; everything else is classified by the first
// keyword group that matches, in priority order.
func Categorize(items []news.Item) map[string][]news.Item {
	categories := map[string][]news.Item{
		CategoryInjuries:     nil,
		CategoryRoleChanges:  nil,
		CategoryTransactions: nil,
		CategoryPerformance:  nil,
		CategoryTrendingUp:   nil,
		CategoryTrendingDown: nil,
		CategoryOther:        nil,
	}

	for _, item := range items {
		if item.IsTrend() {
			switch item.TrendType {
			case news.TrendAdd:
				categories[CategoryTrendingUp] = append(categories[CategoryTrendingUp], item)
			case news.TrendDrop:
				categories[CategoryTrendingDown] = append(categories[CategoryTrendingDown], item)
			}
			continue
		}

		text := strings.ToLower(item.Headline + " " + item.Summary)
		switch {
		case matchesAny(text, injuryKeywords):
			categories[CategoryInjuries] = append(categories[CategoryInjuries], item)
		case matchesAny(text, roleKeywords):
			categories[CategoryRoleChanges] = append(categories[CategoryRoleChanges], item)
		case matchesAny(text, transactionKeywords):
			categories[CategoryTransactions] = append(categories[CategoryTransactions], item)
		case matchesAny(text, performanceKeywords):
			categories[CategoryPerformance] = append(categories[CategoryPerformance], item)
		default:
			categories[CategoryOther] = append(categories[CategoryOther], item)
		}
	}

	return categories
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Package sleeper is a client for the Sleeper fantasy API's trending-player
// endpoints, with a SQLite-backed cache for the large player details
// payload.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Shwinn/fantasy-football-alerts/news"
)

// DefaultBaseURL is the public Sleeper API root.
const DefaultBaseURL = "https://api.sleeper.app/v1"

const (
	trendLookbackHours = 24
	trendFetchLimit    = 25
	topAdds            = 10
	topDrops           = 5
)

// Trend is one trending-player entry.
type Trend struct {
	PlayerID string `json:"player_id"`
	Count    int    `json:"count"`
}

// Player holds the subset of Sleeper player details used for news items.
type Player struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Team         string `json:"team"`
	Position     string `json:"position"`
	Status       string `json:"status"`
	InjuryStatus string `json:"injury_status"`
}

// Name returns the player's full name.
func (p Player) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Client talks to the Sleeper API.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *PlayerCache
}

// NewClient creates a Sleeper client. cache may be nil, in which case
// player details are fetched on every call.
func NewClient(cache *PlayerCache) *Client {
	return NewClientWithBaseURL(DefaultBaseURL, cache)
}

// NewClientWithBaseURL creates a client against an alternate API root.
func NewClientWithBaseURL(baseURL string, cache *PlayerCache) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   cache,
	}
}

// TrendingPlayers fetches trending players. trendType is "add" or "drop".
func (c *Client) TrendingPlayers(ctx context.Context, trendType string) ([]Trend, error) {
	endpoint := fmt.Sprintf("%s/players/nfl/trending/%s", c.baseURL, trendType)
	params := url.Values{
		"lookback_hours": {strconv.Itoa(trendLookbackHours)},
		"limit":          {strconv.Itoa(trendFetchLimit)},
	}

	var trends []Trend
	if err := c.getJSON(ctx, endpoint+"?"+params.Encode(), &trends); err != nil {
		return nil, fmt.Errorf("failed to fetch trending %s: %w", trendType, err)
	}
	return trends, nil
}

// PlayerDetails returns the full player map, served from the cache when it
// is fresh.
func (c *Client) PlayerDetails(ctx context.Context) (map[string]Player, error) {
	if c.cache != nil {
		players, ok, err := c.cache.Get()
		if err != nil {
			log.Printf("WARN: Player cache read failed: %v", err)
		} else if ok {
			log.Println("INFO: Using cached Sleeper player data")
			return players, nil
		}
	}

	log.Println("INFO: Fetching fresh Sleeper player data")
	var players map[string]Player
	if err := c.getJSON(ctx, c.baseURL+"/players/nfl", &players); err != nil {
		return nil, fmt.Errorf("failed to fetch player details: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Put(players); err != nil {
			log.Printf("WARN: Player cache write failed: %v", err)
		} else {
			log.Printf("INFO: Cached %d players", len(players))
		}
	}

	return players, nil
}

// News fetches trending adds and drops and converts the top entries into
// news items. Failures are logged and yield an empty slice; the digest
// pipeline continues with its other sources.
func (c *Client) News(ctx context.Context) []news.Item {
	log.Println("INFO: Fetching Sleeper trending players")

	adds, err := c.TrendingPlayers(ctx, news.TrendAdd)
	if err != nil {
		log.Printf("WARN: Error fetching Sleeper trending adds: %v", err)
	}
	drops, err := c.TrendingPlayers(ctx, news.TrendDrop)
	if err != nil {
		log.Printf("WARN: Error fetching Sleeper trending drops: %v", err)
	}
	if len(adds) == 0 && len(drops) == 0 {
		return nil
	}

	players, err := c.PlayerDetails(ctx)
	if err != nil {
		log.Printf("WARN: Error fetching Sleeper player details: %v", err)
		return nil
	}

	var items []news.Item
	for _, trend := range truncate(adds, topAdds) {
		if player, ok := players[trend.PlayerID]; ok {
			items = append(items, trendItem(player, trend, news.TrendAdd))
		}
	}
	for _, trend := range truncate(drops, topDrops) {
		if player, ok := players[trend.PlayerID]; ok {
			items = append(items, trendItem(player, trend, news.TrendDrop))
		}
	}

	log.Printf("INFO: Fetched %d trending items from Sleeper", len(items))
	return items
}

// trendItem builds a news item for one trending player.
func trendItem(player Player, trend Trend, trendType string) news.Item {
	direction := "up"
	action := "added to"
	if trendType == news.TrendDrop {
		direction = "down"
		action = "dropped from"
	}

	return news.Item{
		ID:         uuid.New(),
		PlayerName: player.Name(),
		Team:       orUnknown(player.Team),
		Position:   orUnknown(player.Position),
		Headline:   fmt.Sprintf("Trending %s: %d %ss in last 24 hours", direction, trend.Count, trendType),
		Summary: fmt.Sprintf("Player is being %s %d rosters in the last 24 hours. Status: %s, Injury: %s",
			action, trend.Count, orUnknown(player.Status), orNone(player.InjuryStatus)),
		Source:     news.SourceSleeper,
		Timestamp:  time.Now(),
		TrendType:  trendType,
		TrendCount: trend.Count,
	}
}

func truncate(trends []Trend, n int) []Trend {
	if len(trends) > n {
		return trends[:n]
	}
	return trends
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

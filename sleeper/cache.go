package sleeper

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// cacheTTL is how long cached player details stay fresh. The full player
// endpoint is large, so it is only refetched once a day.
const cacheTTL = 24 * time.Hour

// PlayerCache stores the Sleeper player details payload in SQLite so
// repeated runs don't hammer the large players endpoint.
type PlayerCache struct {
	db *sql.DB
}

// NewPlayerCache opens (or creates) the cache database at dbPath.
func NewPlayerCache(dbPath string) (*PlayerCache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	cache := &PlayerCache{db: db}
	if err := cache.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return cache, nil
}

// initSchema creates the cache table if it doesn't exist.
func (c *PlayerCache) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS player_cache (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	);
	`

	_, err := c.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (c *PlayerCache) Close() error {
	return c.db.Close()
}

// Get returns the cached player map if present and fresher than the TTL.
// The second return value is false when the cache is cold or stale.
func (c *PlayerCache) Get() (map[string]Player, bool, error) {
	query := "SELECT payload, fetched_at FROM player_cache WHERE key = ?"

	var payload, fetchedAt string
	err := c.db.QueryRow(query, "players").Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query player cache: %w", err)
	}

	fetched, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil || time.Since(fetched) > cacheTTL {
		return nil, false, nil
	}

	var players map[string]Player
	if err := json.Unmarshal([]byte(payload), &players); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached players: %w", err)
	}

	return players, true, nil
}

// Put stores the player map, replacing any prior snapshot.
func (c *PlayerCache) Put(players map[string]Player) error {
	payload, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("failed to encode players: %w", err)
	}

	query := "INSERT OR REPLACE INTO player_cache (key, payload, fetched_at) VALUES (?, ?, ?)"
	_, err = c.db.Exec(query, "players", string(payload), time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to update player cache: %w", err)
	}
	return nil
}

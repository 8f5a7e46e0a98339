package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig represents the optional YAML configuration file. Any field left
// empty falls back to the built-in defaults.
type FileConfig struct {
	Site            Site     `yaml:"site"`
	FantasyKeywords []string `yaml:"fantasy_keywords"`

	// RSS feed URLs polled as an additional news source.
	FeedURLs []string `yaml:"feed_urls"`
}

// LoadFile loads configuration from the given path. Returns nil if the file
// doesn't exist (not an error). Returns an error if the file exists but
// cannot be parsed.
func LoadFile(path string) (*FileConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Load resolves the effective configuration: built-in defaults overlaid
// with whatever the file at path provides. A missing file yields pure
// defaults.
func Load(path string) (*FileConfig, error) {
	resolved := &FileConfig{
		Site:            DefaultSite(),
		FantasyKeywords: DefaultFantasyKeywords(),
	}

	fileCfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if fileCfg == nil {
		return resolved, nil
	}

	// Overlay only the fields the file actually sets.
	if fileCfg.Site.Domain != "" {
		resolved.Site.Domain = fileCfg.Site.Domain
	}
	if len(fileCfg.Site.ListingURLs) > 0 {
		resolved.Site.ListingURLs = fileCfg.Site.ListingURLs
	}
	if len(fileCfg.Site.SectionMap) > 0 {
		resolved.Site.SectionMap = fileCfg.Site.SectionMap
	}
	if len(fileCfg.Site.LinkPatterns) > 0 {
		resolved.Site.LinkPatterns = fileCfg.Site.LinkPatterns
	}
	if len(fileCfg.Site.ArticleIndicators) > 0 {
		resolved.Site.ArticleIndicators = fileCfg.Site.ArticleIndicators
	}
	if len(fileCfg.Site.SkipPatterns) > 0 {
		resolved.Site.SkipPatterns = fileCfg.Site.SkipPatterns
	}
	if len(fileCfg.Site.SectionRoots) > 0 {
		resolved.Site.SectionRoots = fileCfg.Site.SectionRoots
	}
	if len(fileCfg.Site.TopicalKeywords) > 0 {
		resolved.Site.TopicalKeywords = fileCfg.Site.TopicalKeywords
	}
	if len(fileCfg.Site.SkipKeywords) > 0 {
		resolved.Site.SkipKeywords = fileCfg.Site.SkipKeywords
	}
	if len(fileCfg.FantasyKeywords) > 0 {
		resolved.FantasyKeywords = fileCfg.FantasyKeywords
	}
	resolved.FeedURLs = fileCfg.FeedURLs

	return resolved, nil
}

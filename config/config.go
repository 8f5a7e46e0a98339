package config

// Site holds everything the scraper needs to know about the target site:
// where to look for articles, how to recognize one, and how listing pages
// map onto sections of the article store.
type Site struct {
	// Domain is the substring a URL must contain to belong to the site.
	Domain string `yaml:"domain"`
	// ListingURLs are the pages scanned for article links, in order.
	ListingURLs []string `yaml:"listing_urls"`
	// SectionMap maps listing-URL prefixes to article store sections.
	// Longest matching prefix wins.
	SectionMap map[string]string `yaml:"section_map"`
	// LinkPatterns are href substrings used to build the targeted link
	// selectors on listing pages.
	LinkPatterns []string `yaml:"link_patterns"`
	// ArticleIndicators are path substrings that mark a URL as an article
	// rather than a listing page or asset.
	ArticleIndicators []string `yaml:"article_indicators"`
	// SkipPatterns reject a URL outright (assets, auth, pagination, ...).
	SkipPatterns []string `yaml:"skip_patterns"`
	// SectionRoots are path suffixes that identify bare section listing
	// pages, rejected even though they contain an article indicator.
	SectionRoots []string `yaml:"section_roots"`
	// TopicalKeywords and SkipKeywords drive the broad fallback link scan
	// used when the targeted selectors find nothing.
	TopicalKeywords []string `yaml:"topical_keywords"`
	SkipKeywords    []string `yaml:"skip_keywords"`
}

// DefaultSite returns the built-in FantasyPros NFL configuration.
func DefaultSite() Site {
	return Site{
		Domain: "fantasypros.com",
		ListingURLs: []string{
			"https://www.fantasypros.com/nfl/",
			"https://www.fantasypros.com/nfl/news/",
			"https://www.fantasypros.com/nfl/articles/",
		},
		SectionMap: map[string]string{
			"https://www.fantasypros.com/nfl/":          "main",
			"https://www.fantasypros.com/nfl/news/":     "news",
			"https://www.fantasypros.com/nfl/advice/":   "advice",
			"https://www.fantasypros.com/nfl/articles/": "articles",
		},
		LinkPatterns: []string{
			"/news/", "/articles/", "/analysis/", "/rankings/", "/advice/",
			"/waiver-wire/", "/start-sit/", "/sleepers/", "/busts/",
			"/injury/", "/trade/", "/draft/", "/lineup/", "/projections/",
			"/consensus/",
			// Date-based article paths like /2025/10/article-name/
			"/2025/", "/2024/", "/2023/",
		},
		ArticleIndicators: []string{
			"/news/", "/articles/", "/analysis/", "/rankings/", "/advice/",
			"/waiver-wire/", "/start-sit/", "/sleepers/", "/busts/",
			"/injury/", "/trade/", "/draft/", "/lineup/", "/projections/",
			"/consensus/", "/correspondents/",
			"/2025/", "/2024/", "/2023/",
		},
		SkipPatterns: []string{
			"/api/", "/static/", "/css/", "/js/", "/images/", "/fonts/",
			"/ads/", "/tracking/",
			"javascript:", "mailto:", "tel:", "#", "?utm_",
			"/login", "/register", "/subscribe", "/premium",
			"?page=", "?sort=", "?filter=", "?category=", "?tag=",
			"?search=", "?year=", "?month=", "?author=",
		},
		SectionRoots: []string{"/articles/", "/news/", "/rankings/"},
		TopicalKeywords: []string{
			"news", "article", "analysis", "rankings", "advice",
			"waiver", "start-sit", "sleeper", "bust", "injury",
			"trade", "draft", "lineup", "projection", "consensus",
		},
		SkipKeywords: []string{
			"api", "static", "css", "js", "image", "font", "ad",
			"tracking", "login", "register", "subscribe", "premium",
		},
	}
}

// DefaultFantasyKeywords returns the built-in fantasy relevance keyword
// list used by the news filter.
func DefaultFantasyKeywords() []string {
	return []string{
		// Injury keywords
		"injured", "injury", "out", "questionable", "doubtful", "probable",
		"hamstring", "knee", "ankle", "concussion", "shoulder", "back",
		"limited", "full", "practice", "rehab", "recovery",

		// Role change keywords
		"promoted", "demoted", "starter", "backup", "depth chart", "depth",
		"snap count", "snaps", "targets", "carries", "touches",
		"breakout", "struggling", "hot streak", "cold streak",

		// Transaction keywords
		"signed", "released", "traded", "waived", "claimed",
		"contract", "extension", "restructure",

		// Performance keywords
		"breakout game", "career high", "season high",
		"struggles", "slumping", "slump",
		"hot", "cold", "streak", "trending",
	}
}

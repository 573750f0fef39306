package model

import "time"

// Config is the process-wide configuration, constructed once at startup and
// passed by reference into each collaborator constructor. A missing
// credential shows up as a disabled provider, never as a runtime key check.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Search      SearchConfig      `yaml:"search" mapstructure:"search"`
	Knowledge   KnowledgeConfig   `yaml:"knowledge" mapstructure:"knowledge"`
	Entity      EntityConfig      `yaml:"entity" mapstructure:"entity"`
	Narrative   NarrativeConfig   `yaml:"narrative" mapstructure:"narrative"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" mapstructure:"rate_limit"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// HTTPConfig controls outbound fetching
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	MaxTextChars  int           `yaml:"max_text_chars" mapstructure:"max_text_chars"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// SearchConfig holds evidence-provider credentials and tuning
type SearchConfig struct {
	SerperAPIKey string        `yaml:"serper_api_key" mapstructure:"serper_api_key"`
	NewsAPIKey   string        `yaml:"news_api_key" mapstructure:"news_api_key"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	NewsFeeds    []string      `yaml:"news_feeds" mapstructure:"news_feeds"`
}

// SerperEnabled reports whether the general web-search provider has a credential
func (s SearchConfig) SerperEnabled() bool { return s.SerperAPIKey != "" }

// NewsAPIEnabled reports whether the news-aggregation provider has a credential
func (s SearchConfig) NewsAPIEnabled() bool { return s.NewsAPIKey != "" }

// KnowledgeConfig points at the structured knowledge source
type KnowledgeConfig struct {
	WikipediaBaseURL string        `yaml:"wikipedia_base_url" mapstructure:"wikipedia_base_url"`
	WikidataBaseURL  string        `yaml:"wikidata_base_url" mapstructure:"wikidata_base_url"`
	Timeout          time.Duration `yaml:"timeout" mapstructure:"timeout"`
	CacheTTL         time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
}

// EntityConfig selects the named-entity recognizer. An empty ServiceURL
// selects the built-in heuristic recognizer at startup.
type EntityConfig struct {
	ServiceURL string        `yaml:"service_url" mapstructure:"service_url"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// NarrativeConfig configures the optional generative synthesizer
type NarrativeConfig struct {
	Provider  string        `yaml:"provider" mapstructure:"provider"` // openai, anthropic, ollama, ""
	Model     string        `yaml:"model" mapstructure:"model"`
	APIKey    string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens int           `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// Enabled reports whether a narrative provider is configured
func (n NarrativeConfig) Enabled() bool { return n.Provider != "" }

// CacheConfig controls knowledge-lookup caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig bounds worker pools
type ConcurrencyConfig struct {
	ScrapeWorkers int `yaml:"scrape_workers" mapstructure:"scrape_workers"`
	BatchWorkers  int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// RateLimitConfig bounds outbound requests per domain
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// ServerConfig configures the HTTP boundary layer
type ServerConfig struct {
	Addr           string        `yaml:"addr" mapstructure:"addr"`
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:       10 * time.Second,
			UserAgent:     "crosscheck/0.1 (+https://github.com/ppiankov/crosscheck)",
			MaxBodyBytes:  2_000_000,
			MaxTextChars:  15_000,
			RespectRobots: true,
		},
		Search: SearchConfig{
			Timeout: 10 * time.Second,
			NewsFeeds: []string{
				"https://feeds.bbci.co.uk/news/world/rss.xml",
				"https://feeds.reuters.com/reuters/topNews",
			},
		},
		Knowledge: KnowledgeConfig{
			WikipediaBaseURL: "https://en.wikipedia.org/w/api.php",
			WikidataBaseURL:  "https://www.wikidata.org/wiki/Special:EntityData",
			Timeout:          10 * time.Second,
			CacheTTL:         time.Hour,
		},
		Entity: EntityConfig{
			Timeout: 8 * time.Second,
		},
		Narrative: NarrativeConfig{
			Timeout:   30 * time.Second,
			MaxTokens: 1000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			ScrapeWorkers: 5,
			BatchWorkers:  3,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 4,
			Burst:             5,
		},
		Server: ServerConfig{
			Addr:           ":8000",
			RequestTimeout: 2 * time.Minute,
		},
	}
}

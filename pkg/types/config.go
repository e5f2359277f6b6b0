package types

import "time"

// HTTPConfig holds shared settings for outbound HTTP requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "patent-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// InsecureSkipVerify disables TLS certificate verification. The USPTO
	// developer host has served incomplete chains in the past.
	InsecureSkipVerify bool `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// SearchConfig holds settings for the remote search collaborator.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the DSAPI root (default https://developer.uspto.gov/ds-api).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Dataset is the DSAPI dataset name.
	Dataset string `json:"dataset" yaml:"dataset"`

	// Version is the dataset version path segment.
	Version string `json:"version" yaml:"version"`

	// RequestsPerSecond caps outbound calls to the API (0 = unlimited).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// Burst is the limiter burst size (default 1).
	Burst int `json:"burst" yaml:"burst"`

	// MaxRetries is the number of retries on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ServerConfig holds settings for the web application.
type ServerConfig struct {
	// Addr is the listen address (default ":5000").
	Addr string `json:"addr" yaml:"addr"`

	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`

	// SessionTTL is how long an idle browser session is kept (default 2h).
	SessionTTL time.Duration `json:"session_ttl" yaml:"session_ttl"`

	// NoticeTTL is how long an error notice stays visible (default 5s).
	NoticeTTL time.Duration `json:"notice_ttl" yaml:"notice_ttl"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Env selects the encoder: prod (JSON) or local/dev (console).
	Env string `json:"env" yaml:"env"`

	// Level overrides the level for Env: debug, info, warn, error.
	Level string `json:"level" yaml:"level"`
}

// Config groups all settings.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

const (
	DefaultBaseURL   = "https://developer.uspto.gov/ds-api"
	DefaultDataset   = "enriched_cited_reference_metadata"
	DefaultVersion   = "v3"
	DefaultUserAgent = "patent-search/0.1"
)

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Search.BaseURL == "" {
		c.Search.BaseURL = DefaultBaseURL
	}
	if c.Search.Dataset == "" {
		c.Search.Dataset = DefaultDataset
	}
	if c.Search.Version == "" {
		c.Search.Version = DefaultVersion
	}
	if c.Search.Timeout <= 0 {
		c.Search.Timeout = 60 * time.Second
	}
	if c.Search.UserAgent == "" {
		c.Search.UserAgent = DefaultUserAgent
	}
	if c.Search.Burst <= 0 {
		c.Search.Burst = 1
	}
	if c.Search.MaxRetries <= 0 {
		c.Search.MaxRetries = 3
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		// The handler waits on the remote API, which can be slow for large row counts.
		c.Server.WriteTimeout = 90 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Server.SessionTTL <= 0 {
		c.Server.SessionTTL = 2 * time.Hour
	}
	if c.Server.NoticeTTL <= 0 {
		c.Server.NoticeTTL = 5 * time.Second
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "local"
	}
}

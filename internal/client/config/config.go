package config

import "time"

// Config holds runtime settings for the lifehub CLI.
//
// Fields:
//   - APIBaseURL: base URL of the Lifestyle Hub HTTP API.
//   - RequestTimeout: per-request bound applied by the HTTP client.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabaseDSN: path of the local sqlite database holding the session slot.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	DatabaseDSN         string
}

// LoadDefaults populates c with sensible defaults. The default base URL
// matches a locally running API server.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.DatabaseDSN = "lifehub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"os"
	"time"
)

// parseEnv overlays Config with values from environment variables:
//
//	LIFEHUB_API_URL                base URL of the API
//	LIFEHUB_REQUEST_TIMEOUT        Go duration, e.g. "15s"
//	LIFEHUB_ONLINE_CHECK_INTERVAL  Go duration, e.g. "30s"
//	LIFEHUB_DATABASE               local sqlite database path
//
// Unparseable durations are ignored, keeping the previous value.
func parseEnv(cfg *Config) {
	if v := os.Getenv("LIFEHUB_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("LIFEHUB_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("LIFEHUB_ONLINE_CHECK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
	if v := os.Getenv("LIFEHUB_DATABASE"); v != "" {
		cfg.DatabaseDSN = v
	}
}

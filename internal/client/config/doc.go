// Package config loads runtime configuration for the lifehub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables (LIFEHUB_*).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the Lifestyle Hub API
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-d string   local sqlite database path
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://lifestyle-hub-api.onrender.com",
//	  "request_timeout": "15s",
//	  "online_check_interval": "30s",
//	  "database": "lifehub.db"
//	}
package config

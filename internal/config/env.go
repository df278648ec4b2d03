package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Environment variables that override the config file.
const (
	EnvLogLevel  = "CARBONWISE_LOG_LEVEL"
	EnvLogFormat = "CARBONWISE_LOG_FORMAT"
	EnvCatalog   = "CARBONWISE_CATALOG"
	EnvCacheTTL  = "CARBONWISE_CACHE_TTL"
)

// ApplyEnvOverrides copies set CARBONWISE_* variables onto c. A positive
// CARBONWISE_CACHE_TTL also enables the cache; zero disables it.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil || ttl < 0 {
			log.Warn().Str("value", v).Msg("ignoring invalid " + EnvCacheTTL)
			return
		}
		c.Cache.TTLSeconds = ttl
		c.Cache.Enabled = ttl > 0
	}
}

package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the user-management client.
//
// Fields:
//   - BaseURL: scheme://host:port of the user service.
//   - ResourcePrefix: path prefix of the user resource (usually "/user");
//     deployments that bake the prefix into BaseURL can leave it empty.
//   - RequestTimeout: per-request HTTP timeout.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	BaseURL             string
	ResourcePrefix      string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8081"
	c.ResourcePrefix = "/user"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
}

// parseEnv overlays values from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("USERDESK_API_BASE"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("USERDESK_API_PREFIX"); v != "" {
		cfg.ResourcePrefix = v
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}

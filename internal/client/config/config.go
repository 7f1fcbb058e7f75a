// Package config assembles runtime settings for the client from defaults,
// an optional JSON file, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the socialcli client.
//
// Fields:
//   - ServerEndpointAddr: URL of the directory GraphQL endpoint.
//   - DatabasePath: sqlite file holding durable client state.
//   - SessionTokenPath: file the login flow writes the session token to.
//   - RequestTimeout: per-call timeout for directory requests.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	SessionTokenPath   string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:5000/graphql"
	c.DatabasePath = "socialcli.db"
	c.SessionTokenPath = "session.token"
	c.RequestTimeout = 10 * time.Second
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

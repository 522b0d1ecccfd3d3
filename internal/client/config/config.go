package config

import "time"

// DefaultQuotaBytes caps a single persisted record, mimicking the storage
// quota of the original browser build.
const DefaultQuotaBytes = 5 * 1024 * 1024

// Config holds runtime settings for the family tree CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the feed gRPC endpoint.
//   - DBFileName: name of the local SQLite database file.
//   - QuotaBytes: per-record size limit for the local store.
//   - OnlineCheckInterval: how often the client probes server reachability.
//
// Units: OnlineCheckInterval is a time.Duration (e.g., 3*time.Second).
type Config struct {
	ServerEndpointAddr  string
	DBFileName          string
	QuotaBytes          int64
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DBFileName = "familytree.db"
	c.QuotaBytes = DefaultQuotaBytes
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

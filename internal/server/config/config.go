// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the cellar server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps data in memory.
//   - AdminAddr: bind address for /metrics and /healthz. Empty disables it.
//   - LabelURLTTL: lifetime of presigned label upload URLs.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
type Config struct {
	EndpointAddrGRPC string
	DatabaseDSN      string
	AdminAddr        string
	LabelURLTTL      time.Duration
	S3RootUser       string
	S3RootPassword   string
	S3Bucket         string
	S3Region         string
	S3BaseEndpoint   string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the S3 credentials are insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.AdminAddr = ":9090"
	c.LabelURLTTL = 15 * time.Minute
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "labels"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

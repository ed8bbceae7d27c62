package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Config holds runtime settings for the cellar CLI.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	RemoteTimeout       time.Duration
	DatabasePath        string
	OwnerID             string
	Encrypt             bool
	MetricsAddr         string
}

// DefaultDatabasePath is the local store under the XDG data directory.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, "cellarkeeper", "cellar.db")
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 10 * time.Second
	c.RemoteTimeout = 5 * time.Second
	c.DatabasePath = DefaultDatabasePath()
	c.OwnerID = os.Getenv("USER")
	if c.OwnerID == "" {
		c.OwnerID = "default"
	}
	c.Encrypt = false
	c.MetricsAddr = ""
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// command-line flags. Later sources take precedence.
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

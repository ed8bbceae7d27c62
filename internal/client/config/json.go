package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/cellarkeeper/internal/flagx"
	"github.com/dmitrijs2005/cellarkeeper/internal/timex"
)

// JsonConfig is the on-disk form. Only fields present in the file override
// the current values.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RemoteTimeout       *timex.Duration `json:"remote_timeout"`
	DatabasePath        *string         `json:"database_path"`
	OwnerID             *string         `json:"owner_id"`
	Encrypt             *bool           `json:"encrypt"`
	MetricsAddr         *string         `json:"metrics_addr"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RemoteTimeout != nil {
		cfg.RemoteTimeout = jc.RemoteTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.OwnerID != nil {
		cfg.OwnerID = *jc.OwnerID
	}
	if jc.Encrypt != nil {
		cfg.Encrypt = *jc.Encrypt
	}
	if jc.MetricsAddr != nil {
		cfg.MetricsAddr = *jc.MetricsAddr
	}
	return nil
}

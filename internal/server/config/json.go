package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/cellarkeeper/internal/flagx"
	"github.com/dmitrijs2005/cellarkeeper/internal/timex"
)

// JsonConfig is the DTO read from the -c/-config file. Durations accept
// both "15m" strings and integer nanoseconds. Absent fields keep their
// current value.
type JsonConfig struct {
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      *string         `json:"database_dsn"`
	AdminAddr        *string         `json:"admin_addr"`
	LabelURLTTL      *timex.Duration `json:"label_url_ttl"`
	S3RootUser       *string         `json:"s3_root_user"`
	S3RootPassword   *string         `json:"s3_root_password"`
	S3Bucket         *string         `json:"s3_bucket"`
	S3Region         *string         `json:"s3_region"`
	S3BaseEndpoint   *string         `json:"s3_base_endpoint"`
}

func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.AdminAddr, c.AdminAddr)
	if c.LabelURLTTL != nil {
		config.LabelURLTTL = c.LabelURLTTL.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, ":9090", c.AdminAddr)
	assert.Equal(t, 15*time.Minute, c.LabelURLTTL)
	assert.Equal(t, "labels", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
}

func TestLoad(t *testing.T) {
	file := writeTempJSON(t, map[string]any{
		"database_dsn":  "postgres://json",
		"label_url_ttl": "5m",
		"s3_bucket":     "json-bucket",
	})

	tests := []struct {
		name   string
		args   []string
		mutate func(c *Config)
	}{
		{
			name:   "defaults only",
			args:   []string{},
			mutate: func(c *Config) {},
		},
		{
			name: "flags",
			args: []string{
				"-a", "127.0.0.1:7000", "-d", "postgres://flag", "-m", ":9191", "-l", "30",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			},
			mutate: func(c *Config) {
				c.EndpointAddrGRPC = "127.0.0.1:7000"
				c.DatabaseDSN = "postgres://flag"
				c.AdminAddr = ":9191"
				c.LabelURLTTL = 30 * time.Minute
				c.S3RootUser = "user"
				c.S3RootPassword = "password"
				c.S3Bucket = "bucket"
				c.S3Region = "us-west-1"
				c.S3BaseEndpoint = "http://endpoint"
			},
		},
		{
			name: "json file",
			args: []string{"-c", file},
			mutate: func(c *Config) {
				c.DatabaseDSN = "postgres://json"
				c.LabelURLTTL = 5 * time.Minute
				c.S3Bucket = "json-bucket"
			},
		},
		{
			name: "flags override json",
			args: []string{"-config", file, "-b", "flag-bucket"},
			mutate: func(c *Config) {
				c.DatabaseDSN = "postgres://json"
				c.LabelURLTTL = 5 * time.Minute
				c.S3Bucket = "flag-bucket"
			},
		},
		{
			name:   "foreign flags are ignored",
			args:   []string{"-x", "1", "-verbose"},
			mutate: func(c *Config) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want Config
			want.LoadDefaults()
			tt.mutate(&want)

			got, err := load(tt.args)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(&want, got))
		})
	}
}

func TestLoadErrors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))

	_, err := load([]string{"-c", bad})
	assert.Error(t, err)

	_, err = load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)

	_, err = load([]string{"-l", "soon"})
	assert.Error(t, err)
}

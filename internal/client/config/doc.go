// Package config loads runtime configuration for the cellar CLI.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. An optional JSON file named by -c or -config.
//  3. Command-line flags -a, -i, -t, -d, -u, -e and -m.
//
// Durations in JSON are strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "10s",
//	  "remote_timeout": "5s",
//	  "database_path": "/var/lib/cellar.db",
//	  "owner_id": "alice"
//	}
package config

package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/cellarkeeper/internal/flagx"
)

// parseFlags overlays cfg with the flags it owns:
//
//	-a string   address and port of the cellar server
//	-i int      online check interval (seconds)
//	-t int      remote call timeout (seconds)
//	-d string   local database file
//	-u string   owner id
//	-e          encrypt the local database with a passphrase
//	-m string   address to serve client metrics on
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-t", "-d", "-u", "-e", "-m"})

	fs := flag.NewFlagSet("cellarkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	timeout := fs.Int("t", int(cfg.RemoteTimeout.Seconds()), "remote call timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.OwnerID, "u", cfg.OwnerID, "owner id")
	fs.BoolVar(&cfg.Encrypt, "e", cfg.Encrypt, "encrypt local data")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
	cfg.RemoteTimeout = time.Duration(*timeout) * time.Second
	return nil
}

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/cellarkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/cellarkeeper/internal/logging"
	"github.com/dmitrijs2005/cellarkeeper/internal/server"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger := logging.NewJSON(os.Stdout, slog.LevelInfo)
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

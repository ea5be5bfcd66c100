package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/paybook/internal/cli"
	"github.com/dmitrijs2005/paybook/internal/config"
	"github.com/dmitrijs2005/paybook/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}

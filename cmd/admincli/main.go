package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/cli"
	"github.com/dmitrijs2005/marketadmin/internal/client/config"
	"github.com/dmitrijs2005/marketadmin/internal/client/storage"
	"github.com/dmitrijs2005/marketadmin/internal/client/store"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	tokens, err := storage.Open(ctx, cfg.StoragePath)
	if err != nil {
		log.Fatalf("error opening token storage: %v", err)
	}
	defer tokens.Close()

	c, err := api.New(cfg.APIBaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithTokenSource(api.TokenSourceFunc(tokens.Get)),
		api.WithLogger(logger))
	if err != nil {
		log.Fatalf("%v", err)
	}

	s := store.New(c, tokens, store.WithFencing(cfg.StrictOrdering), store.WithLogger(logger))
	if err := s.Init(ctx); err != nil {
		logger.Warn(ctx, "restoring session failed", "error", err)
	}

	cli.NewApp(cfg, s, logger).Run(ctx)

}

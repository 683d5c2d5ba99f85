package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/SaiAmirthesh/Looped-sub000/internal/api"
	"github.com/SaiAmirthesh/Looped-sub000/internal/config"
	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Run(ctx, cfg); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

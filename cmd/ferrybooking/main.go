package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/ferrybooking/config"
	"github.com/Domenick1991/ferrybooking/internal/bootstrap"
	"github.com/Domenick1991/ferrybooking/internal/logger"
	"github.com/google/uuid"
)

func main() {
	cfg, err := config.LoadOrDefault(config.DefaultPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger, sync, err := logger.NewZapAppLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithSession(ctx, uuid.NewString())

	if err := bootstrap.Run(ctx, cfg, os.Stdin, os.Stdout, appLogger); err != nil {
		logger.LogError(ctx, appLogger, "console session failed", err, nil)
		log.Fatalf("console error: %v", err)
	}
}

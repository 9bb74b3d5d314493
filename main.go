package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/khedhrije/greeter/internal/bootstrap"
	"go.uber.org/zap"
)

// @title       Greeter API
// @version     1.0
// @description Greeting service with root, welcome, named and gender greetings.
// @BasePath    /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.InitBootstrap()
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer func() { _ = app.Logger.Sync() }()

	if err := app.Run(ctx); err != nil {
		app.Logger.Error("service stopped with error", zap.Error(err))
		_ = app.Logger.Sync()
		os.Exit(1)
	}
	app.Logger.Info("service stopped")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/bootstrap"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/middleware"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/routes"
)

func main() {
	appCtx, cleanup, err := bootstrap.Init("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cleanup(ctx)
	}()

	cfg := appCtx.Config
	logger := appCtx.Logger

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	app.Use(middleware.Recovery(logger))
	app.Use(middleware.RequestLogger(logger))

	limiter := middleware.NewRateLimiter(
		appCtx.Redis,
		"ratelimit",
		cfg.RateLimit.Limit,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)
	routes.Register(app, appCtx.Handler, middleware.JWTProtected(appCtx.Tokens), limiter)

	go func() {
		logger.Info("starting server", zap.Int("port", cfg.App.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.App.Port)); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

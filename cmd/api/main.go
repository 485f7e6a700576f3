package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"adgenie/internal/config"
	"adgenie/internal/http/server"
	"adgenie/internal/logging"
	"adgenie/internal/otel"
	"adgenie/internal/service"
)

// @title AdGenie Dashboard
// @version 1.0.0
// @description Creative Dashboard for Meta, TikTok, and Google Ads
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "adgenie: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(cfg.LogLevel, cfg.Location())
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := server.New(server.Deps{
		Config:          cfg,
		Logger:          log,
		Registry:        reg,
		CampaignService: service.NewCampaignService(),
	})
	if err != nil {
		return err
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Info("server_starting", zap.String("addr", cfg.Addr()), zap.String("app", cfg.AppName))
		listenErr <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("server_stopping", zap.Duration("timeout", cfg.Server.ShutdownTimeout))

	var errs []error
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("shutdown server: %w", err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown tracing: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		log.Error("server_stopped", zap.Error(err))
		return err
	}
	log.Info("server_stopped")
	return nil
}

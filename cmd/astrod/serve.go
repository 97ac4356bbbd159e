package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/randomtoy/astro-go/internal/adapters/cache/memory"
	"github.com/randomtoy/astro-go/internal/adapters/cache/redis"
	"github.com/randomtoy/astro-go/internal/adapters/catalog"
	httpadapter "github.com/randomtoy/astro-go/internal/adapters/http"
	"github.com/randomtoy/astro-go/internal/app"
	"github.com/randomtoy/astro-go/internal/config"
	"github.com/randomtoy/astro-go/internal/metrics"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func newService(cfg config.Config) (*app.AstroService, error) {
	return app.NewAstroService(catalog.NewEmbeddedStore(), app.Options{
		DefaultMode: cfg.CalcMode,
		Bodies:      cfg.Bodies(),
		Weights:     cfg.Weights(),
	})
}

func runServe(cfg config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []httpadapter.Option{httpadapter.WithErrorDetail(!cfg.Production())}

	switch cfg.CacheBackend {
	case config.CacheMemory:
		opts = append(opts, httpadapter.WithCache(memory.New(cfg.CacheTTL, cfg.CacheMaxEntries)))
	case config.CacheRedis:
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		defer client.Close()

		rc := redis.NewRedisCache(client, cfg.CacheTTL, logger)
		if err := rc.Ping(ctx); err != nil {
			return err
		}
		opts = append(opts, httpadapter.WithCache(rc))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(httpadapter.CORSMiddleware())
	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	if cfg.MetricsEnabled {
		m := metrics.NewCollector()
		e.Use(httpadapter.MetricsMiddleware(m))
		opts = append(opts, httpadapter.WithMetrics(m))
	}
	if cfg.RateLimitRPS > 0 {
		e.Use(httpadapter.RateLimitMiddleware(
			httpadapter.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		))
	}

	svc, err := newService(cfg)
	if err != nil {
		return fmt.Errorf("build service: %w", err)
	}
	handler := httpadapter.NewHandler(svc, opts...)
	handler.Register(e)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			"addr", cfg.HTTPAddr,
			"mode", cfg.CalcMode,
			"cache", cfg.CacheBackend,
		)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	return nil
}

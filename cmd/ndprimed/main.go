package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/randomtoy/ndprime/internal/adapters/cache"
	httpadapter "github.com/randomtoy/ndprime/internal/adapters/http"
	"github.com/randomtoy/ndprime/internal/app"
	"github.com/randomtoy/ndprime/internal/config"
	"github.com/randomtoy/ndprime/internal/observability"
	"github.com/randomtoy/ndprime/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg, "ndprime")

	resultCache, closeCache := newCache(cfg, logger)
	defer closeCache()

	svc := app.NewPrimeService(resultCache, metrics, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))
	e.Use(httpadapter.MetricsMiddleware(metrics))
	e.Use(httpadapter.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	handler := httpadapter.NewHandler(svc, reg, cfg.MaxDigits, cfg.SearchTimeout)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "cache", cfg.CacheBackend)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func newCache(cfg config.Config, logger *slog.Logger) (ports.ResultCache, func()) {
	switch cfg.CacheBackend {
	case config.CacheRedis:
		store := cache.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), cfg.RedisTTL)
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			// Lookups fall through to the search while Redis is down.
			logger.Warn("redis unreachable at startup", "addr", cfg.RedisAddr, "error", err)
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("close redis", "error", err)
			}
		}
	case config.CacheNone:
		return cache.Nop{}, func() {}
	default:
		return cache.NewMemoryStore(), func() {}
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/awolk/sms-directions/internal/config"
	"github.com/awolk/sms-directions/internal/directions"
	"github.com/awolk/sms-directions/internal/handlers"
	"github.com/awolk/sms-directions/internal/llm"
	"github.com/awolk/sms-directions/internal/pipeline"
	"github.com/awolk/sms-directions/internal/places"
	"github.com/awolk/sms-directions/internal/transport"
)

func main() {
	// Load .env file if it exists (for development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting sms-directions",
		zap.String("port", cfg.Port),
		zap.String("model", cfg.OpenAIModel),
	)

	// LLM provider
	provider, err := llm.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout)
	if err != nil {
		logger.Fatal("failed to create LLM provider", zap.Error(err))
	}

	// Place resolver, optionally wrapped with the redis cache
	var resolver places.Resolver = places.NewClient(cfg.GoogleMapsAPIKey, cfg.BiasRadiusMeters, cfg.GoogleTimeout)
	if cfg.RedisURL != "" {
		cached, err := places.NewCachedResolver(resolver, cfg.RedisURL, cfg.CacheTTL, logger)
		if err != nil {
			logger.Fatal("failed to connect place cache", zap.Error(err))
		}
		defer func() { _ = cached.Close() }()
		resolver = cached
		logger.Info("place cache enabled", zap.Duration("ttl", cfg.CacheTTL))
	}

	fetcher := directions.NewClient(cfg.GoogleMapsAPIKey, cfg.GoogleTimeout)

	pipe := pipeline.New(provider, resolver, fetcher, logger)

	// Optional NATS front end for backoffice queries
	if cfg.NatsURL != "" {
		natsTransport, err := transport.NewNATSTransport(cfg, pipe, logger)
		if err != nil {
			logger.Fatal("failed to initialize NATS transport", zap.Error(err))
		}
		defer func() { _ = natsTransport.Close() }()

		if err := natsTransport.Start(); err != nil {
			logger.Fatal("failed to start NATS transport", zap.Error(err))
		}
	}

	// HTTP webhook
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	smsHandler := handlers.NewSMSHandler(pipe, cfg.SMSMaxLen, logger)
	smsHandler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down sms-directions...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server forced shutdown", zap.Error(err))
	}

	logger.Info("sms-directions stopped")
}

func newLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Package main is the entry point for the conversation bot.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/snapshot-reflect/reflectbot/internal/config"
	"github.com/snapshot-reflect/reflectbot/internal/gateway"
	"github.com/snapshot-reflect/reflectbot/internal/handler"
	"github.com/snapshot-reflect/reflectbot/internal/middleware"
	natsclient "github.com/snapshot-reflect/reflectbot/internal/nats"
	"github.com/snapshot-reflect/reflectbot/internal/question"
	"github.com/snapshot-reflect/reflectbot/internal/sentiment"
	"github.com/snapshot-reflect/reflectbot/internal/service"
	"github.com/snapshot-reflect/reflectbot/internal/store"
	"github.com/snapshot-reflect/reflectbot/internal/vision"
	"github.com/snapshot-reflect/reflectbot/pkg/logger"
	"github.com/snapshot-reflect/reflectbot/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting bot")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "reflectbot", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect to MongoDB
	mongoStore, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Error("failed to connect to MongoDB", zap.Error(err))
		os.Exit(1)
	}
	defer mongoStore.Close(ctx)

	// Connect to NATS for turn auditing; skipped when unconfigured
	var (
		nc      *natsclient.Client
		auditor *natsclient.Auditor
	)
	if cfg.NATSURL != "" {
		nc, err = natsclient.Connect(ctx, natsclient.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Error("failed to connect to NATS", zap.Error(err))
			os.Exit(1)
		}
		defer nc.Close()

		auditor = natsclient.NewAuditor(nc)
		if err := auditor.EnsureStream(ctx); err != nil {
			log.Error("failed to ensure audit stream", zap.Error(err))
			os.Exit(1)
		}
	}

	// External collaborators
	analyzer, err := vision.NewAzureAnalyzer(vision.AzureConfig{
		Endpoint: cfg.VisionEndpoint,
		Key:      cfg.VisionKey,
	})
	if err != nil {
		log.Error("failed to create vision analyzer", zap.Error(err))
		os.Exit(1)
	}

	gw, err := gateway.NewTwitterGateway(gateway.TwitterConfig{
		ConsumerKey:    cfg.TwitterConsumerKey,
		ConsumerSecret: cfg.TwitterConsumerSecret,
		AccessToken:    cfg.TwitterAccessToken,
		AccessSecret:   cfg.TwitterAccessSecret,
	})
	if err != nil {
		log.Error("failed to create gateway", zap.Error(err))
		os.Exit(1)
	}

	// Core services
	selector := question.NewSelector(question.QuestionRules, nil, log)
	prompter := question.NewPrompter(question.PromptRules, nil)
	engine := service.NewEngine(analyzer, gw, sentiment.NewVaderScorer(), selector, nil, log)

	var dispatcher *service.Dispatcher
	if auditor != nil {
		dispatcher = service.NewDispatcher(mongoStore, gw, engine, prompter, auditor, log)
	} else {
		dispatcher = service.NewDispatcher(mongoStore, gw, engine, prompter, nil, log)
	}
	poller := service.NewPoller(gw, mongoStore, dispatcher, log)

	// Admin server
	healthHandler := handler.NewHealthHandler(mongoStore, nc)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         ":" + cfg.AdminPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("admin server listening", zap.String("port", cfg.AdminPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("admin server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	pollCtx, cancelPoll := context.WithCancel(ctx)
	defer cancelPoll()

	if cfg.PollRunOnce {
		if err := poller.Run(pollCtx); err != nil {
			log.Error("poll pass failed", zap.Error(err))
		}
	} else {
		go func() {
			ticker := time.NewTicker(cfg.PollInterval)
			defer ticker.Stop()

			if err := poller.Run(pollCtx); err != nil {
				log.Error("poll pass failed", zap.Error(err))
			}
			for {
				select {
				case <-pollCtx.Done():
					return
				case <-ticker.C:
					if err := poller.Run(pollCtx); err != nil {
						log.Error("poll pass failed", zap.Error(err))
					}
				}
			}
		}()

		// Wait for shutdown signal
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
	}

	log.Info("shutting down")
	cancelPoll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("stopped")
}

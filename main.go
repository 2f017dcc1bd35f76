package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"benefit-engine/internal/config"
	"benefit-engine/internal/engine"
	"benefit-engine/internal/forms"
	"benefit-engine/internal/handler"
	"benefit-engine/internal/observability"
	"benefit-engine/internal/pdffill"
	"benefit-engine/internal/questions"
	"benefit-engine/internal/session"
	"benefit-engine/internal/templates"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	source, closeSource, err := templateSource(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialise template source", zap.Error(err))
	}
	defer closeSource()

	registry := templates.NewRegistry(source, logger.Named("templates"))
	if err := registry.Prefetch(ctx, forms.Templates()); err != nil {
		// templates are loaded again on demand
		logger.Warn("template prefetch incomplete", zap.Error(err))
	}

	generator := engine.New(registry, pdffill.New(), engine.Options{
		ArchivePrefix: cfg.ArchivePrefix,
		FallbackName:  cfg.ArchiveFallbackName,
		Logger:        logger.Named("engine"),
		Metrics:       metrics,
	})

	sessions := session.NewStore(questions.Default(), cfg.SessionTTL, session.WithMetrics(metrics))
	go sessions.Run(ctx, cfg.SessionSweepInterval, logger.Named("sessions"))

	h := handler.New(handler.Deps{
		Sessions:          sessions,
		Generator:         generator,
		Logger:            logger.Named("http"),
		Metrics:           metrics,
		MetricsHandler:    fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		GenerationTimeout: cfg.GenerationTimeout,
	})

	server := &fasthttp.Server{
		Handler:            h.Handle,
		Name:               "benefit-engine",
		ReadTimeout:        15 * time.Second,
		WriteTimeout:       cfg.GenerationTimeout + 15*time.Second,
		MaxRequestBodySize: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("benefit engine starting", zap.String("addr", cfg.Addr()))
		errCh <- server.ListenAndServe(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("benefit engine stopped")
}

// templateSource picks the bucket, the HTTP endpoint or the local directory,
// in that order.
func templateSource(ctx context.Context, cfg config.Config) (templates.Source, func(), error) {
	switch {
	case cfg.FormsBucket != "":
		client, err := gcs.NewClient(ctx)
		if err != nil {
			return nil, nil, err
		}
		src, err := templates.NewBucketSource(client, cfg.FormsBucket, cfg.FormsPrefix)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return src, func() { _ = client.Close() }, nil
	case cfg.FormsBaseURL != "":
		return templates.NewHTTPSource(cfg.FormsBaseURL, 0), func() {}, nil
	default:
		return templates.DirSource{Dir: cfg.FormsDir}, func() {}, nil
	}
}

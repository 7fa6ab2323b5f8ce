package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/directory-tools/linkedin-ingest/internal/airtable"
	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/document"
	"github.com/directory-tools/linkedin-ingest/internal/export"
	"github.com/directory-tools/linkedin-ingest/internal/llm/openai"
	"github.com/directory-tools/linkedin-ingest/internal/ocr"
	"github.com/directory-tools/linkedin-ingest/internal/pipeline"
	"github.com/directory-tools/linkedin-ingest/internal/repository"
	"github.com/directory-tools/linkedin-ingest/internal/section"
	"github.com/directory-tools/linkedin-ingest/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Audit store is optional: without DB_URL nothing is recorded locally.
	var recorder pipeline.JobRecorder = pipeline.NopRecorder{}
	health := func(context.Context) error { return nil }
	if cfg.Database.DSN != "" {
		entc, pool, err := repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repository.Close(entc, pool, logger)
		if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		recorder = repository.NewImportJobRepository(entc, logger)
		health = func(ctx context.Context) error {
			return repository.HealthCheck(ctx, pool, 2*time.Second, logger)
		}
	} else {
		logger.Warn("DB_URL not set; import jobs will not be recorded")
	}

	var recognizer ocr.Recognizer
	if cfg.Vision.CredentialsJSON != "" {
		vr, err := ocr.NewVisionRecognizer(ctx, &cfg.Vision, logger)
		if err != nil {
			logger.Error("failed to create vision client", "error", err)
			os.Exit(1)
		}
		defer func() { _ = vr.Close() }()
		recognizer = vr
	} else {
		logger.Warn("vision credentials not set; scanned PDFs will be rejected")
	}

	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	store := airtable.NewClient(airtable.Config{
		BaseID:          cfg.Airtable.BaseID,
		Token:           cfg.Airtable.Token,
		Table:           cfg.Airtable.ExperienceTable,
		EmployeeField:   cfg.Airtable.EmployeeField,
		BatchSize:       cfg.Airtable.BatchSize,
		ReplaceExisting: cfg.Airtable.ReplaceExisting,
		Timeout:         cfg.Airtable.Timeout,
	}, logger)

	policy := section.DefaultPolicy()
	if cfg.Section.SectionCap > 0 {
		policy.SectionCap = cfg.Section.SectionCap
	}
	if cfg.Section.FallbackCap > 0 {
		policy.FallbackCap = cfg.Section.FallbackCap
	}

	textStage := pipeline.NewTextStage(document.NewLoader(logger), recognizer, logger)
	processor := pipeline.NewProcessor(logger, textStage, policy, extractor, store, recorder)
	exporter := export.NewService(store, logger)

	srv := server.New(server.Options{
		Logger:     logger,
		Processor:  processor,
		Recognizer: recognizer,
		Exporter:   exporter,
		Health:     health,
		MaxUpload:  cfg.Server.MaxUploadBytes,
	})

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}

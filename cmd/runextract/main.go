// runextract runs the extraction pipeline over one local PDF and prints
// the result as JSON. Useful for tuning the section policy and prompts
// without standing up the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/directory-tools/linkedin-ingest/internal/airtable"
	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/document"
	"github.com/directory-tools/linkedin-ingest/internal/llm/openai"
	"github.com/directory-tools/linkedin-ingest/internal/ocr"
	"github.com/directory-tools/linkedin-ingest/internal/pipeline"
	"github.com/directory-tools/linkedin-ingest/internal/section"
)

func main() {
	_ = godotenv.Load()

	file := flag.String("file", "", "path to the profile PDF (required)")
	employee := flag.String("employee", "", "employee record id; when set, results are saved")
	showText := flag.Bool("text", false, "print the extracted section text")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: runextract -file profile.pdf [-employee recXXX] [-text]")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		fmt.Fprintln(os.Stderr, "OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	pdfData, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", *file, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var recognizer ocr.Recognizer
	if cfg.Vision.CredentialsJSON != "" {
		vr, err := ocr.NewVisionRecognizer(ctx, &cfg.Vision, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vision client: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = vr.Close() }()
		recognizer = vr
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

	textStage := pipeline.NewTextStage(document.NewLoader(logger), recognizer, logger)
	processor := pipeline.NewProcessor(logger, textStage, section.DefaultPolicy(), extractor, store, nil)

	res, err := processor.Process(ctx, pdfData, *employee, *file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extraction failed: %v\n", err)
		os.Exit(1)
	}

	out := map[string]any{
		"source":          res.Source,
		"job_experiences": res.Experiences,
		"save":            res.Save,
	}
	if *showText {
		out["section"] = res.Section
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

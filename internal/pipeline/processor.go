// Package pipeline chains the ingest stages: document text, section
// extraction, LLM parsing, and the tabular-store upsert. Stages run
// sequentially; the first hard failure aborts the run.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/directory-tools/linkedin-ingest/internal/airtable"
	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/llm"
	"github.com/directory-tools/linkedin-ingest/internal/section"
)

// TextExtractor produces document text with its source and page count.
// *TextStage satisfies it.
type TextExtractor interface {
	Run(ctx context.Context, data []byte) (*TextResult, error)
}

// ExperienceStore is the slice of the tabular-store client the pipeline
// uses. *airtable.Client satisfies it.
type ExperienceStore interface {
	SaveExperiences(ctx context.Context, employeeRecordID string, experiences []map[string]any) airtable.UpsertResult
}

// Result is what one ingest run produced.
type Result struct {
	Text        string
	Source      string // text-layer or ocr
	Section     string
	Experiences []llm.JobExperience
	Save        airtable.UpsertResult
}

// Processor coordinates text extraction, sectioning, LLM parse and upsert.
type Processor struct {
	Logger    *slog.Logger
	Text      TextExtractor
	Policy    section.Policy
	Extractor llm.ExperienceExtractor
	Store     ExperienceStore
	Recorder  JobRecorder
}

func NewProcessor(logger *slog.Logger, text TextExtractor, policy section.Policy, extractor llm.ExperienceExtractor, store ExperienceStore, recorder JobRecorder) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Processor{
		Logger:    logger,
		Text:      text,
		Policy:    policy,
		Extractor: extractor,
		Store:     store,
		Recorder:  recorder,
	}
}

// Process runs the full pipeline over one uploaded profile. An empty
// employeeRecordID skips the upsert stage but still returns the
// extraction result.
func (p *Processor) Process(ctx context.Context, data []byte, employeeRecordID, sourceName string) (*Result, error) {
	reqID := common.RequestIDFromContext(ctx)
	start := time.Now()

	jobID, recErr := p.Recorder.JobStarted(ctx, employeeRecordID, sourceName, len(data))
	if recErr != nil {
		// audit store trouble must not block ingestion
		p.Logger.Warn("processor.record.start_failed", "req_id", reqID, "error", recErr)
	}

	text, err := p.Text.Run(ctx, data)
	if err != nil {
		p.fail(ctx, jobID, reqID, "text", err)
		return nil, err
	}
	if len(text.Text) < minTextLayerChars {
		err := common.NewAppError("INVALID_INPUT",
			fmt.Sprintf("could not extract meaningful text: got %d chars", len(text.Text)),
			common.ErrInvalidInput)
		p.fail(ctx, jobID, reqID, "text", err)
		return nil, err
	}
	p.record(reqID, p.Recorder.JobTextExtracted(ctx, jobID, text.Source, len(text.Text), text.Pages))

	sectionText := p.Policy.Extract(text.Text)
	p.Logger.Info("processor.section.ok",
		"req_id", reqID,
		"source", text.Source,
		"doc_chars", len(text.Text),
		"section_chars", len(sectionText),
	)

	experiences, _, err := p.Extractor.ExtractExperiences(ctx, llm.ExtractRequest{
		SectionText: sectionText,
		SourceHint:  text.Source,
	})
	if err != nil {
		p.fail(ctx, jobID, reqID, "extract", err)
		return nil, err
	}
	p.record(reqID, p.Recorder.JobParsed(ctx, jobID, len(experiences), marshalExperiences(experiences)))

	fieldsList := make([]map[string]any, 0, len(experiences))
	for _, e := range experiences {
		if f := e.Fields(); f != nil {
			fieldsList = append(fieldsList, f)
		}
	}
	save := p.Store.SaveExperiences(ctx, employeeRecordID, fieldsList)
	p.record(reqID, p.Recorder.JobSaved(ctx, jobID, save.Success, save.Skipped, save.Records))

	p.Logger.Info("processor.ok",
		"req_id", reqID,
		"source", text.Source,
		"entries", len(experiences),
		"saved", save.Success,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Result{
		Text:        text.Text,
		Source:      text.Source,
		Section:     sectionText,
		Experiences: experiences,
		Save:        save,
	}, nil
}

func (p *Processor) record(reqID string, err error) {
	if err != nil {
		p.Logger.Warn("processor.record.failed", "req_id", reqID, "error", err)
	}
}

func (p *Processor) fail(ctx context.Context, jobID uuid.UUID, reqID, stage string, cause error) {
	p.Logger.Error("processor."+stage+".failed", "req_id", reqID, "error", cause)
	if err := p.Recorder.JobFailed(ctx, jobID, cause.Error()); err != nil {
		p.Logger.Warn("processor.record.fail_failed", "req_id", reqID, "error", err)
	}
}

func marshalExperiences(experiences []llm.JobExperience) json.RawMessage {
	raw, err := json.Marshal(experiences)
	if err != nil {
		return nil
	}
	return raw
}

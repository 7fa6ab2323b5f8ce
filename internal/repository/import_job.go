package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/directory-tools/linkedin-ingest/gen/ent"
)

// Import job states. A job moves RUNNING -> TEXT_OK -> PARSED and ends
// in SAVED, SKIPPED_NO_LINK, or FAILED.
const (
	StatusRunning       = "RUNNING"
	StatusTextOK        = "TEXT_OK"
	StatusParsed        = "PARSED"
	StatusSaved         = "SAVED"
	StatusSkippedNoLink = "SKIPPED_NO_LINK"
	StatusFailed        = "FAILED"
)

// ImportJobRepository records ingest runs. It implements the pipeline's
// JobRecorder.
type ImportJobRepository struct {
	ent *ent.Client
	log *slog.Logger
}

func NewImportJobRepository(entc *ent.Client, log *slog.Logger) *ImportJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &ImportJobRepository{ent: entc, log: log}
}

// Count returns the total number of recorded import jobs.
func (r *ImportJobRepository) Count(ctx context.Context) (int, error) {
	return r.ent.ImportJob.Query().Count(ctx)
}

func (r *ImportJobRepository) JobStarted(ctx context.Context, employeeRecordID, sourceName string, sizeBytes int) (uuid.UUID, error) {
	job, err := r.ent.ImportJob.
		Create().
		SetEmployeeRecordID(employeeRecordID).
		SetSourceName(sourceName).
		SetSizeBytes(sizeBytes).
		SetStatus(StatusRunning).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job start failed", "employee", employeeRecordID, "err", err)
		return uuid.Nil, err
	}
	r.log.Info("import_job started", "job_id", job.ID, "employee", employeeRecordID, "source", sourceName)
	return job.ID, nil
}

func (r *ImportJobRepository) JobTextExtracted(ctx context.Context, jobID uuid.UUID, source string, chars, pages int) error {
	if jobID == uuid.Nil {
		return nil
	}
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetStatus(StatusTextOK).
		SetTextSource(source).
		SetTextChars(chars).
		SetPageCount(pages).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job text-mark failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *ImportJobRepository) JobParsed(ctx context.Context, jobID uuid.UUID, entries int, extracted json.RawMessage) error {
	if jobID == uuid.Nil {
		return nil
	}
	q := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetStatus(StatusParsed).
		SetEntryCount(entries)
	if len(extracted) > 0 {
		q = q.SetExtractedJSON(extracted)
	}
	if _, err := q.Save(ctx); err != nil {
		r.log.Error("import_job parse-mark failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *ImportJobRepository) JobSaved(ctx context.Context, jobID uuid.UUID, saved, skipped bool, records int) error {
	if jobID == uuid.Nil {
		return nil
	}
	status := StatusSaved
	switch {
	case skipped:
		status = StatusSkippedNoLink
	case !saved:
		status = StatusFailed
	}
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(status).
		SetSaved(saved).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job finish failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *ImportJobRepository) JobFailed(ctx context.Context, jobID uuid.UUID, reason string) error {
	if jobID == uuid.Nil {
		return nil
	}
	_, err := r.ent.ImportJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(StatusFailed).
		SetErrorMessage(reason).
		Save(ctx)
	if err != nil {
		r.log.Error("import_job fail-mark failed", "job_id", jobID, "err", err)
	}
	return err
}

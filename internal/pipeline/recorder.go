package pipeline

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// JobRecorder persists an audit row per ingest run and advances it
// through the run's checkpoints. The storage layer decides what a row
// looks like; the pipeline only reports what happened.
type JobRecorder interface {
	JobStarted(ctx context.Context, employeeRecordID, sourceName string, sizeBytes int) (uuid.UUID, error)
	JobTextExtracted(ctx context.Context, jobID uuid.UUID, source string, chars, pages int) error
	JobParsed(ctx context.Context, jobID uuid.UUID, entries int, extracted json.RawMessage) error
	JobSaved(ctx context.Context, jobID uuid.UUID, saved, skipped bool, records int) error
	JobFailed(ctx context.Context, jobID uuid.UUID, reason string) error
}

// NopRecorder is the recorder used when no database is configured.
type NopRecorder struct{}

func (NopRecorder) JobStarted(context.Context, string, string, int) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (NopRecorder) JobTextExtracted(context.Context, uuid.UUID, string, int, int) error {
	return nil
}
func (NopRecorder) JobParsed(context.Context, uuid.UUID, int, json.RawMessage) error {
	return nil
}
func (NopRecorder) JobSaved(context.Context, uuid.UUID, bool, bool, int) error { return nil }
func (NopRecorder) JobFailed(context.Context, uuid.UUID, string) error         { return nil }

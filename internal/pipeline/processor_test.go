package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directory-tools/linkedin-ingest/internal/airtable"
	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/llm"
	"github.com/directory-tools/linkedin-ingest/internal/section"
)

const profileText = "Jane Doe\nSoftware Engineer\n\nExperience\nAcme Corp\nEngineer\nJan 2019 - Present\nEducation\nState University"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeText struct {
	text   string
	source string
	pages  int
	err    error
}

func (f *fakeText) Run(context.Context, []byte) (*TextResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &TextResult{Text: f.text, Source: f.source, Pages: f.pages}, nil
}

type fakeExtractor struct {
	gotSection string
	gotSource  string
	list       []llm.JobExperience
	err        error
}

func (f *fakeExtractor) ExtractExperiences(_ context.Context, req llm.ExtractRequest) ([]llm.JobExperience, []byte, error) {
	f.gotSection = req.SectionText
	f.gotSource = req.SourceHint
	return f.list, []byte("[]"), f.err
}

type fakeStore struct {
	gotEmployee string
	gotFields   []map[string]any
	result      airtable.UpsertResult
}

func (f *fakeStore) SaveExperiences(_ context.Context, employeeRecordID string, experiences []map[string]any) airtable.UpsertResult {
	f.gotEmployee = employeeRecordID
	f.gotFields = experiences
	return f.result
}

type fakeRecorder struct {
	started   int
	textOK    int
	parsed    int
	saved     int
	failed    int
	reason    string
	savedFlag bool
	skipped   bool
	extracted json.RawMessage
	startErr  error
}

func (f *fakeRecorder) JobStarted(context.Context, string, string, int) (uuid.UUID, error) {
	f.started++
	return uuid.New(), f.startErr
}
func (f *fakeRecorder) JobTextExtracted(context.Context, uuid.UUID, string, int, int) error {
	f.textOK++
	return nil
}
func (f *fakeRecorder) JobParsed(_ context.Context, _ uuid.UUID, _ int, extracted json.RawMessage) error {
	f.parsed++
	f.extracted = extracted
	return nil
}
func (f *fakeRecorder) JobSaved(_ context.Context, _ uuid.UUID, saved, skipped bool, _ int) error {
	f.saved++
	f.savedFlag = saved
	f.skipped = skipped
	return nil
}
func (f *fakeRecorder) JobFailed(_ context.Context, _ uuid.UUID, reason string) error {
	f.failed++
	f.reason = reason
	return nil
}

func newProcessor(text TextExtractor, ex *fakeExtractor, store *fakeStore, rec JobRecorder) *Processor {
	return NewProcessor(testLogger(), text, section.DefaultPolicy(), ex, store, rec)
}

func TestProcessHappyPath(t *testing.T) {
	ex := &fakeExtractor{list: []llm.JobExperience{
		{Company: "Acme Corp", Role: "Engineer", StartDate: "Jan 2019", EndDate: "Present"},
	}}
	store := &fakeStore{result: airtable.UpsertResult{Success: true, Records: 1, Message: "saved 1 experience records"}}
	rec := &fakeRecorder{}
	p := newProcessor(&fakeText{text: profileText, source: SourceTextLayer}, ex, store, rec)

	res, err := p.Process(context.Background(), []byte("%PDF"), "recEMP1", "profile.pdf")
	require.NoError(t, err)

	assert.Equal(t, SourceTextLayer, res.Source)
	require.Len(t, res.Experiences, 1)
	assert.True(t, res.Save.Success)

	// the extractor sees the section, not the whole document
	assert.True(t, strings.HasPrefix(ex.gotSection, "Experience"))
	assert.NotContains(t, ex.gotSection, "State University")
	assert.Equal(t, SourceTextLayer, ex.gotSource)

	// upsert receives column-keyed fields
	assert.Equal(t, "recEMP1", store.gotEmployee)
	require.Len(t, store.gotFields, 1)
	assert.Equal(t, "Acme Corp", store.gotFields[0]["Company"])
	assert.Equal(t, "Engineer", store.gotFields[0]["Role Held at the Company"])

	// the audit trail sees every checkpoint
	assert.Equal(t, 1, rec.started)
	assert.Equal(t, 1, rec.textOK)
	assert.Equal(t, 1, rec.parsed)
	assert.Equal(t, 1, rec.saved)
	assert.True(t, rec.savedFlag)
	assert.Contains(t, string(rec.extracted), "Acme Corp")
	assert.Zero(t, rec.failed)
}

func TestProcessRejectsThinText(t *testing.T) {
	rec := &fakeRecorder{}
	p := newProcessor(&fakeText{text: "short", source: SourceTextLayer}, &fakeExtractor{}, &fakeStore{}, rec)

	_, err := p.Process(context.Background(), []byte("%PDF"), "recEMP1", "profile.pdf")
	require.Error(t, err)

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Equal(t, 1, rec.failed)
	assert.Contains(t, rec.reason, "meaningful text")
}

func TestProcessTextStageFailure(t *testing.T) {
	cause := common.DocumentParseError(errors.New("bad xref"))
	rec := &fakeRecorder{}
	p := newProcessor(&fakeText{err: cause}, &fakeExtractor{}, &fakeStore{}, rec)

	_, err := p.Process(context.Background(), []byte("junk"), "recEMP1", "profile.pdf")
	require.Error(t, err)

	assert.ErrorIs(t, err, common.ErrDocumentParse)
	assert.Equal(t, 1, rec.failed)
	assert.Zero(t, rec.textOK)
	assert.Zero(t, rec.saved)
}

func TestProcessExtractorFailure(t *testing.T) {
	ex := &fakeExtractor{err: common.ServiceError("openai", 500, "boom")}
	store := &fakeStore{}
	rec := &fakeRecorder{}
	p := newProcessor(&fakeText{text: profileText, source: SourceOCR}, ex, store, rec)

	_, err := p.Process(context.Background(), []byte("%PDF"), "recEMP1", "profile.pdf")
	require.Error(t, err)

	assert.ErrorIs(t, err, common.ErrExtractionService)
	assert.Nil(t, store.gotFields) // upsert never reached
	assert.Equal(t, 1, rec.failed)
}

func TestProcessWithoutEmployeeIDStillExtracts(t *testing.T) {
	ex := &fakeExtractor{list: []llm.JobExperience{{Company: "Acme", Role: "Engineer"}}}
	store := &fakeStore{result: airtable.UpsertResult{Skipped: true, Message: "skipped: no employee record id provided"}}
	p := newProcessor(&fakeText{text: profileText, source: SourceTextLayer}, ex, store, &fakeRecorder{})

	res, err := p.Process(context.Background(), []byte("%PDF"), "", "profile.pdf")
	require.NoError(t, err)

	assert.Len(t, res.Experiences, 1)
	assert.True(t, res.Save.Skipped)
	assert.Equal(t, "", store.gotEmployee)
}

func TestProcessRecorderFailureDoesNotBlock(t *testing.T) {
	ex := &fakeExtractor{list: []llm.JobExperience{{Company: "Acme", Role: "Engineer"}}}
	rec := &fakeRecorder{startErr: errors.New("db down")}
	p := newProcessor(&fakeText{text: profileText, source: SourceTextLayer}, ex, &fakeStore{result: airtable.UpsertResult{Success: true}}, rec)

	res, err := p.Process(context.Background(), []byte("%PDF"), "recEMP1", "profile.pdf")
	require.NoError(t, err)
	assert.Len(t, res.Experiences, 1)
}

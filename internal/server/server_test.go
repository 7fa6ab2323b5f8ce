package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directory-tools/linkedin-ingest/internal/airtable"
	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/export"
	"github.com/directory-tools/linkedin-ingest/internal/llm"
	"github.com/directory-tools/linkedin-ingest/internal/ocr"
	"github.com/directory-tools/linkedin-ingest/internal/pipeline"
	"github.com/directory-tools/linkedin-ingest/internal/section"
)

const profileText = "Jane Doe\nSoftware Engineer\n\nExperience\nAcme Corp\nEngineer\nJan 2019 - Present\nEducation\nState University"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubText struct {
	text   string
	source string
	err    error
}

func (s *stubText) Run(context.Context, []byte) (*pipeline.TextResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &pipeline.TextResult{Text: s.text, Source: s.source, Pages: 1}, nil
}

type stubExtractor struct {
	list []llm.JobExperience
	err  error
}

func (s *stubExtractor) ExtractExperiences(context.Context, llm.ExtractRequest) ([]llm.JobExperience, []byte, error) {
	return s.list, []byte("[]"), s.err
}

type stubStore struct {
	gotEmployee string
	result      airtable.UpsertResult
}

func (s *stubStore) SaveExperiences(_ context.Context, employeeRecordID string, _ []map[string]any) airtable.UpsertResult {
	s.gotEmployee = employeeRecordID
	return s.result
}

type stubRecognizer struct {
	result *ocr.Result
	err    error
}

func (s *stubRecognizer) RecognizePDF(context.Context, []byte) (*ocr.Result, error) {
	return s.result, s.err
}

func (s *stubRecognizer) RecognizeImage(context.Context, []byte) (*ocr.Result, error) {
	return s.result, s.err
}

type stubLister struct {
	records []airtable.Record
	err     error
}

func (s *stubLister) ListByEmployee(context.Context, string) ([]airtable.Record, error) {
	return s.records, s.err
}

func newServer(text *stubText, ex *stubExtractor, store *stubStore, rec ocr.Recognizer) *Server {
	proc := pipeline.NewProcessor(testLogger(), text, section.DefaultPolicy(), ex, store, nil)
	return New(Options{
		Logger:     testLogger(),
		Processor:  proc,
		Recognizer: rec,
		Exporter:   export.NewService(&stubLister{}, testLogger()),
	})
}

func multipartUpload(t *testing.T, fileField, employeeRecordID string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, "profile.pdf")
		require.NoError(t, err)
		_, err = fw.Write([]byte("%PDF-1.4 fake payload"))
		require.NoError(t, err)
	}
	if employeeRecordID != "" {
		require.NoError(t, mw.WriteField("employeeRecordId", employeeRecordID))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestProcessProfileHappyPath(t *testing.T) {
	store := &stubStore{result: airtable.UpsertResult{Success: true, Records: 1, Message: "saved 1 experience records"}}
	srv := newServer(
		&stubText{text: profileText, source: pipeline.SourceTextLayer},
		&stubExtractor{list: []llm.JobExperience{{Company: "Acme Corp", Role: "Engineer", EndDate: "Present"}}},
		store, nil)

	body, contentType := multipartUpload(t, "linkedinPdf", "recEMP1")
	req := httptest.NewRequest(http.MethodPost, "/api/process-profile", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	srv.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		JobExperiences []llm.JobExperience `json:"job_experiences"`
		Save           struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		} `json:"airtableSaveStatus"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	require.Len(t, resp.JobExperiences, 1)
	assert.Equal(t, "Acme Corp", resp.JobExperiences[0].Company)
	assert.True(t, resp.Save.Success)
	assert.Equal(t, "recEMP1", store.gotEmployee)
}

func TestProcessProfileMissingFile(t *testing.T) {
	srv := newServer(&stubText{text: profileText, source: pipeline.SourceTextLayer}, &stubExtractor{}, &stubStore{}, nil)

	body, contentType := multipartUpload(t, "", "recEMP1")
	req := httptest.NewRequest(http.MethodPost, "/api/process-profile", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "no PDF file uploaded")
}

func TestProcessProfileThinTextIsBadRequest(t *testing.T) {
	srv := newServer(&stubText{text: "too short", source: pipeline.SourceTextLayer}, &stubExtractor{}, &stubStore{}, nil)

	body, contentType := multipartUpload(t, "linkedinPdf", "recEMP1")
	req := httptest.NewRequest(http.MethodPost, "/api/process-profile", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "meaningful text")
}

func TestProcessProfileWithoutEmployeeIDIsSkippedNot4xx(t *testing.T) {
	store := &stubStore{result: airtable.UpsertResult{Skipped: true, Message: "skipped: no employee record id provided"}}
	srv := newServer(
		&stubText{text: profileText, source: pipeline.SourceTextLayer},
		&stubExtractor{list: []llm.JobExperience{{Company: "Acme", Role: "Engineer"}}},
		store, nil)

	body, contentType := multipartUpload(t, "linkedinPdf", "")
	req := httptest.NewRequest(http.MethodPost, "/api/process-profile", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	srv.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "skipped")
	assert.Equal(t, "", store.gotEmployee)
}

func TestProcessProfileUnparseableDocumentIsServerError(t *testing.T) {
	srv := newServer(
		&stubText{err: common.DocumentParseError(errors.New("bad xref"))},
		&stubExtractor{}, &stubStore{}, nil)

	body, contentType := multipartUpload(t, "linkedinPdf", "recEMP1")
	req := httptest.NewRequest(http.MethodPost, "/api/process-profile", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "document processing failed")
}

func TestProcessProfileUpstreamFailureIsBadGateway(t *testing.T) {
	srv := newServer(
		&stubText{text: profileText, source: pipeline.SourceTextLayer},
		&stubExtractor{err: common.ServiceError("openai", 500, "boom")},
		&stubStore{}, nil)

	body, contentType := multipartUpload(t, "linkedinPdf", "recEMP1")
	req := httptest.NewRequest(http.MethodPost, "/api/process-profile", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "upstream service failed")
}

func TestOCRPDFHappyPath(t *testing.T) {
	rec := &stubRecognizer{result: &ocr.Result{Text: "recognized text", PageCount: 1}}
	srv := newServer(&stubText{}, &stubExtractor{}, &stubStore{}, rec)

	payload, _ := json.Marshal(map[string]string{
		"base64PdfData": base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/ocr-pdf", bytes.NewReader(payload))
	rr := httptest.NewRecorder()

	srv.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "recognized text", resp["extractedText"])
}

func TestOCRPDFValidation(t *testing.T) {
	rec := &stubRecognizer{result: &ocr.Result{Text: "x"}}
	srv := newServer(&stubText{}, &stubExtractor{}, &stubStore{}, rec)

	for name, payload := range map[string]string{
		"empty body field": `{}`,
		"bad base64":       `{"base64PdfData": "not-base64!!!"}`,
		"not json":         `<xml/>`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/ocr-pdf", bytes.NewReader([]byte(payload)))
			rr := httptest.NewRecorder()
			srv.Router().ServeHTTP(rr, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestOCRPDFNotConfigured(t *testing.T) {
	srv := newServer(&stubText{}, &stubExtractor{}, &stubStore{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/ocr-pdf", bytes.NewReader([]byte(`{"base64PdfData":"YQ=="}`)))
	rr := httptest.NewRecorder()

	srv.Router().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestHealthz(t *testing.T) {
	srv := newServer(&stubText{}, &stubExtractor{}, &stubStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestHealthzUnhealthy(t *testing.T) {
	srv := New(Options{
		Logger: testLogger(),
		Health: func(context.Context) error { return errors.New("db unreachable") },
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "db unreachable")
}

func TestExportXLSXHeaders(t *testing.T) {
	srv := newServer(&stubText{}, &stubExtractor{}, &stubStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/recEMP1/experience.xlsx", nil)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "recEMP1")
	assert.NotEmpty(t, rr.Body.Bytes())
}

package server

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/llm"
)

// processProfileResponse mirrors the directory frontend's contract; the
// mixed key casing is part of it.
type processProfileResponse struct {
	JobExperiences     []llm.JobExperience `json:"job_experiences"`
	ExtractedText      string              `json:"extracted_text,omitempty"`
	AirtableSaveStatus any                 `json:"airtableSaveStatus"`
}

// handleProcessProfile ingests one uploaded profile PDF end to end.
func (s *Server) handleProcessProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}

	file, header, err := r.FormFile("linkedinPdf")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "no PDF file uploaded", "expected multipart field 'linkedinPdf'")
		return
	}
	defer func() { _ = file.Close() }()

	employeeRecordID := r.FormValue("employeeRecordId")

	// Spool the upload to a temp file; it is removed on every exit path.
	tmp, err := os.CreateTemp("", "linkedin-upload-*.pdf")
	if err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, "internal error", "could not buffer upload")
		return
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		writeErrorMessage(w, http.StatusBadRequest, "invalid request", "could not read upload")
		return
	}
	if err := tmp.Close(); err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, "internal error", "could not buffer upload")
		return
	}
	pdfData, err := os.ReadFile(tmpPath)
	if err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, "internal error", "could not read buffered upload")
		return
	}

	res, err := s.processor.Process(r.Context(), pdfData, employeeRecordID, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := processProfileResponse{
		JobExperiences:     res.Experiences,
		AirtableSaveStatus: res.Save,
	}
	if resp.JobExperiences == nil {
		resp.JobExperiences = []llm.JobExperience{}
	}
	if r.URL.Query().Get("includeText") == "1" {
		resp.ExtractedText = res.Text
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleOCRPDF recognizes a base64-encoded PDF without running the rest
// of the pipeline.
func (s *Server) handleOCRPDF(w http.ResponseWriter, r *http.Request) {
	if s.recognizer == nil {
		writeErrorMessage(w, http.StatusServiceUnavailable, "ocr not configured", "vision credentials are not set")
		return
	}

	var req struct {
		Base64PdfData string `json:"base64PdfData"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, s.maxUpload)).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Base64PdfData == "" {
		writeErrorMessage(w, http.StatusBadRequest, "no PDF data provided", "expected field 'base64PdfData'")
		return
	}

	pdfData, err := base64.StdEncoding.DecodeString(req.Base64PdfData)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid base64 data", err.Error())
		return
	}

	res, err := s.recognizer.RecognizePDF(r.Context(), pdfData)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"extractedText": res.Text})
}

// handleExportXLSX streams the employee's saved experience rows as a
// workbook.
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		writeErrorMessage(w, http.StatusServiceUnavailable, "export not configured", "")
		return
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		writeErrorMessage(w, http.StatusBadRequest, "missing employee id", "")
		return
	}

	out, err := s.exporter.ExportExperienceXLSX(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="experience-`+id+`.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		s.logger.Warn("export.write_failed",
			"req_id", common.RequestIDFromContext(r.Context()), "error", err)
	}
}

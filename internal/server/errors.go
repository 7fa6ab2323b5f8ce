package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/directory-tools/linkedin-ingest/internal/common"
)

// errorBody is the JSON error envelope every endpoint uses.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorBody{Error: msg, Details: details})
}

// writeError maps the failure taxonomy to HTTP statuses. Vendor trouble is
// a bad gateway: the caller's request was fine, the upstream was not. A
// document the decoder cannot read is a server-side 500, not a 400: the
// upload itself was well-formed.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		writeErrorMessage(w, http.StatusBadRequest, "invalid request", err.Error())
	case errors.Is(err, common.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, common.ErrExtractionService), errors.Is(err, common.ErrUpsert):
		writeErrorMessage(w, http.StatusBadGateway, "upstream service failed", err.Error())
	case errors.Is(err, common.ErrDocumentParse):
		writeErrorMessage(w, http.StatusInternalServerError, "document processing failed", err.Error())
	case errors.Is(err, common.ErrConfiguration):
		writeErrorMessage(w, http.StatusInternalServerError, "service misconfigured", err.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, "internal error", err.Error())
	}
}

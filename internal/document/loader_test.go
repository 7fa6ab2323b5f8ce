package document

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directory-tools/linkedin-ingest/internal/common"
)

func testLoader() *Loader {
	return NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoadPDFRejectsGarbage(t *testing.T) {
	_, err := testLoader().LoadPDF([]byte("this is not a pdf at all"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDocumentParse)
}

func TestLoadPDFRejectsEmptyInput(t *testing.T) {
	_, err := testLoader().LoadPDF(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDocumentParse)
}

func TestLoadPDFRejectsTruncatedHeader(t *testing.T) {
	// a valid header with nothing behind it
	_, err := testLoader().LoadPDF([]byte("%PDF-1.4\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDocumentParse)
}

package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/document"
	"github.com/directory-tools/linkedin-ingest/internal/ocr"
)

type fakeRecognizer struct {
	result     *ocr.Result
	err        error
	pdfCalls   int
	imageCalls int
}

func (f *fakeRecognizer) RecognizePDF(context.Context, []byte) (*ocr.Result, error) {
	f.pdfCalls++
	return f.result, f.err
}

func (f *fakeRecognizer) RecognizeImage(context.Context, []byte) (*ocr.Result, error) {
	f.imageCalls++
	return f.result, f.err
}

func TestTextStageFallsBackToOCROnUnparseablePDF(t *testing.T) {
	rec := &fakeRecognizer{result: &ocr.Result{
		Text:      strings.Repeat("scanned profile text ", 10),
		PageCount: 2,
	}}
	stage := NewTextStage(document.NewLoader(testLogger()), rec, testLogger())

	res, err := stage.Run(context.Background(), []byte("%PDF-1.4 not really a pdf"))
	require.NoError(t, err)

	assert.Equal(t, SourceOCR, res.Source)
	assert.Contains(t, res.Text, "scanned profile text")
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, 1, rec.pdfCalls)
	assert.Zero(t, rec.imageCalls)
}

func TestTextStageRoutesImagesToImageOCR(t *testing.T) {
	rec := &fakeRecognizer{result: &ocr.Result{
		Text:      strings.Repeat("profile screenshot text ", 10),
		PageCount: 1,
	}}
	stage := NewTextStage(document.NewLoader(testLogger()), rec, testLogger())

	res, err := stage.Run(context.Background(), []byte{0x89, 'P', 'N', 'G', '\r', '\n'})
	require.NoError(t, err)

	assert.Equal(t, SourceOCR, res.Source)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, 1, rec.imageCalls)
	assert.Zero(t, rec.pdfCalls)
}

func TestTextStageImageWithoutRecognizer(t *testing.T) {
	stage := NewTextStage(document.NewLoader(testLogger()), nil, testLogger())

	_, err := stage.Run(context.Background(), []byte{0x89, 'P', 'N', 'G'})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDocumentParse)
}

func TestTextStageNoRecognizerSurfacesParseError(t *testing.T) {
	stage := NewTextStage(document.NewLoader(testLogger()), nil, testLogger())

	_, err := stage.Run(context.Background(), []byte("%PDF-1.4 not really a pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDocumentParse)
}

func TestTextStageBothPathsFailKeepsParseError(t *testing.T) {
	rec := &fakeRecognizer{err: common.ServiceError("vision", 500, "unavailable")}
	stage := NewTextStage(document.NewLoader(testLogger()), rec, testLogger())

	_, err := stage.Run(context.Background(), []byte("%PDF-1.4 not really a pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDocumentParse)
	assert.Equal(t, 1, rec.pdfCalls)
}

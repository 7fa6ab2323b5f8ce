package ocr

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/status"

	"github.com/directory-tools/linkedin-ingest/internal/common"
)

type fakeAnnotator struct {
	resp    *visionpb.BatchAnnotateFilesResponse
	imgResp *visionpb.BatchAnnotateImagesResponse
	err     error
	got     *visionpb.BatchAnnotateFilesRequest
	gotImg  *visionpb.BatchAnnotateImagesRequest
}

func (f *fakeAnnotator) BatchAnnotateFiles(_ context.Context, req *visionpb.BatchAnnotateFilesRequest, _ ...gax.CallOption) (*visionpb.BatchAnnotateFilesResponse, error) {
	f.got = req
	return f.resp, f.err
}

func (f *fakeAnnotator) BatchAnnotateImages(_ context.Context, req *visionpb.BatchAnnotateImagesRequest, _ ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error) {
	f.gotImg = req
	return f.imgResp, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pagesResponse(texts ...string) *visionpb.BatchAnnotateFilesResponse {
	pages := make([]*visionpb.AnnotateImageResponse, len(texts))
	for i, t := range texts {
		pages[i] = &visionpb.AnnotateImageResponse{
			FullTextAnnotation: &visionpb.TextAnnotation{Text: t},
		}
	}
	return &visionpb.BatchAnnotateFilesResponse{
		Responses: []*visionpb.AnnotateFileResponse{{Responses: pages}},
	}
}

func TestRecognizePDFJoinsPages(t *testing.T) {
	fake := &fakeAnnotator{resp: pagesResponse("page one", "page two")}
	rec := NewRecognizerWithAnnotator(fake, time.Second, discardLogger())

	result, err := rec.RecognizePDF(context.Background(), []byte("%PDF-1.4"))
	require.NoError(t, err)

	assert.Equal(t, "page one\npage two", result.Text)
	assert.Equal(t, 2, result.PageCount)

	// request shape
	require.Len(t, fake.got.Requests, 1)
	assert.Equal(t, "application/pdf", fake.got.Requests[0].InputConfig.MimeType)
	require.Len(t, fake.got.Requests[0].Features, 1)
	assert.Equal(t, visionpb.Feature_DOCUMENT_TEXT_DETECTION, fake.got.Requests[0].Features[0].Type)
}

func TestRecognizePDFSkipsEmptyPages(t *testing.T) {
	fake := &fakeAnnotator{resp: pagesResponse("only page", "")}
	rec := NewRecognizerWithAnnotator(fake, time.Second, discardLogger())

	result, err := rec.RecognizePDF(context.Background(), []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "only page", result.Text)
	assert.Equal(t, 2, result.PageCount)
}

func TestRecognizePDFTransportError(t *testing.T) {
	fake := &fakeAnnotator{err: errors.New("rpc unavailable")}
	rec := NewRecognizerWithAnnotator(fake, time.Second, discardLogger())

	_, err := rec.RecognizePDF(context.Background(), []byte("%PDF-1.4"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionService)
}

func TestRecognizePDFFileError(t *testing.T) {
	fake := &fakeAnnotator{resp: &visionpb.BatchAnnotateFilesResponse{
		Responses: []*visionpb.AnnotateFileResponse{{
			Error: &status.Status{Code: 3, Message: "unsupported file"},
		}},
	}}
	rec := NewRecognizerWithAnnotator(fake, time.Second, discardLogger())

	_, err := rec.RecognizePDF(context.Background(), []byte("not a pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionService)
	assert.Contains(t, err.Error(), "unsupported file")
}

func TestRecognizePDFNoText(t *testing.T) {
	fake := &fakeAnnotator{resp: pagesResponse("", "")}
	rec := NewRecognizerWithAnnotator(fake, time.Second, discardLogger())

	_, err := rec.RecognizePDF(context.Background(), []byte("%PDF-1.4"))
	require.Error(t, err)
}

func TestRecognizeImageSinglePage(t *testing.T) {
	fake := &fakeAnnotator{imgResp: &visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{{
			FullTextAnnotation: &visionpb.TextAnnotation{Text: "image text"},
		}},
	}}
	rec := NewRecognizerWithAnnotator(fake, time.Second, discardLogger())

	result, err := rec.RecognizeImage(context.Background(), []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)

	assert.Equal(t, "image text", result.Text)
	assert.Equal(t, 1, result.PageCount)
	require.Len(t, fake.gotImg.Requests, 1)
}

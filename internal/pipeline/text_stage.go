package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/document"
	"github.com/directory-tools/linkedin-ingest/internal/ocr"
)

// Text sources reported by the stage.
const (
	SourceTextLayer = "text-layer"
	SourceOCR       = "ocr"
)

// minTextLayerChars is the quality gate for the embedded text layer.
// Below it the document is treated as a scan and sent to OCR.
const minTextLayerChars = 50

var pdfMagic = []byte("%PDF")

// TextResult carries the extracted document text along with where it
// came from and how many pages contributed.
type TextResult struct {
	Text   string
	Source string
	Pages  int
}

// TextStage produces plain text for an uploaded document: the embedded
// text layer when the file is a PDF with a usable one, OCR otherwise.
// Non-PDF uploads (image exports of a profile) go straight to image
// OCR. Recognizer may be nil, in which case a thin text layer is
// returned as-is and the caller decides.
type TextStage struct {
	Loader     *document.Loader
	Recognizer ocr.Recognizer
	Logger     *slog.Logger
}

func NewTextStage(loader *document.Loader, recognizer ocr.Recognizer, logger *slog.Logger) *TextStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextStage{Loader: loader, Recognizer: recognizer, Logger: logger}
}

// Run returns the document text and its source.
func (s *TextStage) Run(ctx context.Context, data []byte) (*TextResult, error) {
	reqID := common.RequestIDFromContext(ctx)

	if !bytes.HasPrefix(data, pdfMagic) {
		return s.recognizeImage(ctx, data)
	}

	text, pages, layerErr := s.textLayer(data)
	if layerErr == nil && len(text) >= minTextLayerChars {
		s.Logger.Info("pipeline.text.layer_ok", "req_id", reqID, "chars", len(text), "pages", pages)
		return &TextResult{Text: text, Source: SourceTextLayer, Pages: pages}, nil
	}

	if s.Recognizer == nil {
		if layerErr != nil {
			return nil, layerErr
		}
		s.Logger.Warn("pipeline.text.thin_layer_no_ocr", "req_id", reqID, "chars", len(text))
		return &TextResult{Text: text, Source: SourceTextLayer, Pages: pages}, nil
	}

	if layerErr != nil {
		s.Logger.Warn("pipeline.text.layer_failed", "req_id", reqID, "error", layerErr)
	} else {
		s.Logger.Info("pipeline.text.layer_thin", "req_id", reqID, "chars", len(text))
	}

	res, err := s.Recognizer.RecognizePDF(ctx, data)
	if err != nil {
		// keep the parse error when both paths failed on a broken file
		if layerErr != nil {
			return nil, layerErr
		}
		return nil, err
	}
	s.Logger.Info("pipeline.text.ocr_ok", "req_id", reqID, "chars", len(res.Text), "pages", res.PageCount)
	return &TextResult{Text: strings.TrimSpace(res.Text), Source: SourceOCR, Pages: res.PageCount}, nil
}

func (s *TextStage) recognizeImage(ctx context.Context, data []byte) (*TextResult, error) {
	if s.Recognizer == nil {
		return nil, common.DocumentParseError(errors.New("image upload but OCR is not configured"))
	}
	res, err := s.Recognizer.RecognizeImage(ctx, data)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("pipeline.text.image_ocr_ok",
		"req_id", common.RequestIDFromContext(ctx), "chars", len(res.Text))
	return &TextResult{Text: strings.TrimSpace(res.Text), Source: SourceOCR, Pages: res.PageCount}, nil
}

func (s *TextStage) textLayer(data []byte) (string, int, error) {
	doc, err := s.Loader.LoadPDF(data)
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(doc.Text()), doc.PageCount, nil
}

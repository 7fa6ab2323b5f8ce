package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	vision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"

	"github.com/directory-tools/linkedin-ingest/internal/common"
)

// VisionRecognizer runs DOCUMENT_TEXT_DETECTION over inline PDF content.
type VisionRecognizer struct {
	annotator Annotator
	closer    func() error
	timeout   time.Duration
	logger    *slog.Logger
}

// NewVisionRecognizer dials the Vision API. credentialsJSON may be empty,
// in which case the client falls back to ambient application credentials.
func NewVisionRecognizer(ctx context.Context, cfg *common.VisionConfig, logger *slog.Logger) (*VisionRecognizer, error) {
	var opts []option.ClientOption
	if len(cfg.CredentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, common.NewAppError("CONFIG_ERROR", "create vision client",
			fmt.Errorf("%w: %w", common.ErrConfiguration, err))
	}
	return &VisionRecognizer{
		annotator: client,
		closer:    client.Close,
		timeout:   cfg.Timeout,
		logger:    logger,
	}, nil
}

// NewRecognizerWithAnnotator wires an existing annotator, used by tests.
func NewRecognizerWithAnnotator(a Annotator, timeout time.Duration, logger *slog.Logger) *VisionRecognizer {
	return &VisionRecognizer{annotator: a, timeout: timeout, logger: logger}
}

func (v *VisionRecognizer) Close() error {
	if v.closer != nil {
		return v.closer()
	}
	return nil
}

// RecognizePDF sends the document inline and concatenates the full-text
// annotation of every page. Pages without detected text are skipped.
func (v *VisionRecognizer) RecognizePDF(ctx context.Context, pdfData []byte) (*Result, error) {
	reqID := common.RequestIDFromContext(ctx)
	start := time.Now()
	v.logger.Info("ocr.recognize.start", "req_id", reqID, "bytes", len(pdfData))

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	req := &visionpb.BatchAnnotateFilesRequest{
		Requests: []*visionpb.AnnotateFileRequest{{
			InputConfig: &visionpb.InputConfig{
				Content:  pdfData,
				MimeType: "application/pdf",
			},
			Features: []*visionpb.Feature{{
				Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION,
			}},
		}},
	}

	resp, err := v.annotator.BatchAnnotateFiles(ctx, req)
	if err != nil {
		v.logger.Error("ocr.recognize.failed", "req_id", reqID, "error", err)
		return nil, common.NewAppError("EXTRACTION_SERVICE", "vision batch annotate",
			fmt.Errorf("%w: %w", common.ErrExtractionService, err))
	}
	if len(resp.GetResponses()) == 0 {
		return nil, common.NewAppError("EXTRACTION_SERVICE", "vision returned no file responses", common.ErrExtractionService)
	}

	fileResp := resp.GetResponses()[0]
	if e := fileResp.GetError(); e != nil {
		return nil, common.ServiceError("vision", int(e.GetCode()), e.GetMessage())
	}

	var parts []string
	for _, pageResp := range fileResp.GetResponses() {
		if e := pageResp.GetError(); e != nil {
			return nil, common.ServiceError("vision", int(e.GetCode()), e.GetMessage())
		}
		if txt := pageResp.GetFullTextAnnotation().GetText(); txt != "" {
			parts = append(parts, txt)
		}
	}

	result := &Result{
		Text:      strings.Join(parts, "\n"),
		PageCount: len(fileResp.GetResponses()),
	}
	if result.Text == "" {
		return nil, common.NewAppError("EXTRACTION_SERVICE",
			fmt.Sprintf("no text detected across %d pages", result.PageCount),
			common.ErrExtractionService)
	}

	v.logger.Info("ocr.recognize.ok",
		"req_id", reqID,
		"pages", result.PageCount,
		"chars", len(result.Text),
		"elapsed_ms", time.Since(start).Milliseconds())
	return result, nil
}

// RecognizeImage runs text detection over a single raster image. The
// result always counts one page.
func (v *VisionRecognizer) RecognizeImage(ctx context.Context, imageData []byte) (*Result, error) {
	reqID := common.RequestIDFromContext(ctx)
	start := time.Now()
	v.logger.Info("ocr.image.start", "req_id", reqID, "bytes", len(imageData))

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image: &visionpb.Image{Content: imageData},
			Features: []*visionpb.Feature{{
				Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION,
			}},
		}},
	}

	resp, err := v.annotator.BatchAnnotateImages(ctx, req)
	if err != nil {
		v.logger.Error("ocr.image.failed", "req_id", reqID, "error", err)
		return nil, common.NewAppError("EXTRACTION_SERVICE", "vision annotate image",
			fmt.Errorf("%w: %w", common.ErrExtractionService, err))
	}
	if len(resp.GetResponses()) == 0 {
		return nil, common.NewAppError("EXTRACTION_SERVICE", "vision returned no image responses", common.ErrExtractionService)
	}
	imgResp := resp.GetResponses()[0]
	if e := imgResp.GetError(); e != nil {
		return nil, common.ServiceError("vision", int(e.GetCode()), e.GetMessage())
	}

	text := imgResp.GetFullTextAnnotation().GetText()
	if text == "" {
		return nil, common.NewAppError("EXTRACTION_SERVICE", "no text detected in image", common.ErrExtractionService)
	}

	v.logger.Info("ocr.image.ok",
		"req_id", reqID,
		"chars", len(text),
		"elapsed_ms", time.Since(start).Milliseconds())
	return &Result{Text: text, PageCount: 1}, nil
}

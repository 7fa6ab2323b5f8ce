// Package ocr recognizes text in scanned PDF documents through the Google
// Cloud Vision API. It is the fallback path for uploads whose embedded
// text layer is missing or too thin to be useful.
package ocr

import (
	"context"

	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/googleapis/gax-go/v2"
)

// Result is the outcome of a recognition pass over one document.
type Result struct {
	Text      string
	PageCount int
}

// Recognizer converts document bytes into text. Images yield a single
// page; PDFs keep their page count.
type Recognizer interface {
	RecognizePDF(ctx context.Context, pdfData []byte) (*Result, error)
	RecognizeImage(ctx context.Context, imageData []byte) (*Result, error)
}

// Annotator is the slice of the Vision client the recognizer needs.
// *vision.ImageAnnotatorClient satisfies it.
type Annotator interface {
	BatchAnnotateFiles(ctx context.Context, req *visionpb.BatchAnnotateFilesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateFilesResponse, error)
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
}

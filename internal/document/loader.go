package document

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/directory-tools/linkedin-ingest/internal/common"
)

// Fragment is one text-layer token with its position on the page.
// Coordinates are PDF user-space: y grows upward.
type Fragment struct {
	Text string
	X    float64
	Y    float64
	W    float64
	H    float64
	Page int
}

// Document holds the per-page fragments of a loaded PDF.
type Document struct {
	Pages     [][]Fragment
	PageCount int
}

// Loader reads the digital text layer of a PDF. Image uploads never reach
// it; those are routed to the OCR client by the pipeline.
type Loader struct {
	logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadPDF parses pdfData and returns positioned fragments per page.
// Pages without a text layer contribute an empty fragment list. Malformed
// input surfaces as a DocumentParseError carrying the decoder's message;
// the underlying reader panics on some corrupt files, so that path is
// recovered here rather than crashing the request.
func (l *Loader) LoadPDF(pdfData []byte) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = common.DocumentParseError(fmt.Errorf("pdf reader panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, common.DocumentParseError(err)
	}

	doc = &Document{PageCount: reader.NumPage()}
	doc.Pages = make([][]Fragment, 0, doc.PageCount)

	total := 0
	for i := 1; i <= doc.PageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, nil)
			continue
		}
		content := page.Content()
		frags := make([]Fragment, 0, len(content.Text))
		for _, t := range content.Text {
			frags = append(frags, Fragment{
				Text: t.S,
				X:    t.X,
				Y:    t.Y,
				W:    t.W,
				H:    t.FontSize,
				Page: i - 1,
			})
			total += len(t.S)
		}
		doc.Pages = append(doc.Pages, frags)
	}

	l.logger.Debug("document.load.ok", "pages", doc.PageCount, "chars", total)
	return doc, nil
}

// Text reconstructs the whole document in reading order.
func (d *Document) Text() string {
	pageTexts := make([]string, 0, len(d.Pages))
	for _, frags := range d.Pages {
		pageTexts = append(pageTexts, AssemblePage(frags))
	}
	return strings.Join(pageTexts, "\n\n")
}

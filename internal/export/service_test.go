package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/directory-tools/linkedin-ingest/internal/airtable"
)

type fakeLister struct {
	records []airtable.Record
	err     error
}

func (f *fakeLister) ListByEmployee(context.Context, string) ([]airtable.Record, error) {
	return f.records, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExportExperienceXLSX(t *testing.T) {
	svc := NewService(&fakeLister{records: []airtable.Record{
		{ID: "rec1", Fields: map[string]any{
			"Company":    "Acme Corp",
			"Role":       "Engineer",
			"Start Date": "Jan 2019",
			"End Date":   "Present",
		}},
		{ID: "rec2", Fields: map[string]any{
			"Company": "Globex",
			"Role":    "Manager",
		}},
	}}, testLogger())

	out, err := svc.ExportExperienceXLSX(context.Background(), "recEMP1")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Work Experience")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Company", rows[0][0])
	assert.Equal(t, "Acme Corp", rows[1][0])
	assert.Equal(t, "Present", rows[1][3])
	assert.Equal(t, "Globex", rows[2][0])
	assert.Equal(t, "Manager", rows[2][1])
}

func TestExportExperienceXLSXNoRecords(t *testing.T) {
	svc := NewService(&fakeLister{}, testLogger())

	out, err := svc.ExportExperienceXLSX(context.Background(), "recEMP1")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Work Experience")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestExportExperienceXLSXListFailure(t *testing.T) {
	svc := NewService(&fakeLister{err: errors.New("airtable down")}, testLogger())

	_, err := svc.ExportExperienceXLSX(context.Background(), "recEMP1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query experiences")
}

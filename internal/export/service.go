// Package export renders an employee's saved work-experience rows as an
// XLSX workbook, read back from the tabular store.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/directory-tools/linkedin-ingest/internal/airtable"
)

// ExperienceLister is the slice of the tabular-store client the exporter
// reads through. *airtable.Client satisfies it.
type ExperienceLister interface {
	ListByEmployee(ctx context.Context, recordID string) ([]airtable.Record, error)
}

// Service produces XLSX bytes for exports.
type Service struct {
	store  ExperienceLister
	logger *slog.Logger
}

func NewService(store ExperienceLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Column order in the workbook; the keys mirror the store's column names.
var columns = []string{
	"Company",
	"Role",
	"Start Date",
	"End Date",
	"Description",
}

// ExportExperienceXLSX returns a workbook with one row per saved
// experience record for the employee, in store order.
func (s *Service) ExportExperienceXLSX(ctx context.Context, employeeRecordID string) ([]byte, error) {
	start := time.Now()

	recs, err := s.store.ListByEmployee(ctx, employeeRecordID)
	if err != nil {
		return nil, fmt.Errorf("query experiences: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Work Experience"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIndex, _ := f.GetSheetIndex("Sheet1"); defIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		for i, col := range columns {
			v, ok := r.Fields[col]
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"employee", employeeRecordID,
		"rows", row-2,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

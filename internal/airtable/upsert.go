package airtable

import (
	"context"
	"fmt"
	"time"

	"github.com/directory-tools/linkedin-ingest/internal/common"
)

// UpsertResult reports the outcome of one save. A missing employee link
// makes the save a skip, not a failure: the extraction result is still
// useful to the caller.
type UpsertResult struct {
	Success bool          `json:"success"`
	Skipped bool          `json:"skipped,omitempty"`
	Message string        `json:"message"`
	Records int           `json:"records,omitempty"`
	Batches []BatchStatus `json:"batches,omitempty"`
}

// SaveExperiences maps extractor keys onto table columns, links every row
// to the employee record, and writes them.
// With ReplaceExisting set, the employee's current rows are deleted first;
// the default is append, so re-uploading a profile duplicates rows.
func (c *Client) SaveExperiences(ctx context.Context, employeeRecordID string, experiences []map[string]any) UpsertResult {
	reqID := common.RequestIDFromContext(ctx)
	start := time.Now()

	if employeeRecordID == "" {
		c.logger.Warn("airtable.save.skipped", "req_id", reqID, "reason", "no employee record id")
		return UpsertResult{Skipped: true, Message: "skipped: no employee record id provided"}
	}
	if len(experiences) == 0 {
		return UpsertResult{Skipped: true, Message: "skipped: no experiences extracted"}
	}

	if c.cfg.ReplaceExisting {
		existing, err := c.ListByEmployee(ctx, employeeRecordID)
		if err != nil {
			return UpsertResult{Message: fmt.Sprintf("failed to list existing records: %v", err)}
		}
		if len(existing) > 0 {
			ids := make([]string, len(existing))
			for i, r := range existing {
				ids[i] = r.ID
			}
			if err := c.DeleteRecords(ctx, ids); err != nil {
				return UpsertResult{Message: fmt.Sprintf("failed to replace existing records: %v", err)}
			}
			c.logger.Info("airtable.save.replaced", "req_id", reqID, "deleted", len(ids))
		}
	}

	fieldsList := make([]map[string]any, len(experiences))
	for i, exp := range experiences {
		fields := make(map[string]any, len(exp)+1)
		for k, v := range exp {
			col, ok := c.cfg.ColumnMap[k]
			if !ok {
				continue
			}
			fields[col] = v
		}
		fields[c.cfg.EmployeeField] = []string{employeeRecordID}
		fieldsList[i] = fields
	}

	created, batches, err := c.CreateRecords(ctx, fieldsList)
	if err != nil {
		return UpsertResult{
			Message: fmt.Sprintf("failed after %d records: %v", len(created), err),
			Records: len(created),
			Batches: batches,
		}
	}

	c.logger.Info("airtable.save.ok",
		"req_id", reqID,
		"employee", employeeRecordID,
		"records", len(created),
		"elapsed_ms", time.Since(start).Milliseconds())
	return UpsertResult{
		Success: true,
		Message: fmt.Sprintf("saved %d experience records", len(created)),
		Records: len(created),
		Batches: batches,
	}
}

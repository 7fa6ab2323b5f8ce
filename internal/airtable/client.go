// Package airtable is a thin client for the Airtable REST API, covering
// the create, list, and delete operations the ingest pipeline needs.
// Batches never exceed ten records per request, the API's hard limit.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/directory-tools/linkedin-ingest/internal/common"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// maxBatchSize is the Airtable per-request record limit.
const maxBatchSize = 10

// Config for the Airtable client.
type Config struct {
	BaseID          string
	Token           string // personal access token
	Table           string // experience table name
	EmployeeField   string // linked-record field pointing at the employee
	ColumnMap       map[string]string
	BatchSize       int  // 1..10
	ReplaceExisting bool // delete the employee's rows before writing
	BaseURL         string // override for tests
	Timeout         time.Duration
}

// DefaultColumnMap maps the extractor's output keys onto the Work
// Experience table's column names. The table is external and not owned
// by this service, so the keys cannot be written as-is. Keys without a
// column are dropped; the base has no duration column.
func DefaultColumnMap() map[string]string {
	return map[string]string{
		"Company":                  "Company",
		"Role Held at the Company": "Role",
		"Start Date":               "Start Date",
		"End Date":                 "End Date",
		"Brief Description":        "Description",
	}
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

// Record is one Airtable row.
type Record struct {
	ID     string         `json:"id,omitempty"`
	Fields map[string]any `json:"fields"`
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.BatchSize <= 0 || cfg.BatchSize > maxBatchSize {
		cfg.BatchSize = maxBatchSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.ColumnMap == nil {
		cfg.ColumnMap = DefaultColumnMap()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *Client) tableURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/" + c.cfg.BaseID + "/" + url.PathEscape(c.cfg.Table)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airtable http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("airtable response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, common.NewAppError("UPSERT_FAILED",
			fmt.Sprintf("airtable status %d: %s", resp.StatusCode, common.Preview(string(raw), 500)),
			common.ErrUpsert)
	}
	return raw, nil
}

// Batch outcome labels.
const (
	BatchCreated = "created"
	BatchFailed  = "failed"
)

// BatchStatus reports how one create batch fared.
type BatchStatus struct {
	Index     int      `json:"index"`
	Size      int      `json:"size"`
	Status    string   `json:"status"` // created or failed
	RecordIDs []string `json:"record_ids,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// CreateRecords writes fields in API-sized batches and stops at the first
// failing batch; rows already written stay written. Returns the created
// records and a per-batch report covering every batch attempted.
func (c *Client) CreateRecords(ctx context.Context, fieldsList []map[string]any) ([]Record, []BatchStatus, error) {
	reqID := common.RequestIDFromContext(ctx)
	start := time.Now()

	var created []Record
	var statuses []BatchStatus
	for begin := 0; begin < len(fieldsList); begin += c.cfg.BatchSize {
		end := begin + c.cfg.BatchSize
		if end > len(fieldsList) {
			end = len(fieldsList)
		}
		records := make([]Record, 0, end-begin)
		for _, f := range fieldsList[begin:end] {
			records = append(records, Record{Fields: f})
		}
		status := BatchStatus{Index: len(statuses), Size: len(records)}

		raw, err := c.do(ctx, http.MethodPost, c.tableURL(), map[string]any{"records": records})
		if err != nil {
			c.logger.Error("airtable.create.failed",
				"req_id", reqID, "batch", status.Index, "written", len(created), "error", err)
			status.Status = BatchFailed
			status.Error = err.Error()
			statuses = append(statuses, status)
			return created, statuses, common.WrapError(err, fmt.Sprintf("create batch %d", status.Index))
		}

		var out struct {
			Records []Record `json:"records"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			status.Status = BatchFailed
			status.Error = err.Error()
			statuses = append(statuses, status)
			return created, statuses, common.WrapError(err, fmt.Sprintf("decode batch %d response", status.Index))
		}
		created = append(created, out.Records...)
		status.Status = BatchCreated
		for _, r := range out.Records {
			status.RecordIDs = append(status.RecordIDs, r.ID)
		}
		statuses = append(statuses, status)
	}

	c.logger.Info("airtable.create.ok",
		"req_id", reqID,
		"records", len(created),
		"batches", len(statuses),
		"elapsed_ms", time.Since(start).Milliseconds())
	return created, statuses, nil
}

// ListByEmployee pages through every record whose employee link contains
// recordID.
func (c *Client) ListByEmployee(ctx context.Context, recordID string) ([]Record, error) {
	formula := fmt.Sprintf(`SEARCH(%q, ARRAYJOIN({%s}))`, recordID, c.cfg.EmployeeField)

	var all []Record
	offset := ""
	for {
		q := url.Values{}
		q.Set("filterByFormula", formula)
		q.Set("pageSize", "100")
		if offset != "" {
			q.Set("offset", offset)
		}

		raw, err := c.do(ctx, http.MethodGet, c.tableURL()+"?"+q.Encode(), nil)
		if err != nil {
			return nil, common.WrapError(err, "list records")
		}

		var out struct {
			Records []Record `json:"records"`
			Offset  string   `json:"offset"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, common.WrapError(err, "decode list response")
		}
		all = append(all, out.Records...)
		if out.Offset == "" {
			return all, nil
		}
		offset = out.Offset
	}
}

// DeleteRecords removes records by ID in API-sized batches.
func (c *Client) DeleteRecords(ctx context.Context, ids []string) error {
	for begin := 0; begin < len(ids); begin += maxBatchSize {
		end := begin + maxBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		q := url.Values{}
		for _, id := range ids[begin:end] {
			q.Add("records[]", id)
		}
		if _, err := c.do(ctx, http.MethodDelete, c.tableURL()+"?"+q.Encode(), nil); err != nil {
			return common.WrapError(err, "delete records")
		}
	}
	return nil
}

package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directory-tools/linkedin-ingest/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, cfg Config, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg.BaseURL = srv.URL
	if cfg.BaseID == "" {
		cfg.BaseID = "appTEST"
	}
	if cfg.Token == "" {
		cfg.Token = "patTEST"
	}
	if cfg.Table == "" {
		cfg.Table = "Work Experience"
	}
	if cfg.EmployeeField == "" {
		cfg.EmployeeField = "Employee Database"
	}
	cfg.Timeout = 5 * time.Second
	return NewClient(cfg, testLogger())
}

func echoCreated(w http.ResponseWriter, r *http.Request) (count int) {
	var in struct {
		Records []Record `json:"records"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)
	for i := range in.Records {
		in.Records[i].ID = fmt.Sprintf("rec%03d", i)
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"records": in.Records})
	return len(in.Records)
}

func fieldsList(n int) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		out[i] = map[string]any{"Company": fmt.Sprintf("Company %d", i)}
	}
	return out
}

func TestCreateRecordsBatches(t *testing.T) {
	var batchSizes []int
	c := newTestClient(t, Config{BatchSize: 10}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer ", r.Header.Get("Authorization")[:7])
		batchSizes = append(batchSizes, echoCreated(w, r))
	}))

	created, batches, err := c.CreateRecords(context.Background(), fieldsList(23))
	require.NoError(t, err)

	assert.Len(t, created, 23)
	assert.Equal(t, []int{10, 10, 3}, batchSizes)

	require.Len(t, batches, 3)
	for i, b := range batches {
		assert.Equal(t, i, b.Index)
		assert.Equal(t, BatchCreated, b.Status)
		assert.Len(t, b.RecordIDs, b.Size)
	}
	assert.Equal(t, 3, batches[2].Size)
}

func TestCreateRecordsStopsOnFirstFailure(t *testing.T) {
	calls := 0
	c := newTestClient(t, Config{BatchSize: 10}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			http.Error(w, `{"error": {"type": "INVALID_REQUEST"}}`, http.StatusUnprocessableEntity)
			return
		}
		echoCreated(w, r)
	}))

	created, batches, err := c.CreateRecords(context.Background(), fieldsList(25))
	require.Error(t, err)

	assert.ErrorIs(t, err, common.ErrUpsert)
	assert.Contains(t, err.Error(), "batch 1")
	assert.Len(t, created, 10) // first batch already written
	assert.Equal(t, 2, calls)  // no batch after the failure

	require.Len(t, batches, 2)
	assert.Equal(t, BatchCreated, batches[0].Status)
	assert.Equal(t, BatchFailed, batches[1].Status)
	assert.Contains(t, batches[1].Error, "422")
	assert.Empty(t, batches[1].RecordIDs)
}

func TestSaveExperiencesLinksEmployee(t *testing.T) {
	var got []Record
	c := newTestClient(t, Config{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Records []Record `json:"records"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		got = append(got, in.Records...)
		_ = json.NewEncoder(w).Encode(map[string]any{"records": in.Records})
	}))

	res := c.SaveExperiences(context.Background(), "recEMP1", []map[string]any{
		{"Company": "Acme", "Role Held at the Company": "Engineer"},
	})

	assert.True(t, res.Success)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].Fields["Company"])
	assert.Equal(t, []any{"recEMP1"}, got[0].Fields["Employee Database"])
}

func TestSaveExperiencesMapsExtractorKeysToColumns(t *testing.T) {
	var got []Record
	c := newTestClient(t, Config{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Records []Record `json:"records"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		got = append(got, in.Records...)
		_ = json.NewEncoder(w).Encode(map[string]any{"records": in.Records})
	}))

	res := c.SaveExperiences(context.Background(), "recEMP1", []map[string]any{{
		"Company":                  "Acme",
		"Role Held at the Company": "Engineer",
		"Start Date":               "Jan 2019",
		"End Date":                 "Present",
		"Years Worked There":       "5 yrs",
		"Brief Description":        "Built things.",
	}})

	assert.True(t, res.Success)
	require.Len(t, got, 1)
	fields := got[0].Fields
	assert.Equal(t, "Engineer", fields["Role"])
	assert.Equal(t, "Built things.", fields["Description"])
	assert.Equal(t, "Jan 2019", fields["Start Date"])
	assert.Equal(t, "Present", fields["End Date"])
	// extractor keys must not leak through as column names
	assert.NotContains(t, fields, "Role Held at the Company")
	assert.NotContains(t, fields, "Brief Description")
	assert.NotContains(t, fields, "Years Worked There")
}

func TestSaveExperiencesSkipsWithoutEmployeeID(t *testing.T) {
	c := newTestClient(t, Config{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	res := c.SaveExperiences(context.Background(), "", fieldsList(2))

	assert.False(t, res.Success)
	assert.True(t, res.Skipped)
	assert.Contains(t, res.Message, "no employee record id")
}

func TestSaveExperiencesReplaceExisting(t *testing.T) {
	var deleted []string
	mux := http.NewServeMux()
	mux.HandleFunc("/appTEST/Work%20Experience", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"records": []Record{
				{ID: "recOLD1", Fields: map[string]any{"Company": "Old"}},
				{ID: "recOLD2", Fields: map[string]any{"Company": "Older"}},
			}})
		case http.MethodDelete:
			deleted = append(deleted, r.URL.Query()["records[]"]...)
			_ = json.NewEncoder(w).Encode(map[string]any{"records": []any{}})
		case http.MethodPost:
			echoCreated(w, r)
		}
	})
	c := newTestClient(t, Config{ReplaceExisting: true}, mux)

	res := c.SaveExperiences(context.Background(), "recEMP1", fieldsList(1))

	assert.True(t, res.Success)
	assert.ElementsMatch(t, []string{"recOLD1", "recOLD2"}, deleted)
}

func TestListByEmployeePagination(t *testing.T) {
	page := 0
	c := newTestClient(t, Config{}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("filterByFormula"), "recEMP1")
		page++
		if page == 1 {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"records": []Record{{ID: "rec001"}, {ID: "rec002"}},
				"offset":  "next-page",
			})
			return
		}
		assert.Equal(t, "next-page", r.URL.Query().Get("offset"))
		_ = json.NewEncoder(w).Encode(map[string]any{"records": []Record{{ID: "rec003"}}})
	}))

	records, err := c.ListByEmployee(context.Background(), "recEMP1")
	require.NoError(t, err)

	assert.Len(t, records, 3)
	assert.Equal(t, 2, page)
}

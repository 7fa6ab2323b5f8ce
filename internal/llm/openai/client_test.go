package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4o",
		Timeout: 5 * time.Second,
	}, testLogger())
}

func TestExtractExperiencesFencedArray(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = io.WriteString(w, chatReply("```json\n[{\"Company\": \"Acme Corp\", \"Role Held at the Company\": \"Engineer\", \"Start Date\": \"Jan 2019\", \"End Date\": \"Present\"}]\n```"))
	})

	list, raw, err := c.ExtractExperiences(context.Background(), llm.ExtractRequest{
		SectionText: "Experience\nAcme Corp\nEngineer\nJan 2019 - Present",
		SourceHint:  "text-layer",
	})
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, "Acme Corp", list[0].Company)
	assert.Equal(t, "Engineer", list[0].Role)
	assert.Equal(t, "Present", list[0].EndDate)
	assert.NotEmpty(t, raw)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o", gotBody["model"])
	assert.EqualValues(t, 0, gotBody["temperature"])
}

func TestExtractExperiencesProseReplyYieldsEmptyList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, chatReply("Sorry, I can't find an experience section in this text."))
	})

	list, _, err := c.ExtractExperiences(context.Background(), llm.ExtractRequest{SectionText: "gibberish"})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExtractExperiencesVendorFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	})

	_, _, err := c.ExtractExperiences(context.Background(), llm.ExtractRequest{SectionText: "Experience"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionService)
	assert.Contains(t, err.Error(), "429")
}

func TestExtractExperiencesFiltersIncompleteEntries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, chatReply(`[
			{"Company": "Acme", "Role Held at the Company": "Engineer"},
			{"Company": "Globex", "Role Held at the Company": ""}
		]`))
	})

	list, _, err := c.ExtractExperiences(context.Background(), llm.ExtractRequest{SectionText: "Experience"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Company)
}

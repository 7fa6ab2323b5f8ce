package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/directory-tools/linkedin-ingest/internal/common"
	"github.com/directory-tools/linkedin-ingest/internal/llm"
)

// ExtractExperiences implements llm.ExperienceExtractor over text-only
// chat/completions. The call is a single attempt: a transport or vendor
// failure surfaces as an error, while an unreadable reply degrades to an
// empty list.
func (c *Client) ExtractExperiences(ctx context.Context, req llm.ExtractRequest) ([]llm.JobExperience, []byte, error) {
	rid := common.RequestIDFromContext(ctx)
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.SectionText),
		"source", req.SourceHint,
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildSystemPrompt()},
			{"role": "user", "content": llm.BuildUserPrompt(req)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, status, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "status", status, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, common.ServiceError("openai", status, httpErr.Error())
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, common.NewAppError("EXTRACTION_SERVICE", "decode openai response",
			fmt.Errorf("%w: %w", common.ErrExtractionService, err))
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, common.NewAppError("EXTRACTION_SERVICE", "no choices in openai response", common.ErrExtractionService)
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	// Unreadable or off-shape replies decode to an empty list, never an error.
	list := llm.DecodeExperienceList(rawContent, c.logger)
	list = llm.NormalizeExperiences(list, c.logger)

	schema := llm.BuildExperienceJSONSchema()
	valid, droppedIdx := llm.FilterValidExperiences(schema, list)
	if len(droppedIdx) > 0 {
		c.logger.Warn("llm.extract.schema_filtered",
			"req_id", rid, "dropped", droppedIdx,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"entries", len(valid),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return valid, rawContent, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, int, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("openai status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, resp.StatusCode, nil
}

package llm

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// StripCodeFences removes a leading ```json (or bare ```) fence and the
// matching trailing fence. Models wrap replies this way even when told
// not to; content without fences passes through untouched.
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```json") {
		out = strings.TrimPrefix(out, "```json")
	} else if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```")
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}

// DecodeExperienceList decodes a model reply leniently. Accepted shapes:
// a bare JSON array, or an object wrapping the array under
// "job_experiences". Anything else decodes to an empty list; an
// unreadable reply must not fail the request.
func DecodeExperienceList(raw []byte, logger *slog.Logger) []JobExperience {
	if logger == nil {
		logger = slog.Default()
	}

	content := []byte(StripCodeFences(string(raw)))

	var list []JobExperience
	if err := json.Unmarshal(content, &list); err == nil {
		return list
	}

	var wrapper struct {
		JobExperiences []JobExperience `json:"job_experiences"`
	}
	if err := json.Unmarshal(content, &wrapper); err == nil && wrapper.JobExperiences != nil {
		return wrapper.JobExperiences
	}

	logger.Warn("llm.decode.unrecognized_shape", "raw_bytes", len(raw))
	return nil
}

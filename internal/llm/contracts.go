package llm

import (
	"context"
	"encoding/json"
)

// JobExperience is the normalized shape we want from the LLM. The JSON
// keys match the tabular-store column names exactly, so records pass
// through to the upsert stage without a mapping layer.
type JobExperience struct {
	Company     string `json:"Company"`
	Role        string `json:"Role Held at the Company"`
	StartDate   string `json:"Start Date,omitempty"`
	EndDate     string `json:"End Date,omitempty"` // "Present" for a current role
	YearsWorked string `json:"Years Worked There,omitempty"`
	Description string `json:"Brief Description,omitempty"`
}

type ExtractRequest struct {
	SectionText string
	SourceHint  string // "text-layer" or "ocr"; prompt context only
}

// ExperienceExtractor is the interface the pipeline depends on.
type ExperienceExtractor interface {
	ExtractExperiences(ctx context.Context, req ExtractRequest) ([]JobExperience, []byte /*rawJSON*/, error)
}

// Fields renders the entry as a column-name keyed map, the shape the
// tabular store writes. Empty optionals are omitted.
func (e JobExperience) Fields() map[string]any {
	b, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}

package llm

import (
	"log/slog"
	"strings"
)

// NormalizeExperiences
// - Trims whitespace on every field
// - Normalizes current-role end dates to the literal "Present"
// - Drops entries with neither a company nor a role (pure noise rows)
func NormalizeExperiences(in []JobExperience, logger *slog.Logger) []JobExperience {
	if logger == nil {
		logger = slog.Default()
	}

	out := make([]JobExperience, 0, len(in))
	droppedIdx := make([]int, 0, 2)
	for i, e := range in {
		e.Company = strings.TrimSpace(e.Company)
		e.Role = strings.TrimSpace(e.Role)
		e.StartDate = strings.TrimSpace(e.StartDate)
		e.EndDate = strings.TrimSpace(e.EndDate)
		e.YearsWorked = strings.TrimSpace(e.YearsWorked)
		e.Description = strings.TrimSpace(e.Description)

		if strings.EqualFold(e.EndDate, "present") {
			e.EndDate = "Present"
		}

		if e.Company == "" && e.Role == "" {
			droppedIdx = append(droppedIdx, i)
			continue
		}
		out = append(out, e)
	}

	if len(droppedIdx) > 0 {
		logger.Warn("llm.extract.normalize_dropped", "indexes", droppedIdx)
	}
	return out
}

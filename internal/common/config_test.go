package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("AIRTABLE_BASE_ID", "appTEST")
	t.Setenv("AIRTABLE_PAT", "pat-test")
}

func TestLoadConfigDefaults(t *testing.T) {
	validEnv(t)

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.EqualValues(t, 0, cfg.LLM.Temperature)
	assert.Equal(t, "Work Experience", cfg.Airtable.ExperienceTable)
	assert.Equal(t, "Employee Database", cfg.Airtable.EmployeeField)
	assert.Equal(t, 10, cfg.Airtable.BatchSize)
	assert.False(t, cfg.Airtable.ReplaceExisting)
	assert.Equal(t, 60*time.Second, cfg.Vision.Timeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	validEnv(t)
	t.Setenv("MAX_UPLOAD_MB", "25")
	t.Setenv("AIRTABLE_BATCH_SIZE", "5")
	t.Setenv("AIRTABLE_REPLACE_EXISTING", "true")
	t.Setenv("OPENAI_TIMEOUT", "90s")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(25<<20), cfg.Server.MaxUploadBytes)
	assert.Equal(t, 5, cfg.Airtable.BatchSize)
	assert.True(t, cfg.Airtable.ReplaceExisting)
	assert.Equal(t, 90*time.Second, cfg.LLM.Timeout)
}

func TestValidateMissingCredentials(t *testing.T) {
	validEnv(t)
	t.Setenv("OPENAI_API_KEY", "")

	err := LoadConfig().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestValidateBatchSizeBounds(t *testing.T) {
	validEnv(t)
	t.Setenv("AIRTABLE_BATCH_SIZE", "11")

	err := LoadConfig().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AIRTABLE_BATCH_SIZE")
}

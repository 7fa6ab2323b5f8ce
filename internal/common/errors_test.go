package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrapsCategory(t *testing.T) {
	cause := errors.New("connection refused")
	err := DocumentParseError(cause)

	assert.ErrorIs(t, err, ErrDocumentParse)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DOCUMENT_PARSE")
}

func TestServiceErrorCarriesProviderAndStatus(t *testing.T) {
	err := ServiceError("openai", 429, "rate limited")

	assert.ErrorIs(t, err, ErrExtractionService)
	assert.Contains(t, err.Error(), "openai status 429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short", 10))
	assert.Equal(t, "0123456789...(truncated)", Preview("0123456789abcdef", 10))
}

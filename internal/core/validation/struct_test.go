package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	URL    string `validate:"required,url"`
	Level  string `validate:"oneof=debug info"`
	Policy string `validate:"required"`
}

func TestStructValidator_FlattensFailures(t *testing.T) {
	err := NewStructValidator().Validate(&sample{URL: "not a url", Level: "loud"})
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "sample.URL must be a valid URL")
	assert.Contains(t, msg, "sample.Level must be one of: debug info")
	assert.Contains(t, msg, "sample.Policy is required")
}

func TestStructValidator_Valid(t *testing.T) {
	assert.NoError(t, NewStructValidator().Validate(&sample{
		URL:    "http://gateway.local/dpd",
		Level:  "info",
		Policy: "1",
	}))
}

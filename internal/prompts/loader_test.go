package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, key := range []string{"extract-job-requirement", "extract-candidate-record"} {
		prompt, err := Get("extraction.json", key)
		require.NoError(t, err)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("extraction.json", "no-such-prompt")

	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "extract-job-requirement")

	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	template := MustGet("extraction.json", "extract-job-requirement")

	got := Format(template, map[string]string{"JobText": "We need a Go developer."})

	assert.Contains(t, got, "We need a Go developer.")
	assert.False(t, strings.Contains(got, "{{.JobText}}"))
}

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"title\": \"Engineer\"}\n```"

	assert.Equal(t, `{"title": "Engineer"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"title\": \"Engineer\"}\n```"

	assert.Equal(t, `{"title": "Engineer"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_LanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_BareJSON(t *testing.T) {
	input := `  {"a": 1}  `

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_Empty(t *testing.T) {
	assert.Equal(t, "", CleanJSONBlock(""))
}

func TestConfig_GetModel_FallsBackToStandard(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierStandard: "gemini-2.5-flash"},
	}

	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierLite))
}

func TestConfig_GetModel_NoModels(t *testing.T) {
	config := &Config{Provider: ProviderGemini}

	assert.Equal(t, "", config.GetModel(TierStandard))
}

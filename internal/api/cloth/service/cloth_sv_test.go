package clothService

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		analysis, err := parseAnalysis(`{"type":"top","color":"navy blue","pattern":"solid","fabric":"cotton","description":"A navy blue cotton shirt"}`)
		require.NoError(t, err)
		assert.Equal(t, "top", analysis.Type)
		assert.Equal(t, "A navy blue cotton shirt", analysis.Description)
	})

	t.Run("json wrapped in prose", func(t *testing.T) {
		raw := "Here is the analysis:\n```json\n{\"type\":\"footwear\",\"color\":\"brown\",\"description\":\"Leather boots\"}\n```\nLet me know if you need more."
		analysis, err := parseAnalysis(raw)
		require.NoError(t, err)
		assert.Equal(t, "footwear", analysis.Type)
	})

	t.Run("no braces", func(t *testing.T) {
		_, err := parseAnalysis("This image shows a shirt.")
		require.Error(t, err)
	})

	t.Run("missing essential fields", func(t *testing.T) {
		_, err := parseAnalysis(`{"color":"red"}`)
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseAnalysis(`{"type":"top",`)
		require.Error(t, err)
	})
}

func TestAnalysisCacheKey(t *testing.T) {
	key := analysisCacheKey("https://example.com/shirt.jpg")
	assert.True(t, strings.HasPrefix(key, "cloth:analysis:"))
	assert.Len(t, key, len("cloth:analysis:")+64)

	assert.Equal(t, key, analysisCacheKey("https://example.com/shirt.jpg"))
	assert.NotEqual(t, key, analysisCacheKey("https://example.com/jeans.jpg"))
}

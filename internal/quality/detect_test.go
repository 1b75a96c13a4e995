package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguageZulu(t *testing.T) {
	t.Parallel()

	result := DetectLanguage("Sawubona! Ngiyabonga")

	assert.Equal(t, "zu", result.Detected)
	assert.Equal(t, "isiZulu", result.Name)
	assert.Equal(t, 2, result.Matches)
	assert.Greater(t, result.Confidence, 0.0)
	assert.InDelta(t, 20.0, result.Confidence, 0.0001)
}

func TestDetectLanguageXhosa(t *testing.T) {
	t.Parallel()

	result := DetectLanguage("Molo! Enkosi kakhulu for the support")
	assert.Equal(t, "xh", result.Detected)
	assert.Equal(t, 2, result.Matches)
}

func TestDetectLanguageTieGoesToLowestCode(t *testing.T) {
	t.Parallel()

	// "lekker" is both an Afrikaans and a South African English marker.
	result := DetectLanguage("LEKKER")
	assert.Equal(t, "af", result.Detected)
	assert.Equal(t, 1, result.Matches)
}

func TestDetectLanguageWithoutMarkers(t *testing.T) {
	t.Parallel()

	result := DetectLanguage("hello world")
	assert.Equal(t, DefaultLanguage, result.Detected)
	assert.Equal(t, 0, result.Matches)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestDetectLanguageConfidenceIsBounded(t *testing.T) {
	t.Parallel()

	for _, set := range Languages() {
		content := ""
		for _, marker := range set.Markers {
			content += marker + " "
		}
		result := DetectLanguage(content)
		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 100.0)
	}
}

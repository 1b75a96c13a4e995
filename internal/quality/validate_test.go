package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContentLocalInstagramPost(t *testing.T) {
	t.Parallel()

	result := ValidateContent("Lekker deals this weekend, check it out! #mzansi 🎉", "instagram", "en")

	assert.True(t, result.WithinLimit)
	assert.True(t, result.Factors.HasHashtags)
	assert.True(t, result.Factors.HasEmojis)
	assert.True(t, result.Factors.HasCallToAction)
	assert.True(t, result.Factors.HasSAContext)
	assert.True(t, result.HasLanguageMarkers)
	assert.False(t, result.Factors.HasQuestions)
	assert.Equal(t, 50, result.CharacterCount)
	assert.Equal(t, 94, result.QualityScore)
	assert.Empty(t, result.Issues)
	assert.True(t, result.IsValid)
}

func TestValidateContentTooShort(t *testing.T) {
	t.Parallel()

	result := ValidateContent("Hi", "twitter", "en")

	assert.Equal(t, 2, result.CharacterCount)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "too short")
	assert.False(t, result.IsValid)
	for _, suggestion := range result.Suggestions {
		assert.NotContains(t, suggestion, "expanding", "length suggestions only apply to content within the hard limits")
	}
}

func TestValidateContentOverTwitterLimit(t *testing.T) {
	t.Parallel()

	result := ValidateContent(strings.Repeat("a", 3000), "twitter", "en")

	assert.False(t, result.WithinLimit)
	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0], "3000/280")
	assert.False(t, result.IsValid)
}

func TestValidateContentLimitBoundaries(t *testing.T) {
	t.Parallel()

	for _, limits := range Platforms() {
		limits := limits
		t.Run(limits.Platform, func(t *testing.T) {
			t.Parallel()

			atMax := ValidateContent(strings.Repeat("a", limits.MaxLength), limits.Platform, "en")
			assert.True(t, atMax.WithinLimit)
			assert.Equal(t, atMax.CharacterCount <= limits.MaxLength, atMax.WithinLimit)

			overMax := ValidateContent(strings.Repeat("a", limits.MaxLength+1), limits.Platform, "en")
			assert.False(t, overMax.WithinLimit)
			assert.NotEmpty(t, overMax.Issues)

			atMin := ValidateContent(strings.Repeat("a", limits.MinLength), limits.Platform, "en")
			assert.Empty(t, atMin.Issues)

			underMin := ValidateContent(strings.Repeat("a", limits.MinLength-1), limits.Platform, "en")
			require.Len(t, underMin.Issues, 1)
			assert.Equal(t, "Content is too short (minimum 10 characters)", underMin.Issues[0])
		})
	}
}

func TestValidateContentCountsRunes(t *testing.T) {
	t.Parallel()

	result := ValidateContent("Sawubona Mzansi 🎉🎉", "twitter", "zu")
	assert.Equal(t, 18, result.CharacterCount)
}

func TestValidateContentIsDeterministic(t *testing.T) {
	t.Parallel()

	content := "Howzit Jozi! Pop by the shop this Saturday for a braai? #local"
	first := ValidateContent(content, "facebook", "en")
	second := ValidateContent(content, "facebook", "en")
	assert.Equal(t, first, second)
}

func TestValidateContentUnknownPlatformFallsBackToFacebook(t *testing.T) {
	t.Parallel()

	result := ValidateContent(strings.Repeat("a", 70000), "TikTok", "en")

	assert.Equal(t, PlatformFacebook, result.Platform)
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, "Content exceeds facebook character limit (70000/63206)", result.Issues[0])
}

func TestValidateContentLengthSuggestions(t *testing.T) {
	t.Parallel()

	short := ValidateContent("Fresh bread daily at our bakery", "instagram", "en")
	assert.Contains(t, short.Suggestions, "Consider expanding content to at least 125 characters for optimal instagram engagement")

	long := ValidateContent(strings.Repeat("word ", 50), "twitter", "en")
	assert.True(t, long.WithinLimit)
	assert.Contains(t, long.Suggestions, "Consider condensing content to under 200 characters for optimal twitter engagement")
}

func TestValidateContentLanguageSuggestion(t *testing.T) {
	t.Parallel()

	missing := ValidateContent("Our new store opens on Friday, come visit us", "facebook", "zu")
	assert.False(t, missing.HasLanguageMarkers)
	assert.Contains(t, missing.Suggestions, "Add authentic isiZulu expressions to make the content feel local")

	present := ValidateContent("Sawubona! Our new store opens on Friday, come visit us", "facebook", "zu")
	assert.True(t, present.HasLanguageMarkers)
	for _, suggestion := range present.Suggestions {
		assert.NotContains(t, suggestion, "isiZulu")
	}

	english := ValidateContent("Our new store opens on Friday, come visit us", "facebook", "en")
	for _, suggestion := range english.Suggestions {
		assert.NotContains(t, suggestion, "authentic")
	}
}

func TestValidateContentEngagementSuggestionsRespectPlatform(t *testing.T) {
	t.Parallel()

	plain := "We are hiring engineers in Cape Town this quarter"

	linkedin := ValidateContent(plain, "linkedin", "en")
	assert.Contains(t, linkedin.Suggestions, "Add a call-to-action to encourage engagement")
	assert.NotContains(t, linkedin.Suggestions, "Consider adding emojis to increase visual appeal")
	assert.NotContains(t, linkedin.Suggestions, "Consider asking a question to spark conversation")
	assert.NotContains(t, linkedin.Suggestions, "Add relevant hashtags to improve discoverability")

	facebook := ValidateContent(plain, "facebook", "en")
	assert.Contains(t, facebook.Suggestions, "Consider adding emojis to increase visual appeal")
	assert.Contains(t, facebook.Suggestions, "Consider asking a question to spark conversation")
	assert.NotContains(t, facebook.Suggestions, "Add relevant hashtags to improve discoverability")

	twitter := ValidateContent(plain, "twitter", "en")
	assert.Contains(t, twitter.Suggestions, "Add relevant hashtags to improve discoverability")
}

func TestValidateContentHandlesEmptyInput(t *testing.T) {
	t.Parallel()

	result := ValidateContent("", "", "")

	assert.Equal(t, PlatformFacebook, result.Platform)
	assert.Equal(t, DefaultLanguage, result.Language)
	assert.Equal(t, 0, result.CharacterCount)
	assert.Equal(t, neutralReadability, result.Factors.ReadabilityScore)
	assert.False(t, result.IsValid)
	assert.GreaterOrEqual(t, result.QualityScore, 0)
	assert.LessOrEqual(t, result.QualityScore, 100)
}

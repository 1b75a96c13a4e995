package quality

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const MinimumValidScore = 40

type ValidationResult struct {
	Platform           string         `json:"platform"`
	Language           string         `json:"language"`
	IsValid            bool           `json:"is_valid"`
	QualityScore       int            `json:"quality_score"`
	CharacterCount     int            `json:"character_count"`
	WithinLimit        bool           `json:"within_limit"`
	IsOptimalLength    bool           `json:"is_optimal_length"`
	HasLanguageMarkers bool           `json:"has_language_markers"`
	Issues             []string       `json:"issues"`
	Suggestions        []string       `json:"suggestions"`
	Factors            QualityFactors `json:"factors"`
}

// ValidateContent scores content for a platform and language. It never fails:
// problems are reported through Issues and IsValid.
func ValidateContent(content string, platform string, language string) ValidationResult {
	limits := LimitsFor(platform)
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = DefaultLanguage
	}

	result := ValidationResult{
		Platform:       limits.Platform,
		Language:       language,
		CharacterCount: utf8.RuneCountInString(content),
		Issues:         make([]string, 0, 2),
		Suggestions:    make([]string, 0, 4),
	}

	result.WithinLimit = result.CharacterCount <= limits.MaxLength
	if !result.WithinLimit {
		result.Issues = append(result.Issues, fmt.Sprintf("Content exceeds %s character limit (%d/%d)", limits.Platform, result.CharacterCount, limits.MaxLength))
	}
	tooShort := result.CharacterCount < limits.MinLength
	if tooShort {
		result.Issues = append(result.Issues, fmt.Sprintf("Content is too short (minimum %d characters)", limits.MinLength))
	}

	result.IsOptimalLength = limits.IsOptimal(result.CharacterCount)
	if result.WithinLimit && !tooShort && !result.IsOptimalLength {
		if result.CharacterCount < limits.OptimalMin {
			result.Suggestions = append(result.Suggestions, fmt.Sprintf("Consider expanding content to at least %d characters for optimal %s engagement", limits.OptimalMin, limits.Platform))
		} else {
			result.Suggestions = append(result.Suggestions, fmt.Sprintf("Consider condensing content to under %d characters for optimal %s engagement", limits.OptimalMax, limits.Platform))
		}
	}

	result.HasLanguageMarkers = countMarkers(strings.ToLower(content), MarkersFor(language).Markers) > 0
	if !result.HasLanguageMarkers && language != DefaultLanguage {
		result.Suggestions = append(result.Suggestions, fmt.Sprintf("Add authentic %s expressions to make the content feel local", LanguageName(language)))
	}

	result.Factors = ExtractFeatures(content, limits.Platform, language)
	result.QualityScore = Score(result.Factors, limits.Platform)

	if !result.Factors.HasCallToAction {
		result.Suggestions = append(result.Suggestions, "Add a call-to-action to encourage engagement")
	}
	if !result.Factors.HasEmojis && limits.Platform != PlatformLinkedIn {
		result.Suggestions = append(result.Suggestions, "Consider adding emojis to increase visual appeal")
	}
	if !result.Factors.HasHashtags && (limits.Platform == PlatformInstagram || limits.Platform == PlatformTwitter) {
		result.Suggestions = append(result.Suggestions, "Add relevant hashtags to improve discoverability")
	}
	if !result.Factors.HasQuestions && limits.Platform != PlatformLinkedIn {
		result.Suggestions = append(result.Suggestions, "Consider asking a question to spark conversation")
	}

	result.IsValid = result.WithinLimit && !tooShort && result.QualityScore >= MinimumValidScore
	return result
}

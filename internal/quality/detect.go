package quality

import "strings"

type LanguageDetectionResult struct {
	Detected   string  `json:"detected"`
	Name       string  `json:"name"`
	Matches    int     `json:"matches"`
	Confidence float64 `json:"confidence"`
}

// DetectLanguage picks the language whose markers occur most often in content.
// Ties go to the lowest language code; content with no markers reports English
// with zero confidence.
func DetectLanguage(content string) LanguageDetectionResult {
	lowered := strings.ToLower(content)

	best := LanguageMarkerSet{}
	bestCount := 0
	for _, set := range languageMarkers {
		count := countMarkers(lowered, set.Markers)
		if count > bestCount {
			best = set
			bestCount = count
		}
	}

	if bestCount == 0 {
		return LanguageDetectionResult{
			Detected: DefaultLanguage,
			Name:     LanguageName(DefaultLanguage),
		}
	}

	confidence := float64(bestCount) / float64(len(best.Markers)) * 100
	if confidence > 100 {
		confidence = 100
	}
	return LanguageDetectionResult{
		Detected:   best.Language,
		Name:       best.Name,
		Matches:    bestCount,
		Confidence: confidence,
	}
}

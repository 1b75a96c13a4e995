package quality

import (
	"strings"
	"unicode/utf8"
)

const neutralReadability = 50.0

// callToActionPhrases are matched as raw substrings of the lowercased content.
var callToActionPhrases = []string{
	"click",
	"visit",
	"comment",
	"share",
	"follow",
	"subscribe",
	"sign up",
	"book now",
	"shop now",
	"order now",
	"learn more",
	"find out",
	"check out",
	"check it out",
	"link in bio",
	"tag a friend",
	"tag someone",
	"let us know",
	"dm us",
	"call us",
	"join us",
	"pop by",
	"pop in",
	"swing by",
	"come through",
	"give us a shout",
	"shout us",
}

type QualityFactors struct {
	HasCallToAction  bool    `json:"has_call_to_action"`
	HasEmojis        bool    `json:"has_emojis"`
	HasHashtags      bool    `json:"has_hashtags"`
	HasSAContext     bool    `json:"has_sa_context"`
	CharacterOptimal bool    `json:"character_optimal"`
	HasQuestions     bool    `json:"has_questions"`
	ReadabilityScore float64 `json:"readability_score"`
}

func ExtractFeatures(content string, platform string, language string) QualityFactors {
	lowered := strings.ToLower(content)
	limits := LimitsFor(platform)
	return QualityFactors{
		HasCallToAction:  containsAny(lowered, callToActionPhrases),
		HasEmojis:        containsEmoji(content),
		HasHashtags:      strings.Contains(content, "#"),
		HasSAContext:     countMarkers(lowered, MarkersFor(language).Markers) > 0,
		CharacterOptimal: limits.IsOptimal(utf8.RuneCountInString(content)),
		HasQuestions:     strings.Contains(content, "?"),
		ReadabilityScore: Readability(content),
	}
}

// Readability rewards average sentence lengths of 8 to 25 words and
// penalizes very short content. Degenerate input scores neutral.
func Readability(content string) float64 {
	sentences := countSentences(content)
	words := len(strings.Fields(content))
	if sentences == 0 || words == 0 {
		return neutralReadability
	}

	avgSentenceLength := float64(words) / float64(sentences)
	score := 100.0
	if avgSentenceLength > 25 {
		score -= (avgSentenceLength - 25) * 3
	} else if avgSentenceLength < 8 {
		score -= (8 - avgSentenceLength) * 5
	}
	if words < 10 {
		score -= float64(10-words) * 2
	}
	return clampFloat(score, 0, 100)
}

func countSentences(content string) int {
	segments := strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	total := 0
	for _, segment := range segments {
		if strings.TrimSpace(segment) != "" {
			total++
		}
	}
	return total
}

func containsAny(lowered string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

func containsEmoji(content string) bool {
	for _, r := range content {
		if isEmoji(r) {
			return true
		}
	}
	return false
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators (flags)
		return true
	case r >= 0x1F300 && r <= 0x1F5FF:
		return true
	case r >= 0x1F600 && r <= 0x1F64F:
		return true
	case r >= 0x1F680 && r <= 0x1F6FF:
		return true
	case r >= 0x1F900 && r <= 0x1F9FF:
		return true
	case r >= 0x1FA70 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x26FF:
		return true
	case r >= 0x2700 && r <= 0x27BF:
		return true
	default:
		return false
	}
}

func clampFloat(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

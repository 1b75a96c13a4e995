package quality

const (
	RegenerateScoreThreshold = 30
	RegenerateMaxIssues      = 2
	twitterRetweetHeadroom   = 250
)

// ShouldRegenerate reports whether the content should be discarded and generated again.
func ShouldRegenerate(result ValidationResult) bool {
	return !result.IsValid ||
		result.QualityScore < RegenerateScoreThreshold ||
		len(result.Issues) > RegenerateMaxIssues
}

// ImprovementRecommendations returns the result's suggestions followed by
// platform advice and, last, the local-context reminder.
func ImprovementRecommendations(result ValidationResult, platform string) []string {
	recommendations := make([]string, 0, len(result.Suggestions)+2)
	recommendations = append(recommendations, result.Suggestions...)

	factors := result.Factors
	switch ResolvePlatform(platform) {
	case PlatformInstagram:
		if !factors.HasHashtags {
			recommendations = append(recommendations, "Instagram posts with 9-11 hashtags get the highest engagement")
		}
	case PlatformTwitter:
		if result.CharacterCount > twitterRetweetHeadroom {
			recommendations = append(recommendations, "Shorten the tweet to under 250 characters to leave room for quote retweets")
		}
	case PlatformLinkedIn:
		if !factors.HasCallToAction {
			recommendations = append(recommendations, "End LinkedIn posts with a question to invite professional discussion")
		}
	case PlatformFacebook:
		if !factors.HasQuestions {
			recommendations = append(recommendations, "Ask your community a direct question to drive Facebook comments")
		}
	}

	if !factors.HasSAContext {
		recommendations = append(recommendations, "Add South African expressions to make the content resonate locally")
	}
	return recommendations
}

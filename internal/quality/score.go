package quality

import "math"

const (
	baseScore             = 50.0
	readabilityMultiplier = 0.2
)

// Score combines the factors with the platform's weights into a 0-100 score.
func Score(factors QualityFactors, platform string) int {
	weights := WeightsFor(platform)

	score := baseScore
	if factors.HasCallToAction {
		score += weights.CallToAction
	}
	if factors.HasEmojis {
		score += weights.Emojis
	}
	if factors.HasHashtags {
		score += weights.Hashtags
	}
	if factors.HasSAContext {
		score += weights.SAContext
	}
	if factors.CharacterOptimal {
		score += weights.Optimal
	}
	if factors.HasQuestions {
		score += weights.Questions
	}
	score += (factors.ReadabilityScore - neutralReadability) * readabilityMultiplier

	return int(clampFloat(math.Round(score), 0, 100))
}

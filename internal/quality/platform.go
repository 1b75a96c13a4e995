package quality

import (
	"sort"
	"strings"
)

const (
	PlatformTwitter   = "twitter"
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformLinkedIn  = "linkedin"

	DefaultPlatform = PlatformFacebook
)

type PlatformLimits struct {
	Platform   string `json:"platform"`
	MinLength  int    `json:"min_length"`
	MaxLength  int    `json:"max_length"`
	OptimalMin int    `json:"optimal_min"`
	OptimalMax int    `json:"optimal_max"`
}

// Weights are the points added to the base score for each factor that holds.
type Weights struct {
	CallToAction float64 `json:"call_to_action"`
	Emojis       float64 `json:"emojis"`
	Hashtags     float64 `json:"hashtags"`
	SAContext    float64 `json:"sa_context"`
	Optimal      float64 `json:"optimal"`
	Questions    float64 `json:"questions"`
}

var platformLimits = map[string]PlatformLimits{
	PlatformTwitter:   {Platform: PlatformTwitter, MinLength: 10, MaxLength: 280, OptimalMin: 70, OptimalMax: 200},
	PlatformInstagram: {Platform: PlatformInstagram, MinLength: 10, MaxLength: 2200, OptimalMin: 125, OptimalMax: 1000},
	PlatformFacebook:  {Platform: PlatformFacebook, MinLength: 10, MaxLength: 63206, OptimalMin: 40, OptimalMax: 500},
	PlatformLinkedIn:  {Platform: PlatformLinkedIn, MinLength: 10, MaxLength: 3000, OptimalMin: 50, OptimalMax: 700},
}

var platformWeights = map[string]Weights{
	PlatformInstagram: {CallToAction: 10, Emojis: 8, Hashtags: 12, SAContext: 8, Optimal: 6, Questions: 6},
	PlatformTwitter:   {CallToAction: 8, Emojis: 5, Hashtags: 10, SAContext: 10, Optimal: 8, Questions: 9},
	PlatformFacebook:  {CallToAction: 10, Emojis: 6, Hashtags: 5, SAContext: 8, Optimal: 8, Questions: 10},
	PlatformLinkedIn:  {CallToAction: 12, Emojis: 2, Hashtags: 6, SAContext: 6, Optimal: 10, Questions: 8},
}

// ResolvePlatform normalizes a platform name. Unknown names resolve to DefaultPlatform.
func ResolvePlatform(platform string) string {
	normalized := normalizePlatform(platform)
	if _, ok := platformLimits[normalized]; ok {
		return normalized
	}
	return DefaultPlatform
}

func IsKnownPlatform(platform string) bool {
	_, ok := platformLimits[normalizePlatform(platform)]
	return ok
}

func LimitsFor(platform string) PlatformLimits {
	return platformLimits[ResolvePlatform(platform)]
}

func WeightsFor(platform string) Weights {
	return platformWeights[ResolvePlatform(platform)]
}

// Platforms returns every known platform's limits ordered by name.
func Platforms() []PlatformLimits {
	out := make([]PlatformLimits, 0, len(platformLimits))
	for _, limits := range platformLimits {
		out = append(out, limits)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Platform < out[j].Platform
	})
	return out
}

func (l PlatformLimits) IsOptimal(characterCount int) bool {
	return characterCount >= l.OptimalMin && characterCount <= l.OptimalMax
}

func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

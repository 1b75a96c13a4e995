package cmd

import (
	"fmt"

	"github.com/bilalbayram/postcheck/internal/quality"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type validationView struct {
	quality.ValidationResult
	ShouldRegenerate bool     `json:"should_regenerate"`
	Recommendations  []string `json:"recommendations"`
}

func (v validationView) Rows() []map[string]any {
	return []map[string]any{{
		"platform":          v.Platform,
		"language":          v.Language,
		"quality_score":     v.QualityScore,
		"is_valid":          v.IsValid,
		"character_count":   v.CharacterCount,
		"should_regenerate": v.ShouldRegenerate,
		"issues":            v.Issues,
	}}
}

func newValidationView(content string, platform string, language string) validationView {
	result := quality.ValidateContent(content, platform, language)
	return validationView{
		ValidationResult: result,
		ShouldRegenerate: quality.ShouldRegenerate(result),
		Recommendations:  quality.ImprovementRecommendations(result, platform),
	}
}

func logValidation(runtime Runtime, cmd *cobra.Command, view validationView) {
	runtime.Logger(cmd).WithFields(logrus.Fields{
		"platform":          view.Platform,
		"language":          view.Language,
		"quality_score":     view.QualityScore,
		"is_valid":          view.IsValid,
		"should_regenerate": view.ShouldRegenerate,
	}).Debug("validated content")
}

func NewValidateCommand(runtime Runtime) *cobra.Command {
	var (
		content contentFlags
		target  targetFlags
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Score post text for a platform and language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const commandName = "postcheck validate"

			text, err := content.read(cmd)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}
			platform, language, err := target.resolve(runtime)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}

			view := newValidationView(text, platform, language)
			logValidation(runtime, cmd, view)
			return writeSuccess(cmd, runtime, commandName, view)
		},
	}
	content.register(cmd)
	target.register(cmd)
	return cmd
}

// NewGateCommand validates like `validate` but fails with ErrRegenerationRequired
// when the regeneration policy rejects the content.
func NewGateCommand(runtime Runtime) *cobra.Command {
	var (
		content contentFlags
		target  targetFlags
	)

	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Exit non-zero when post text should be regenerated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const commandName = "postcheck gate"

			text, err := content.read(cmd)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}
			platform, language, err := target.resolve(runtime)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}

			view := newValidationView(text, platform, language)
			logValidation(runtime, cmd, view)
			if err := writeSuccess(cmd, runtime, commandName, view); err != nil {
				return err
			}
			if view.ShouldRegenerate {
				return writeCommandError(cmd, runtime, commandName, fmt.Errorf(
					"%w: quality score %d, %s",
					ErrRegenerationRequired, view.QualityScore, formatCount(len(view.Issues), "issue"),
				))
			}
			return nil
		},
	}
	content.register(cmd)
	target.register(cmd)
	return cmd
}

type recommendationView struct {
	Platform        string   `json:"platform"`
	QualityScore    int      `json:"quality_score"`
	Recommendations []string `json:"recommendations"`
}

func (v recommendationView) Rows() []map[string]any {
	rows := make([]map[string]any, 0, len(v.Recommendations))
	for idx, recommendation := range v.Recommendations {
		rows = append(rows, map[string]any{
			"rank":           idx + 1,
			"recommendation": recommendation,
		})
	}
	return rows
}

func NewRecommendCommand(runtime Runtime) *cobra.Command {
	var (
		content contentFlags
		target  targetFlags
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "List revision advice for post text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const commandName = "postcheck recommend"

			text, err := content.read(cmd)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}
			platform, language, err := target.resolve(runtime)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}

			result := quality.ValidateContent(text, platform, language)
			return writeSuccess(cmd, runtime, commandName, recommendationView{
				Platform:        result.Platform,
				QualityScore:    result.QualityScore,
				Recommendations: quality.ImprovementRecommendations(result, platform),
			})
		},
	}
	content.register(cmd)
	target.register(cmd)
	return cmd
}

type detectionView struct {
	quality.LanguageDetectionResult
}

func (v detectionView) Rows() []map[string]any {
	return []map[string]any{{
		"detected":   v.Detected,
		"name":       v.Name,
		"matches":    v.Matches,
		"confidence": v.Confidence,
	}}
}

func NewDetectCommand(runtime Runtime) *cobra.Command {
	var content contentFlags

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Guess the dominant language of post text from lexical markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const commandName = "postcheck detect"

			text, err := content.read(cmd)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}
			detection := quality.DetectLanguage(text)
			runtime.Logger(cmd).WithFields(logrus.Fields{
				"detected":   detection.Detected,
				"confidence": detection.Confidence,
			}).Debug("detected language")
			return writeSuccess(cmd, runtime, commandName, detectionView{LanguageDetectionResult: detection})
		},
	}
	content.register(cmd)
	return cmd
}

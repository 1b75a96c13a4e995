package cmd

import (
	"strings"

	"github.com/bilalbayram/postcheck/internal/quality"
	"github.com/spf13/cobra"
)

type platformRow struct {
	quality.PlatformLimits
	Weights quality.Weights `json:"weights"`
}

type platformTable []platformRow

func (t platformTable) Rows() []map[string]any {
	rows := make([]map[string]any, 0, len(t))
	for _, row := range t {
		rows = append(rows, map[string]any{
			"platform":    row.Platform,
			"min_length":  row.MinLength,
			"max_length":  row.MaxLength,
			"optimal_min": row.OptimalMin,
			"optimal_max": row.OptimalMax,
		})
	}
	return rows
}

func (t platformTable) Items() []any {
	items := make([]any, 0, len(t))
	for _, row := range t {
		items = append(items, row)
	}
	return items
}

type languageTable []quality.LanguageMarkerSet

func (t languageTable) Rows() []map[string]any {
	rows := make([]map[string]any, 0, len(t))
	for _, set := range t {
		rows = append(rows, map[string]any{
			"language": set.Language,
			"name":     set.Name,
			"markers":  strings.Join(set.Markers, ", "),
		})
	}
	return rows
}

func (t languageTable) Items() []any {
	items := make([]any, 0, len(t))
	for _, set := range t {
		items = append(items, set)
	}
	return items
}

func NewPlatformsCommand(runtime Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List platform length limits and scoring weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limits := quality.Platforms()
			table := make(platformTable, 0, len(limits))
			for _, entry := range limits {
				table = append(table, platformRow{
					PlatformLimits: entry,
					Weights:        quality.WeightsFor(entry.Platform),
				})
			}
			return writeSuccess(cmd, runtime, "postcheck platforms", table)
		},
	}
}

func NewLanguagesCommand(runtime Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their lexical markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeSuccess(cmd, runtime, "postcheck languages", languageTable(quality.Languages()))
		},
	}
}

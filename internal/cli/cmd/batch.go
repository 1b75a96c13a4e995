package cmd

import (
	"fmt"

	"github.com/bilalbayram/postcheck/internal/batch"
	"github.com/spf13/cobra"
)

func NewBatchCommand(runtime Runtime) *cobra.Command {
	var (
		filePath         string
		target           targetFlags
		failOnRegenerate bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Validate every post in a YAML or JSONL file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const commandName = "postcheck batch"

			if filePath == "" {
				return writeCommandError(cmd, runtime, commandName, inputErrorf("batch file is required (--file)"))
			}
			posts, err := batch.Load(filePath)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, &InputError{Err: err})
			}
			platform, language, err := target.resolve(runtime)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}

			report := batch.Run(posts, batch.Defaults{Platform: platform, Language: language}, runtime.Logger(cmd))
			if err := writeSuccess(cmd, runtime, commandName, report); err != nil {
				return err
			}
			if failOnRegenerate && report.Summary.Regenerate > 0 {
				return writeCommandError(cmd, runtime, commandName, fmt.Errorf(
					"%w: %s of %d",
					ErrRegenerationRequired, formatCount(report.Summary.Regenerate, "post"), report.Summary.Total,
				))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "", "Path to a .yaml/.yml or .jsonl post file")
	cmd.Flags().BoolVar(&failOnRegenerate, "fail-on-regenerate", false, "Exit non-zero when any post should be regenerated")
	target.register(cmd)
	return cmd
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/bilalbayram/postcheck/internal/output"
	"github.com/spf13/cobra"
)

const (
	remediationCategoryInput   = "input"
	remediationCategoryConfig  = "config"
	remediationCategoryQuality = "quality"
	remediationCategoryUnknown = "unknown"
)

func writeSuccess(cmd *cobra.Command, runtime Runtime, commandName string, data any) error {
	envelope := output.NewEnvelope(commandName, true, data, nil)
	return output.Write(cmd.OutOrStdout(), selectedOutputFormat(runtime), envelope)
}

func writeCommandError(cmd *cobra.Command, runtime Runtime, commandName string, err error) error {
	if err == nil {
		return nil
	}

	envelope := output.NewEnvelope(commandName, false, nil, classifyError(err))
	if writeErr := output.Write(cmd.ErrOrStderr(), selectedOutputFormat(runtime), envelope); writeErr != nil {
		return fmt.Errorf("%w (secondary output error: %v)", err, writeErr)
	}
	return &printedError{err: err}
}

func classifyError(err error) *output.ErrorInfo {
	info := &output.ErrorInfo{
		Type:      "error",
		Message:   err.Error(),
		Retryable: false,
		Remediation: &output.Remediation{
			Category: remediationCategoryUnknown,
			Summary:  "Unhandled command failure.",
			Actions: []string{
				"Review the error message and fix input/configuration before retrying.",
			},
		},
	}

	var inputErr *InputError
	var configErr *ConfigError
	switch {
	case errors.Is(err, ErrRegenerationRequired):
		info.Type = "regeneration_required"
		info.Retryable = true
		info.Remediation = &output.Remediation{
			Category: remediationCategoryQuality,
			Summary:  "Content did not pass the quality gate.",
			Actions: []string{
				"Regenerate the content and validate again.",
				"Run `postcheck recommend` for concrete revision advice.",
			},
		}
	case errors.As(err, &inputErr):
		info.Type = "input_error"
		info.Remediation = &output.Remediation{
			Category: remediationCategoryInput,
			Summary:  "Command input is missing or malformed.",
			Actions: []string{
				"Pass content with exactly one of --content or --file.",
				"Run the command with --help to see accepted flags.",
			},
		}
	case errors.As(err, &configErr):
		info.Type = "config_error"
		info.Remediation = &output.Remediation{
			Category: remediationCategoryConfig,
			Summary:  "Configuration could not be loaded or saved.",
			Actions: []string{
				"Check the config file referenced by --config or POSTCHECK_CONFIG.",
				"Run `postcheck profile list` to inspect configured profiles.",
			},
		}
	}
	return info
}

func selectedOutputFormat(runtime Runtime) string {
	if runtime.Output == nil {
		return "json"
	}
	if *runtime.Output == "" {
		return "json"
	}
	return *runtime.Output
}

// printedError marks errors whose envelope was already written to stderr.
type printedError struct {
	err error
}

func (e *printedError) Error() string {
	if e == nil || e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *printedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

func (e *printedError) AlreadyPrinted() bool {
	return true
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// requireSubcommand prints the group's help to stderr and returns an error
// that the entry point will not print a second time.
func requireSubcommand(cmd *cobra.Command, commandName string) error {
	message := fmt.Sprintf("%s requires a subcommand", commandName)
	if cmd == nil {
		return &printedError{err: errors.New(message)}
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), message)

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	if stdout != stderr {
		cmd.SetOut(stderr)
		defer cmd.SetOut(stdout)
	}
	if err := cmd.Help(); err != nil {
		return &printedError{err: fmt.Errorf("%s: print help: %w", message, err)}
	}
	return &printedError{err: &InputError{Err: errors.New(message)}}
}

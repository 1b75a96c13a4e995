package cli

import (
	"fmt"
	"strings"

	"github.com/bilalbayram/postcheck/internal/cli/cmd"
	"github.com/bilalbayram/postcheck/internal/output"
	"github.com/spf13/cobra"
)

const (
	appName = "postcheck"
	Version = "0.3.0"
)

type GlobalFlags struct {
	Profile string
	Output  string
	Debug   bool
	Config  string
}

func Execute() error {
	loadEnvFiles(".")
	root := NewRootCommand()
	return asExitError(root.Execute())
}

func NewRootCommand() *cobra.Command {
	flags := &GlobalFlags{}
	runtime := cmd.Runtime{
		Profile:    &flags.Profile,
		Output:     &flags.Output,
		Debug:      &flags.Debug,
		ConfigPath: &flags.Config,
	}

	root := &cobra.Command{
		Use:               appName,
		Short:             "Social post quality checks",
		Long:              "postcheck scores AI-generated social posts against platform limits, engagement heuristics and South African language markers.",
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: validateGlobalFlags(flags),
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.Flags().BoolP("version", "v", false, "Print the postcheck version")

	root.PersistentFlags().StringVar(&flags.Profile, "profile", "", "Profile name (defaults to default_profile)")
	root.PersistentFlags().StringVar(&flags.Output, "output", "json", "Output format: json|jsonl|table|csv")
	root.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flags.Config, "config", "", "Config file path (default $POSTCHECK_CONFIG or ~/.postcheck/config.yaml)")

	root.AddCommand(cmd.NewValidateCommand(runtime))
	root.AddCommand(cmd.NewGateCommand(runtime))
	root.AddCommand(cmd.NewRecommendCommand(runtime))
	root.AddCommand(cmd.NewDetectCommand(runtime))
	root.AddCommand(cmd.NewBatchCommand(runtime))
	root.AddCommand(cmd.NewPlatformsCommand(runtime))
	root.AddCommand(cmd.NewLanguagesCommand(runtime))
	root.AddCommand(cmd.NewProfileCommand(runtime))
	root.AddCommand(cmd.NewServeCommand(runtime))

	return root
}

func validateGlobalFlags(flags *GlobalFlags) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if output.IsSupportedFormat(flags.Output) {
			flags.Output = strings.ToLower(strings.TrimSpace(flags.Output))
			return nil
		}
		return WrapExit(ExitCodeInput, fmt.Errorf("invalid --output value %q; expected %s", flags.Output, strings.Join(output.Formats, "|")))
	}
}

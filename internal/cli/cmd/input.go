package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bilalbayram/postcheck/internal/config"
	"github.com/spf13/cobra"
)

type contentFlags struct {
	content string
	file    string
}

func (f *contentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.content, "content", "", "Post text to check")
	cmd.Flags().StringVar(&f.file, "file", "", "Read post text from a file (- for stdin)")
}

func (f *contentFlags) read(cmd *cobra.Command) (string, error) {
	hasContent := f.content != ""
	hasFile := strings.TrimSpace(f.file) != ""
	switch {
	case hasContent && hasFile:
		return "", inputErrorf("--content and --file are mutually exclusive")
	case hasContent:
		return f.content, nil
	case !hasFile:
		return "", inputErrorf("content is required (--content or --file)")
	}

	var (
		data []byte
		err  error
	)
	if f.file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(f.file)
	}
	if err != nil {
		return "", inputErrorf("read content from %s: %w", f.file, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

type targetFlags struct {
	platform string
	language string
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.platform, "platform", "", "Target platform: twitter|instagram|facebook|linkedin (default from profile)")
	cmd.Flags().StringVar(&f.language, "language", "", "Target language code, e.g. en, af, zu (default from profile)")
}

// resolve applies flag > profile > built-in default for platform and language.
func (f *targetFlags) resolve(runtime Runtime) (string, string, error) {
	path, err := runtime.ResolveConfigPath()
	if err != nil {
		return "", "", configError(err)
	}
	cfg, err := config.LoadOrEmpty(path)
	if err != nil {
		return "", "", configError(err)
	}
	_, profile, err := cfg.ResolveProfile(runtime.ProfileName())
	if err != nil {
		return "", "", configError(err)
	}

	platform := strings.TrimSpace(f.platform)
	if platform == "" {
		platform = profile.Platform
	}
	language := strings.TrimSpace(f.language)
	if language == "" {
		language = profile.Language
	}
	return platform, language, nil
}

func formatCount(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}

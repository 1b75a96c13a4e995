package cmd

import (
	"strings"

	"github.com/bilalbayram/postcheck/internal/config"
	"github.com/spf13/cobra"
)

type profileView struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Language string `json:"language"`
	Default  bool   `json:"default"`
}

func (v profileView) Rows() []map[string]any {
	return []map[string]any{{
		"name":     v.Name,
		"platform": v.Platform,
		"language": v.Language,
		"default":  v.Default,
	}}
}

type profileList []profileView

func (l profileList) Rows() []map[string]any {
	rows := make([]map[string]any, 0, len(l))
	for _, profile := range l {
		rows = append(rows, profile.Rows()...)
	}
	return rows
}

func (l profileList) Items() []any {
	items := make([]any, 0, len(l))
	for _, profile := range l {
		items = append(items, profile)
	}
	return items
}

func NewProfileCommand(runtime Runtime) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage named platform/language defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return requireSubcommand(cmd, "profile")
		},
	}
	profileCmd.AddCommand(newProfileSetCommand(runtime))
	profileCmd.AddCommand(newProfileListCommand(runtime))
	profileCmd.AddCommand(newProfileShowCommand(runtime))
	return profileCmd
}

func newProfileSetCommand(runtime Runtime) *cobra.Command {
	var (
		platform   string
		language   string
		setDefault bool
	)

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or update a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			const commandName = "postcheck profile set"

			name := strings.TrimSpace(args[0])
			path, cfg, err := loadConfig(runtime)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}

			profile := cfg.Profiles[name]
			if platform != "" {
				profile.Platform = platform
			}
			if language != "" {
				profile.Language = language
			}
			if err := cfg.UpsertProfile(name, profile); err != nil {
				return writeCommandError(cmd, runtime, commandName, &InputError{Err: err})
			}
			if setDefault {
				cfg.DefaultProfile = name
			}
			if err := config.Save(path, cfg); err != nil {
				return writeCommandError(cmd, runtime, commandName, configError(err))
			}

			saved := cfg.Profiles[name]
			return writeSuccess(cmd, runtime, commandName, profileView{
				Name:     name,
				Platform: saved.Platform,
				Language: saved.Language,
				Default:  cfg.DefaultProfile == name,
			})
		},
	}
	cmd.Flags().StringVar(&platform, "platform", "", "Default platform for this profile")
	cmd.Flags().StringVar(&language, "language", "", "Default language code for this profile")
	cmd.Flags().BoolVar(&setDefault, "default", false, "Make this the default profile")
	return cmd
}

func newProfileListCommand(runtime Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const commandName = "postcheck profile list"

			_, cfg, err := loadConfig(runtime)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}

			profiles := make(profileList, 0, len(cfg.Profiles))
			for _, name := range cfg.ProfileNames() {
				profile := cfg.Profiles[name]
				profiles = append(profiles, profileView{
					Name:     name,
					Platform: profile.Platform,
					Language: profile.Language,
					Default:  cfg.DefaultProfile == name,
				})
			}
			return writeSuccess(cmd, runtime, commandName, profiles)
		},
	}
}

func newProfileShowCommand(runtime Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show the resolved platform and language for a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			const commandName = "postcheck profile show"

			_, cfg, err := loadConfig(runtime)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, err)
			}

			requested := runtime.ProfileName()
			if len(args) == 1 {
				requested = strings.TrimSpace(args[0])
			}
			name, profile, err := cfg.ResolveProfile(requested)
			if err != nil {
				return writeCommandError(cmd, runtime, commandName, configError(err))
			}
			return writeSuccess(cmd, runtime, commandName, profileView{
				Name:     name,
				Platform: profile.Platform,
				Language: profile.Language,
				Default:  name != "" && cfg.DefaultProfile == name,
			})
		},
	}
}

func loadConfig(runtime Runtime) (string, *config.Config, error) {
	path, err := runtime.ResolveConfigPath()
	if err != nil {
		return "", nil, configError(err)
	}
	cfg, err := config.LoadOrEmpty(path)
	if err != nil {
		return "", nil, configError(err)
	}
	return path, cfg, nil
}

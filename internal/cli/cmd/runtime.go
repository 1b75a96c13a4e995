package cmd

import (
	"github.com/bilalbayram/postcheck/internal/config"
	"github.com/bilalbayram/postcheck/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type Runtime struct {
	Profile    *string
	Output     *string
	Debug      *bool
	ConfigPath *string
}

func (r Runtime) ProfileName() string {
	if r.Profile == nil {
		return ""
	}
	return *r.Profile
}

func (r Runtime) DebugEnabled() bool {
	return r.Debug != nil && *r.Debug
}

func (r Runtime) ResolveConfigPath() (string, error) {
	if r.ConfigPath != nil && *r.ConfigPath != "" {
		return *r.ConfigPath, nil
	}
	return config.DefaultPath()
}

// Logger writes JSON entries to the command's stderr. --debug wins over LOG_LEVEL.
func (r Runtime) Logger(cmd *cobra.Command) *logrus.Logger {
	return r.LoggerWithDefault(cmd, logrus.WarnLevel)
}

// LoggerWithDefault is Logger with fallback used when LOG_LEVEL is unset.
func (r Runtime) LoggerWithDefault(cmd *cobra.Command, fallback logrus.Level) *logrus.Logger {
	level := logging.LevelFromEnv(fallback)
	if r.DebugEnabled() {
		level = logrus.DebugLevel
	}
	return logging.New(cmd.ErrOrStderr(), level)
}

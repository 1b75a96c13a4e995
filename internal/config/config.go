package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bilalbayram/postcheck/internal/quality"
	"gopkg.in/yaml.v3"
)

const (
	SchemaVersion = 1
	PathEnvVar    = "POSTCHECK_CONFIG"
)

type Profile struct {
	Platform string `yaml:"platform"`
	Language string `yaml:"language"`
}

type Config struct {
	SchemaVersion  int                `yaml:"schema_version"`
	DefaultProfile string             `yaml:"default_profile,omitempty"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

// DefaultPath honours POSTCHECK_CONFIG before falling back to ~/.postcheck/config.yaml.
func DefaultPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(PathEnvVar)); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home directory: %w", err)
	}
	return filepath.Join(home, ".postcheck", "config.yaml"), nil
}

func New() *Config {
	return &Config{
		SchemaVersion: SchemaVersion,
		Profiles:      map[string]Profile{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: config file does not exist at %s", os.ErrNotExist, path)
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrEmpty returns an empty config when the file does not exist yet.
func LoadOrEmpty(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	return nil, err
}

func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory for %s: %w", path, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tmpFile.Chmod(0o600); err != nil {
		tmpFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("replace config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.SchemaVersion != SchemaVersion {
		return fmt.Errorf("unsupported config schema_version=%d (expected %d)", c.SchemaVersion, SchemaVersion)
	}
	if c.Profiles == nil {
		return errors.New("config profiles map is required")
	}
	for name, profile := range c.Profiles {
		if err := validateProfile(name, profile); err != nil {
			return err
		}
	}
	if c.DefaultProfile != "" {
		if _, ok := c.Profiles[c.DefaultProfile]; !ok {
			return fmt.Errorf("default_profile %q does not exist", c.DefaultProfile)
		}
	}
	return nil
}

// ResolveProfile returns the named profile, or the default profile when name is empty.
// An empty name with no default configured yields the built-in defaults.
func (c *Config) ResolveProfile(name string) (string, Profile, error) {
	if c == nil {
		return "", Profile{}, errors.New("config is nil")
	}
	if name == "" {
		name = c.DefaultProfile
	}
	if name == "" {
		return "", applyProfileDefaults(Profile{}), nil
	}
	profile, ok := c.Profiles[name]
	if !ok {
		return "", Profile{}, fmt.Errorf("profile %q does not exist", name)
	}
	return name, applyProfileDefaults(profile), nil
}

func (c *Config) UpsertProfile(name string, profile Profile) error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Profiles == nil {
		c.Profiles = map[string]Profile{}
	}
	profile = normalizeProfile(applyProfileDefaults(profile))
	if err := validateProfile(name, profile); err != nil {
		return err
	}

	c.Profiles[name] = profile
	if c.DefaultProfile == "" {
		c.DefaultProfile = name
	}
	return nil
}

func (c *Config) ProfileNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func applyProfileDefaults(profile Profile) Profile {
	if profile.Platform == "" {
		profile.Platform = quality.DefaultPlatform
	}
	if profile.Language == "" {
		profile.Language = quality.DefaultLanguage
	}
	return profile
}

func normalizeProfile(profile Profile) Profile {
	profile.Platform = strings.ToLower(strings.TrimSpace(profile.Platform))
	profile.Language = strings.ToLower(strings.TrimSpace(profile.Language))
	return profile
}

func validateProfile(name string, profile Profile) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("profile name cannot be empty")
	}
	if profile.Platform == "" {
		return fmt.Errorf("profile %q platform is required", name)
	}
	if !quality.IsKnownPlatform(profile.Platform) {
		return fmt.Errorf("profile %q platform %q is not supported", name, profile.Platform)
	}
	if profile.Language == "" {
		return fmt.Errorf("profile %q language is required", name)
	}
	if !quality.IsKnownLanguage(profile.Language) {
		return fmt.Errorf("profile %q language %q is not supported", name, profile.Language)
	}
	return nil
}

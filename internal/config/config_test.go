package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := New()
	if err := cfg.UpsertProfile("brand-zu", Profile{
		Platform: "Instagram",
		Language: "ZU",
	}); err != nil {
		t.Fatalf("upsert profile: %v", err)
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if loaded.SchemaVersion != SchemaVersion {
		t.Fatalf("unexpected schema version: got=%d want=%d", loaded.SchemaVersion, SchemaVersion)
	}
	if loaded.DefaultProfile != "brand-zu" {
		t.Fatalf("unexpected default profile: got=%s", loaded.DefaultProfile)
	}
	profile := loaded.Profiles["brand-zu"]
	if profile.Platform != "instagram" || profile.Language != "zu" {
		t.Fatalf("unexpected profile: %#v", profile)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("unexpected config permissions: %v", info.Mode().Perm())
	}
}

func TestLoadFailsOnUnknownField(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := `
schema_version: 1
default_profile: brand
profiles:
  brand:
    platform: twitter
    language: en
    unknown_field: should-fail
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected load to fail on unknown field")
	}
	if !strings.Contains(err.Error(), "field unknown_field not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateFailsOnSchemaMismatch(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.SchemaVersion = 99
	cfg.Profiles = map[string]Profile{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected schema mismatch error")
	}
	if !strings.Contains(err.Error(), "unsupported config schema_version") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpsertProfileRejectsUnsupportedValues(t *testing.T) {
	t.Parallel()

	cfg := New()
	err := cfg.UpsertProfile("brand", Profile{Platform: "myspace", Language: "en"})
	if err == nil || !strings.Contains(err.Error(), `platform "myspace" is not supported`) {
		t.Fatalf("unexpected platform error: %v", err)
	}

	err = cfg.UpsertProfile("brand", Profile{Platform: "twitter", Language: "fr"})
	if err == nil || !strings.Contains(err.Error(), `language "fr" is not supported`) {
		t.Fatalf("unexpected language error: %v", err)
	}

	if len(cfg.Profiles) != 0 {
		t.Fatalf("expected no profiles to be stored, got %#v", cfg.Profiles)
	}
}

func TestUpsertProfileAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg := New()
	if err := cfg.UpsertProfile("plain", Profile{}); err != nil {
		t.Fatalf("upsert profile: %v", err)
	}
	profile := cfg.Profiles["plain"]
	if profile.Platform != "facebook" || profile.Language != "en" {
		t.Fatalf("unexpected defaults: %#v", profile)
	}
}

func TestResolveProfile(t *testing.T) {
	t.Parallel()

	cfg := New()
	name, profile, err := cfg.ResolveProfile("")
	if err != nil {
		t.Fatalf("resolve without profiles: %v", err)
	}
	if name != "" || profile.Platform != "facebook" || profile.Language != "en" {
		t.Fatalf("unexpected built-in profile: name=%q profile=%#v", name, profile)
	}

	if err := cfg.UpsertProfile("first", Profile{Platform: "twitter", Language: "af"}); err != nil {
		t.Fatalf("upsert first: %v", err)
	}
	if err := cfg.UpsertProfile("second", Profile{Platform: "linkedin", Language: "xh"}); err != nil {
		t.Fatalf("upsert second: %v", err)
	}

	name, profile, err = cfg.ResolveProfile("")
	if err != nil {
		t.Fatalf("resolve default: %v", err)
	}
	if name != "first" || profile.Platform != "twitter" {
		t.Fatalf("unexpected default resolution: name=%q profile=%#v", name, profile)
	}

	name, profile, err = cfg.ResolveProfile("second")
	if err != nil {
		t.Fatalf("resolve named: %v", err)
	}
	if name != "second" || profile.Language != "xh" {
		t.Fatalf("unexpected named resolution: name=%q profile=%#v", name, profile)
	}

	if _, _, err := cfg.ResolveProfile("missing"); err == nil {
		t.Fatal("expected missing profile error")
	}

	if got := strings.Join(cfg.ProfileNames(), ","); got != "first,second" {
		t.Fatalf("unexpected profile names: %s", got)
	}
}

func TestLoadOrEmptyMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadOrEmpty(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load or empty: %v", err)
	}
	if cfg.SchemaVersion != SchemaVersion || len(cfg.Profiles) != 0 {
		t.Fatalf("unexpected empty config: %#v", cfg)
	}
}

func TestDefaultPathHonoursEnvOverride(t *testing.T) {
	t.Setenv(PathEnvVar, "/tmp/postcheck-test/config.yaml")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if path != "/tmp/postcheck-test/config.yaml" {
		t.Fatalf("unexpected path: %s", path)
	}
}

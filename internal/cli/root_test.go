package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bilalbayram/postcheck/internal/cli/cmd"
)

func TestRootRegistersCommands(t *testing.T) {
	t.Parallel()

	root := NewRootCommand()
	for _, path := range [][]string{
		{"validate"},
		{"gate"},
		{"recommend"},
		{"detect"},
		{"batch"},
		{"platforms"},
		{"languages"},
		{"profile", "set"},
		{"profile", "list"},
		{"profile", "show"},
		{"serve"},
	} {
		found, _, err := root.Find(path)
		if err != nil {
			t.Fatalf("find %v: %v", path, err)
		}
		if found == nil || found.Name() != path[len(path)-1] {
			t.Fatalf("expected %v command, got %#v", path, found)
		}
	}
}

func TestRootVersionFlags(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"--version", "-v"} {
		flag := flag
		t.Run(flag, func(t *testing.T) {
			t.Parallel()

			root := NewRootCommand()
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			root.SetOut(stdout)
			root.SetErr(stderr)
			root.SetArgs([]string{flag})

			if err := root.Execute(); err != nil {
				t.Fatalf("execute %s: %v", flag, err)
			}

			if got := strings.TrimSpace(stdout.String()); got != Version {
				t.Fatalf("unexpected version output: got %q want %q", got, Version)
			}
			if stderr.Len() != 0 {
				t.Fatalf("expected empty stderr for %s, got %q", flag, stderr.String())
			}
		})
	}
}

func TestRootRejectsInvalidOutputFormat(t *testing.T) {
	t.Parallel()

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"platforms", "--output", "xml"})

	err := asExitError(root.Execute())
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.Code != ExitCodeInput {
		t.Fatalf("unexpected exit code: got=%d want=%d", exitErr.Code, ExitCodeInput)
	}
}

func TestSubcommandRequiredErrorsPrintHelp(t *testing.T) {
	t.Parallel()

	root := NewRootCommand()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs([]string{"profile"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected subcommand required error")
	}
	if err.Error() != "profile requires a subcommand" {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr.String(), "postcheck profile") {
		t.Fatalf("expected usage on stderr, got %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected empty stdout, got %q", stdout.String())
	}

	var exitErr *ExitError
	if !errors.As(asExitError(err), &exitErr) || exitErr.Code != ExitCodeInput {
		t.Fatalf("expected input exit code, got %v", asExitError(err))
	}
}

func TestGateExitCodeWhenRegenerationRequired(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"gate", "--config", configPath, "--content", "Hi", "--platform", "twitter"})

	err := asExitError(root.Execute())
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.Code != ExitCodeRegenerate {
		t.Fatalf("unexpected exit code: got=%d want=%d", exitErr.Code, ExitCodeRegenerate)
	}
	if !errors.Is(err, cmd.ErrRegenerationRequired) {
		t.Fatalf("expected regeneration sentinel, got %v", err)
	}
}

func TestAsExitErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		code int
	}{
		{name: "input", err: &cmd.InputError{Err: errors.New("bad")}, code: ExitCodeInput},
		{name: "config", err: &cmd.ConfigError{Err: errors.New("bad")}, code: ExitCodeConfig},
		{name: "unknown", err: errors.New("boom"), code: ExitCodeUnknown},
		{name: "existing", err: WrapExit(ExitCodeConfig, errors.New("kept")), code: ExitCodeConfig},
	}
	for _, tc := range cases {
		var exitErr *ExitError
		if !errors.As(asExitError(tc.err), &exitErr) {
			t.Fatalf("%s: expected exit error", tc.name)
		}
		if exitErr.Code != tc.code {
			t.Fatalf("%s: unexpected exit code: got=%d want=%d", tc.name, exitErr.Code, tc.code)
		}
	}
	if asExitError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("POSTCHECK_TEST_ENV", "")
	t.Setenv("POSTCHECK_TEST_LOCAL", "")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("POSTCHECK_TEST_ENV=base\nPOSTCHECK_TEST_LOCAL=base\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env.local"), []byte("POSTCHECK_TEST_LOCAL=local\n"), 0o600); err != nil {
		t.Fatalf("write .env.local: %v", err)
	}

	loaded := loadEnvFiles(dir)
	if len(loaded) != 2 {
		t.Fatalf("expected 2 env files loaded, got %v", loaded)
	}
	if got := os.Getenv("POSTCHECK_TEST_ENV"); got != "base" {
		t.Fatalf("unexpected POSTCHECK_TEST_ENV: %q", got)
	}
	if got := os.Getenv("POSTCHECK_TEST_LOCAL"); got != "local" {
		t.Fatalf("unexpected POSTCHECK_TEST_LOCAL: %q", got)
	}

	if loaded := loadEnvFiles(t.TempDir()); len(loaded) != 0 {
		t.Fatalf("expected no env files in empty dir, got %v", loaded)
	}
}

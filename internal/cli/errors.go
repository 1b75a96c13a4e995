package cli

import (
	"errors"
	"fmt"

	"github.com/bilalbayram/postcheck/internal/cli/cmd"
)

const (
	ExitCodeUnknown    = 1
	ExitCodeConfig     = 2
	ExitCodeInput      = 4
	ExitCodeRegenerate = 6
)

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("command failed with exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func WrapExit(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// asExitError maps command errors onto process exit codes.
func asExitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var inputErr *cmd.InputError
	var configErr *cmd.ConfigError
	switch {
	case errors.Is(err, cmd.ErrRegenerationRequired):
		return WrapExit(ExitCodeRegenerate, err)
	case errors.As(err, &inputErr):
		return WrapExit(ExitCodeInput, err)
	case errors.As(err, &configErr):
		return WrapExit(ExitCodeConfig, err)
	default:
		return WrapExit(ExitCodeUnknown, err)
	}
}

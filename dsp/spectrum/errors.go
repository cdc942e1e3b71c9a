package spectrum

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the error kind of every failed initialization.
// Test for it with errors.Is.
var ErrConfiguration = errors.New("spectrum: configuration error")

// ConfigError describes why a configuration was rejected.
type ConfigError struct {
	Stage  string
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Stage + ": " + e.Reason
}

// Unwrap returns ErrConfiguration.
func (e *ConfigError) Unwrap() error { return ErrConfiguration }

func configErrorf(stage, format string, args ...any) error {
	return &ConfigError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}

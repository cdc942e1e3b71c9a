package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when an engine is requested with size <= 0.
	ErrInvalidSize = errors.New("transform: size must be > 0")
	// ErrInputTooLong is returned when more samples than the engine size are passed.
	ErrInputTooLong = errors.New("transform: input longer than transform size")
	// ErrUnknownBackend is returned for backend names missing from a registry.
	ErrUnknownBackend = errors.New("transform: unknown backend")

	errDuplicateBackend = errors.New("transform: duplicate backend")
)

func validateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return nil
}

func validateInput(n, size int) error {
	if n > size {
		return fmt.Errorf("%w: %d > %d", ErrInputTooLong, n, size)
	}
	return nil
}

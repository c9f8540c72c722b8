package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is matched (via errors.Is) by every error raised when a
// value falls outside the domain of a configuration field.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InvalidConfigurationError reports a value rejected by a "with" operation or by
// one of the loaders.
type InvalidConfigurationError struct {
	// Field is the configuration key that rejected the value (e.g. "indentation").
	Field string
	// Value is the rejected value as supplied by the caller.
	Value any
	// Reason describes the violated constraint.
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidConfiguration.
func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func nonNegative(field string, v int) error {
	if v < 0 {
		return &InvalidConfigurationError{Field: field, Value: v, Reason: "must not be negative"}
	}

	return nil
}

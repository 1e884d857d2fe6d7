package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is the root of every fatal validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrMissingKey is returned when a required key is absent.
	ErrMissingKey = errors.New("missing required key")

	// ErrInvalidValue is returned when a key's value fails its type or
	// predicate check.
	ErrInvalidValue = errors.New("invalid value")

	// ErrCrossRule is returned when all keys are individually valid but a
	// constraint spanning several keys does not hold.
	ErrCrossRule = errors.New("cross-key rule violated")

	// ErrUnknownPreset is returned when a preset name is not registered.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrParseConfig is returned when a YAML config document cannot be decoded.
	ErrParseConfig = errors.New("failed to parse config document")

	// ErrParseSettings is returned when environment settings cannot be parsed.
	ErrParseSettings = errors.New("failed to parse settings from environment")
)

// keyError builds a fatal validation error naming the offending key and the
// expected value shape from its descriptor.
func keyError(sentinel error, key string) error {
	expect := "unrecognized key"
	if d, ok := registry[key]; ok {
		expect = d.Expect
	}
	return fmt.Errorf("%w: %w %q (expected %s)", ErrInvalidConfig, sentinel, key, expect)
}

// crossRuleError builds a fatal cross-key rule error.
func crossRuleError(detail string) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidConfig, ErrCrossRule, detail)
}

// Warning is a non-fatal problem encountered while merging overrides or
// computing statistics. Warnings are collected and reported alongside a
// successful result; processing continues.
type Warning struct {
	Key     string
	Message string
}

func (w Warning) String() string {
	if w.Key == "" {
		return w.Message
	}
	return w.Key + ": " + w.Message
}

// Package config defines the password-generator configuration schema:
// recognized keys, per-key constraints, cross-key consistency rules, and a
// registry of named presets.
//
// A Config is a plain key/value mapping. It becomes trusted only after
// Validate accepts it; the generator and the statistics engine must only ever
// receive validated configs. Validation never mutates its input, so a failed
// update always leaves the previously active config intact.
//
// # Schema
//
// Every recognized key has a KeyDescriptor in an immutable package-level
// registry: whether the key is required, the shape of its value, a predicate
// the value must satisfy, and a human-readable constraint description used in
// error messages. Predicates are data (a tagged kind plus parameters), not
// closures, and are evaluated by a single dispatcher, so the schema can be
// inspected and tested in isolation.
//
// # Validation
//
//	cfg := config.Config{
//		config.KeyNumWords:      3,
//		config.KeyWordLengthMin: 4,
//		config.KeyWordLengthMax: 8,
//		...
//	}
//	if err := config.Validate(cfg); err != nil {
//		// err identifies the offending key and the expected value
//	}
//
// Validate checks required-key presence, then each present key's type and
// predicate, then the cross-key rules (random separator needs an alphabet,
// fixed padding needs counts, adaptive padding needs a target length, and so
// on). Any failure is fatal and wraps ErrInvalidConfig.
//
// # Presets and overrides
//
// Presets are pre-validated configs registered once and looked up by
// uppercase name:
//
//	cfg, warns, err := config.Preset("WEB32", config.Config{
//		config.KeyNumWords: 5,
//	})
//
// Overrides are merged key by key: an unrecognized key or an invalid value is
// skipped with a non-fatal Warning, but a merge whose result violates a
// cross-key rule fails as a whole.
//
// # Process settings
//
// Entropy floors and warning suppression are process-level settings loaded
// from environment variables (WORDPASS_ENTROPY_MIN_BLIND,
// WORDPASS_ENTROPY_MIN_SEEN, WORDPASS_ENTROPY_WARNINGS) via LoadSettings.
package config

package config

import (
	"fmt"
	"sort"
)

// Config is a password-generator configuration: a mapping from recognized key
// names to values. A Config is trusted only after Validate accepts it.
type Config map[string]any

// Has reports whether the key is present.
func (c Config) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Int returns the key's value as an int, or 0 if absent. Intended for use on
// validated configs.
func (c Config) Int(key string) int {
	n, _ := asInt(c[key])
	return n
}

// Str returns the key's value as a string, or "" if absent.
func (c Config) Str(key string) string {
	s, _ := c[key].(string)
	return s
}

// Bool returns the key's value as a bool, or false if absent.
func (c Config) Bool(key string) bool {
	b, _ := asBool(c[key])
	return b
}

// Alphabet returns the key's value as a character list, or nil if absent.
func (c Config) Alphabet(key string) []string {
	chars, _ := asAlphabet(c[key])
	return chars
}

// Substitutions returns the character_substitutions mapping, or nil if absent.
func (c Config) Substitutions() map[string]string {
	subs, _ := asSubstitutions(c[KeySubstitutions])
	return subs
}

// SubstitutionKeys returns the mapped characters in sorted order. Apply order
// across entries is deterministic: sorted by the mapped character.
func (c Config) SubstitutionKeys() []string {
	subs := c.Substitutions()
	if len(subs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(subs))
	for k := range subs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate verifies that cfg is a complete, consistent configuration:
// every required key is present, every present key's value has the declared
// shape and satisfies its predicate, and all cross-key rules hold. Any
// failure wraps ErrInvalidConfig and identifies the offending key. Validate
// never mutates cfg.
func Validate(cfg Config) error {
	for key, d := range registry {
		if !d.Required {
			continue
		}
		if !cfg.Has(key) {
			return keyError(ErrMissingKey, key)
		}
	}

	for key, v := range cfg {
		d, ok := registry[key]
		if !ok {
			return keyError(ErrInvalidValue, key)
		}
		if !checkValue(d, v) {
			return keyError(ErrInvalidValue, key)
		}
	}

	return checkCrossRules(cfg)
}

// checkCrossRules verifies the constraints that span more than one key.
func checkCrossRules(cfg Config) error {
	if cfg.Int(KeyWordLengthMin) > cfg.Int(KeyWordLengthMax) {
		return crossRuleError("word_length_min must not exceed word_length_max")
	}

	if cfg.Str(KeySeparatorCharacter) == CharRandom {
		if !cfg.Has(KeySeparatorAlphabet) && !cfg.Has(KeySymbolAlphabet) {
			return crossRuleError("separator_character RANDOM requires separator_alphabet or symbol_alphabet")
		}
	}

	padType := cfg.Str(KeyPaddingType)
	if padType != PaddingNone {
		padChar := cfg.Str(KeyPaddingCharacter)
		if !cfg.Has(KeyPaddingCharacter) {
			return crossRuleError("padding_type " + padType + " requires padding_character")
		}
		if padChar == CharRandom && !cfg.Has(KeyPaddingAlphabet) && !cfg.Has(KeySymbolAlphabet) {
			return crossRuleError("padding_character RANDOM requires padding_alphabet or symbol_alphabet")
		}
	}

	if padType == PaddingFixed {
		if !cfg.Has(KeyPaddingCharactersBefore) || !cfg.Has(KeyPaddingCharactersAfter) {
			return crossRuleError("padding_type FIXED requires padding_characters_before and padding_characters_after")
		}
		if cfg.Int(KeyPaddingCharactersBefore)+cfg.Int(KeyPaddingCharactersAfter) <= 0 {
			return crossRuleError("padding_type FIXED requires at least one padding character")
		}
	}

	if padType == PaddingAdaptive && !cfg.Has(KeyPadToLength) {
		return crossRuleError("padding_type ADAPTIVE requires pad_to_length")
	}

	return nil
}

// Clone deep-copies the recognized keys of cfg: scalars by value, character
// lists and the substitution mapping element-wise. Unrecognized keys are
// dropped so foreign data never leaks into a trusted config.
func Clone(cfg Config) Config {
	out := make(Config, len(cfg))
	for key, v := range cfg {
		d, ok := registry[key]
		if !ok {
			continue
		}
		out[key] = normalizeValue(d, v)
	}
	return out
}

// MergeOverrides applies overrides on top of base and returns the merged
// config. An unrecognized override key, or an override value that fails its
// per-key check, is skipped with a non-fatal Warning. The merged result is
// then re-validated as a whole: a merge that is valid key by key but violates
// a cross-key rule is a fatal error, and base is returned unchanged.
func MergeOverrides(base Config, overrides Config) (Config, []Warning, error) {
	merged := Clone(base)
	var warnings []Warning

	// Deterministic merge order keeps warning output stable.
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		d, ok := registry[key]
		if !ok {
			warnings = append(warnings, Warning{Key: key, Message: "unrecognized key ignored"})
			continue
		}
		v := overrides[key]
		if !checkValue(d, v) {
			warnings = append(warnings, Warning{
				Key:     key,
				Message: fmt.Sprintf("invalid value ignored (expected %s)", d.Expect),
			})
			continue
		}
		merged[key] = normalizeValue(d, v)
	}

	if err := Validate(merged); err != nil {
		return nil, warnings, err
	}
	return merged, warnings, nil
}

package config

import (
	"fmt"
	"sort"
	"strings"
)

// preset pairs a pre-validated base config with a human description.
type preset struct {
	description string
	base        Config
}

// presets is the process-wide preset registry. Built once, never mutated;
// every entry must pass Validate (guarded by a test).
var presets = map[string]preset{
	"DEFAULT": {
		description: "The default preset resulting in a password consisting of 3 random words of between 4 and 8 letters with alternating case separated by a random character, with two random digits before and after, and padded with two random characters front and back.",
		base: Config{
			KeyNumWords:                3,
			KeyWordLengthMin:           4,
			KeyWordLengthMax:           8,
			KeyCaseTransform:           CaseAlternate,
			KeySeparatorCharacter:      CharRandom,
			KeySymbolAlphabet:          []string{"!", "@", "$", "%", "^", "&", "*", "-", "_", "+", "=", ":", "|", "~", "?", "/", ".", ";"},
			KeyPaddingDigitsBefore:     2,
			KeyPaddingDigitsAfter:      2,
			KeyPaddingType:             PaddingFixed,
			KeyPaddingCharacter:        CharRandom,
			KeyPaddingCharactersBefore: 2,
			KeyPaddingCharactersAfter:  2,
		},
	},
	"WEB32": {
		description: "A preset for websites that allow passwords up to 32 characters long.",
		base: Config{
			KeyNumWords:                4,
			KeyWordLengthMin:           4,
			KeyWordLengthMax:           5,
			KeyCaseTransform:           CaseAlternate,
			KeySeparatorCharacter:      CharRandom,
			KeySeparatorAlphabet:       []string{"-", "+", "=", ".", "*", "_", "|", "~", ","},
			KeyPaddingDigitsBefore:     2,
			KeyPaddingDigitsAfter:      2,
			KeyPaddingType:             PaddingFixed,
			KeyPaddingCharacter:        CharRandom,
			KeyPaddingAlphabet:         []string{"!", "@", "$", "%", "^", "&", "*", "+", "=", ":", "|", "~"},
			KeyPaddingCharactersBefore: 1,
			KeyPaddingCharactersAfter:  1,
		},
	},
	"WEB16": {
		description: "A preset for websites that insist on short passwords of at most 16 characters.",
		base: Config{
			KeyNumWords:            3,
			KeyWordLengthMin:       4,
			KeyWordLengthMax:       4,
			KeyCaseTransform:       CaseRandom,
			KeySeparatorCharacter:  CharRandom,
			KeySymbolAlphabet:      []string{"!", "@", "$", "%", "^", "&", "*", "-", "_", "+", "=", ":", "|", "~", "?", "/", ".", ";"},
			KeyPaddingDigitsBefore: 0,
			KeyPaddingDigitsAfter:  2,
			KeyPaddingType:         PaddingNone,
		},
	},
	"WIFI": {
		description: "A preset for generating 63-character WPA2 keys, padded to the maximum length WPA2 allows.",
		base: Config{
			KeyNumWords:            6,
			KeyWordLengthMin:       4,
			KeyWordLengthMax:       8,
			KeyCaseTransform:       CaseUpper,
			KeySeparatorCharacter:  CharRandom,
			KeySeparatorAlphabet:   []string{"-", "+", "=", ".", "*", "_", "|", "~", ","},
			KeyPaddingDigitsBefore: 4,
			KeyPaddingDigitsAfter:  4,
			KeyPaddingType:         PaddingAdaptive,
			KeyPaddingCharacter:    CharSeparator,
			KeyPadToLength:         63,
		},
	},
	"APPLEID": {
		description: "A preset respecting Apple ID password rules: mixed case, digits, and no overly long runs of one character.",
		base: Config{
			KeyNumWords:                3,
			KeyWordLengthMin:           4,
			KeyWordLengthMax:           7,
			KeyCaseTransform:           CaseRandom,
			KeySeparatorCharacter:      CharRandom,
			KeySeparatorAlphabet:       []string{"-", ":", ".", ","},
			KeyPaddingDigitsBefore:     2,
			KeyPaddingDigitsAfter:      2,
			KeyPaddingType:             PaddingFixed,
			KeyPaddingCharacter:        CharRandom,
			KeyPaddingAlphabet:         []string{"-", ":", ".", "!", "?", "@", "&"},
			KeyPaddingCharactersBefore: 1,
			KeyPaddingCharactersAfter:  1,
		},
	},
	"NTLM": {
		description: "A preset for 14-character Windows NTLMv1 passwords. Avoid if possible: the passwords this produces are too short to be strong.",
		base: Config{
			KeyNumWords:                2,
			KeyWordLengthMin:           5,
			KeyWordLengthMax:           5,
			KeyCaseTransform:           CaseInvert,
			KeySeparatorCharacter:      CharRandom,
			KeySeparatorAlphabet:       []string{"-", "+", "=", ".", "*", "_", "|", "~", ","},
			KeyPaddingDigitsBefore:     1,
			KeyPaddingDigitsAfter:      0,
			KeyPaddingType:             PaddingFixed,
			KeyPaddingCharacter:        CharRandom,
			KeyPaddingAlphabet:         []string{"!", "@", "$", "%", "^", "&", "*", "+", "=", ":", "|", "~", "?"},
			KeyPaddingCharactersBefore: 0,
			KeyPaddingCharactersAfter:  1,
		},
	},
	"SECURITYQ": {
		description: "A preset for answering security questions: a sentence-like sequence of space-separated words with terminal punctuation.",
		base: Config{
			KeyNumWords:                6,
			KeyWordLengthMin:           4,
			KeyWordLengthMax:           8,
			KeyCaseTransform:           CaseNone,
			KeySeparatorCharacter:      " ",
			KeyPaddingDigitsBefore:     0,
			KeyPaddingDigitsAfter:      0,
			KeyPaddingType:             PaddingFixed,
			KeyPaddingCharacter:        CharRandom,
			KeyPaddingAlphabet:         []string{".", "!", "?"},
			KeyPaddingCharactersBefore: 0,
			KeyPaddingCharactersAfter:  1,
		},
	},
	"XKCD": {
		description: "A preset inspired by the original xkcd comic: four words joined by hyphens, nothing else.",
		base: Config{
			KeyNumWords:            4,
			KeyWordLengthMin:       4,
			KeyWordLengthMax:       8,
			KeyCaseTransform:       CaseRandom,
			KeySeparatorCharacter:  "-",
			KeyPaddingDigitsBefore: 0,
			KeyPaddingDigitsAfter:  0,
			KeyPaddingType:         PaddingNone,
		},
	},
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetDescription returns the description of a named preset. The lookup is
// case-insensitive: names are folded to uppercase.
func PresetDescription(name string) (string, error) {
	p, ok := presets[strings.ToUpper(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.description, nil
}

// Preset returns a validated config built from the named preset's base with
// the given overrides applied. Overrides follow MergeOverrides semantics:
// unknown keys and invalid values are skipped with warnings, cross-key rule
// violations are fatal. Pass a nil overrides map to use the preset as is.
func Preset(name string, overrides Config) (Config, []Warning, error) {
	p, ok := presets[strings.ToUpper(name)]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	if len(overrides) == 0 {
		cfg := Clone(p.base)
		if err := Validate(cfg); err != nil {
			return nil, nil, err
		}
		return cfg, nil, nil
	}
	return MergeOverrides(p.base, overrides)
}

package config

import "unicode/utf8"

// Recognized configuration keys.
const (
	KeyAllowAccents            = "allow_accents"
	KeySymbolAlphabet          = "symbol_alphabet"
	KeySeparatorAlphabet       = "separator_alphabet"
	KeyPaddingAlphabet         = "padding_alphabet"
	KeyWordLengthMin           = "word_length_min"
	KeyWordLengthMax           = "word_length_max"
	KeyNumWords                = "num_words"
	KeySeparatorCharacter      = "separator_character"
	KeyPaddingDigitsBefore     = "padding_digits_before"
	KeyPaddingDigitsAfter      = "padding_digits_after"
	KeyPaddingType             = "padding_type"
	KeyPaddingCharactersBefore = "padding_characters_before"
	KeyPaddingCharactersAfter  = "padding_characters_after"
	KeyPadToLength             = "pad_to_length"
	KeyPaddingCharacter        = "padding_character"
	KeyCaseTransform           = "case_transform"
	KeySubstitutions           = "character_substitutions"
)

// Special character values for separator_character and padding_character.
const (
	CharNone      = "NONE"
	CharRandom    = "RANDOM"
	CharSeparator = "SEPARATOR"
)

// Padding strategies.
const (
	PaddingNone     = "NONE"
	PaddingFixed    = "FIXED"
	PaddingAdaptive = "ADAPTIVE"
)

// Case transforms.
const (
	CaseNone       = "NONE"
	CaseUpper      = "UPPER"
	CaseLower      = "LOWER"
	CaseCapitalise = "CAPITALISE"
	CaseInvert     = "INVERT"
	CaseAlternate  = "ALTERNATE"
	CaseRandom     = "RANDOM"
)

// predicateKind tags the check a KeyDescriptor performs on its value.
// Predicates are data evaluated by checkValue, not embedded closures, so the
// schema stays inspectable.
type predicateKind int

const (
	predBool          predicateKind = iota // bool-like value
	predIntMin                             // integer >= Min
	predEnum                               // string in Choices
	predCharOrEnum                         // single character or string in Choices
	predAlphabet                           // sequence of >= 2 single characters
	predSubstitutions                      // single character -> non-empty string
)

// KeyDescriptor declares a recognized key: whether it must be present, the
// predicate its value must satisfy, and the constraint description used in
// error messages.
type KeyDescriptor struct {
	Required bool
	Kind     predicateKind
	Min      int
	Choices  []string
	Expect   string
}

// registry is the process-wide key schema. Built once, never mutated.
var registry = map[string]KeyDescriptor{
	KeyAllowAccents: {
		Kind:   predBool,
		Expect: "true or false",
	},
	KeySymbolAlphabet: {
		Kind:   predAlphabet,
		Expect: "a list of at least 2 single characters",
	},
	KeySeparatorAlphabet: {
		Kind:   predAlphabet,
		Expect: "a list of at least 2 single characters",
	},
	KeyPaddingAlphabet: {
		Kind:   predAlphabet,
		Expect: "a list of at least 2 single characters",
	},
	KeyWordLengthMin: {
		Required: true,
		Kind:     predIntMin,
		Min:      4,
		Expect:   "an integer greater than 3",
	},
	KeyWordLengthMax: {
		Required: true,
		Kind:     predIntMin,
		Min:      4,
		Expect:   "an integer greater than 3",
	},
	KeyNumWords: {
		Required: true,
		Kind:     predIntMin,
		Min:      2,
		Expect:   "an integer of at least 2",
	},
	KeySeparatorCharacter: {
		Required: true,
		Kind:     predCharOrEnum,
		Choices:  []string{CharNone, CharRandom},
		Expect:   "a single character, NONE, or RANDOM",
	},
	KeyPaddingDigitsBefore: {
		Required: true,
		Kind:     predIntMin,
		Min:      0,
		Expect:   "an integer of at least 0",
	},
	KeyPaddingDigitsAfter: {
		Required: true,
		Kind:     predIntMin,
		Min:      0,
		Expect:   "an integer of at least 0",
	},
	KeyPaddingType: {
		Required: true,
		Kind:     predEnum,
		Choices:  []string{PaddingNone, PaddingFixed, PaddingAdaptive},
		Expect:   "one of NONE, FIXED, or ADAPTIVE",
	},
	KeyPaddingCharactersBefore: {
		Kind:   predIntMin,
		Min:    0,
		Expect: "an integer of at least 0",
	},
	KeyPaddingCharactersAfter: {
		Kind:   predIntMin,
		Min:    0,
		Expect: "an integer of at least 0",
	},
	KeyPadToLength: {
		Kind:   predIntMin,
		Min:    12,
		Expect: "an integer of at least 12",
	},
	KeyPaddingCharacter: {
		Kind:    predCharOrEnum,
		Choices: []string{CharNone, CharRandom, CharSeparator},
		Expect:  "a single character, NONE, RANDOM, or SEPARATOR",
	},
	KeyCaseTransform: {
		Required: true,
		Kind:     predEnum,
		Choices:  []string{CaseNone, CaseUpper, CaseLower, CaseCapitalise, CaseInvert, CaseAlternate, CaseRandom},
		Expect:   "one of NONE, UPPER, LOWER, CAPITALISE, INVERT, ALTERNATE, or RANDOM",
	},
	KeySubstitutions: {
		Kind:   predSubstitutions,
		Expect: "a mapping of single characters to non-empty replacement strings",
	},
}

// Keys returns the names of all recognized configuration keys.
func Keys() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Descriptor returns the schema entry for a key, if the key is recognized.
func Descriptor(key string) (KeyDescriptor, bool) {
	d, ok := registry[key]
	return d, ok
}

// checkValue is the single predicate dispatcher: it verifies that v has the
// shape and satisfies the constraint declared by the key's descriptor.
func checkValue(d KeyDescriptor, v any) bool {
	switch d.Kind {
	case predBool:
		_, ok := asBool(v)
		return ok
	case predIntMin:
		n, ok := asInt(v)
		return ok && n >= d.Min
	case predEnum:
		s, ok := v.(string)
		return ok && contains(d.Choices, s)
	case predCharOrEnum:
		s, ok := v.(string)
		if !ok {
			return false
		}
		return isSingleChar(s) || contains(d.Choices, s)
	case predAlphabet:
		chars, ok := asAlphabet(v)
		if !ok || len(chars) < 2 {
			return false
		}
		for _, c := range chars {
			if !isSingleChar(c) {
				return false
			}
		}
		return true
	case predSubstitutions:
		subs, ok := asSubstitutions(v)
		if !ok {
			return false
		}
		for from, to := range subs {
			if !isSingleChar(from) || to == "" {
				return false
			}
		}
		return true
	}
	return false
}

// normalizeValue converts an accepted value into its canonical in-memory
// form: plain int, bool, string, []string, or map[string]string. It must only
// be called with values checkValue accepted.
func normalizeValue(d KeyDescriptor, v any) any {
	switch d.Kind {
	case predBool:
		b, _ := asBool(v)
		return b
	case predIntMin:
		n, _ := asInt(v)
		return n
	case predAlphabet:
		chars, _ := asAlphabet(v)
		return chars
	case predSubstitutions:
		subs, _ := asSubstitutions(v)
		return subs
	}
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func isSingleChar(s string) bool {
	return utf8.RuneCountInString(s) == 1
}

// asInt accepts the integer representations produced by Go literals and by
// YAML/JSON decoding.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case int:
		return b != 0, true
	}
	return false, false
}

// asAlphabet accepts []string directly and []any as produced by YAML decoding.
func asAlphabet(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// asSubstitutions accepts map[string]string directly and map[string]any as
// produced by YAML decoding.
func asSubstitutions(v any) (map[string]string, bool) {
	switch m := v.(type) {
	case map[string]string:
		out := make(map[string]string, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, val := range m {
			s, ok := val.(string)
			if !ok {
				return nil, false
			}
			out[k] = s
		}
		return out, true
	}
	return nil, false
}

// Package wordpass synthesizes human-memorable passwords from word lists,
// and reports how strong the results are against both a brute-force attacker
// and an attacker who knows the dictionary and the configuration.
//
// A password is built from a handful of random words joined by a separator,
// with optional case transforms, character substitutions, digit groups, and
// padding: long enough to be strong, structured enough to be remembered and
// typed.
//
// Basic usage:
//
//	gen, err := wordpass.New(wordpass.WithPreset("WEB32", nil))
//	if err != nil {
//		// handle error
//	}
//	password, err := gen.Password()
//
// The Generator owns a validated configuration, a filtered word pool, and a
// buffer of random values; all three are rebuilt synchronously whenever the
// config, the word source, or the random source is replaced, so derived
// state is never stale. A failed config update leaves the previous state
// untouched. One mutex per Generator makes an instance safe to share between
// goroutines.
//
// Word sources and random sources are injected interfaces (pkg/dictionary
// and pkg/random); by default the built-in English list and a crypto/rand
// backed source are used. Strength reporting lives in pkg/entropy, the
// configuration schema and presets in pkg/config.
package wordpass

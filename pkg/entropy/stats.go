package entropy

import "github.com/dmitrymomot/wordpass/pkg/config"

// Stats holds the structural facts ConfigStats derives from a config.
type Stats struct {
	// LengthMin and LengthMax bound the length of any password the config
	// can produce. With adaptive padding both equal the target length.
	LengthMin int
	LengthMax int
	// RandomDrawsRequired is the exact number of random values one
	// password assembly consumes.
	RandomDrawsRequired int
}

// ConfigStats computes length bounds and the random-draw requirement for a
// validated config.
func ConfigStats(cfg config.Config) Stats {
	s := Stats{RandomDrawsRequired: drawsRequired(cfg)}

	if cfg.Str(config.KeyPaddingType) == config.PaddingAdaptive {
		s.LengthMin = cfg.Int(config.KeyPadToLength)
		s.LengthMax = s.LengthMin
		return s
	}

	numWords := cfg.Int(config.KeyNumWords)
	hasSeparator := cfg.Str(config.KeySeparatorCharacter) != config.CharNone

	base := 0
	if cfg.Str(config.KeyPaddingType) == config.PaddingFixed {
		base += cfg.Int(config.KeyPaddingCharactersBefore) + cfg.Int(config.KeyPaddingCharactersAfter)
	}
	for _, digits := range []int{cfg.Int(config.KeyPaddingDigitsBefore), cfg.Int(config.KeyPaddingDigitsAfter)} {
		if digits > 0 {
			base += digits
			if hasSeparator {
				base++
			}
		}
	}
	if hasSeparator {
		base += numWords - 1
	}

	s.LengthMin = base + numWords*cfg.Int(config.KeyWordLengthMin)
	s.LengthMax = base + numWords*cfg.Int(config.KeyWordLengthMax)
	return s
}

// drawsRequired mirrors the assembly pipeline draw for draw: one per word,
// one case bit per word for the RANDOM transform, one for a RANDOM
// separator, one for a RANDOM padding character (only when padding is
// applied at all), and one per padding digit.
func drawsRequired(cfg config.Config) int {
	n := cfg.Int(config.KeyNumWords)
	if cfg.Str(config.KeyCaseTransform) == config.CaseRandom {
		n += cfg.Int(config.KeyNumWords)
	}
	if cfg.Str(config.KeySeparatorCharacter) == config.CharRandom {
		n++
	}
	if paddingApplied(cfg) && cfg.Str(config.KeyPaddingCharacter) == config.CharRandom {
		n++
	}
	n += cfg.Int(config.KeyPaddingDigitsBefore)
	n += cfg.Int(config.KeyPaddingDigitsAfter)
	return n
}

// paddingApplied reports whether the config applies character padding.
func paddingApplied(cfg config.Config) bool {
	return cfg.Str(config.KeyPaddingType) != config.PaddingNone
}

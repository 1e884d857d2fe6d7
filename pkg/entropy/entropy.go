package entropy

import (
	"fmt"
	"math"
	"math/big"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/wordpass/pkg/config"
)

// Entropy records permutation counts under both attacker models and their
// base-2 logarithms in bits. Permutation counts are arbitrary-precision
// integers so long passwords over large alphabets never overflow.
type Entropy struct {
	PermutationsBlindMin *big.Int
	PermutationsBlindMax *big.Int
	PermutationsBlindAvg *big.Int
	PermutationsSeen     *big.Int

	// Bits of entropy: log2 of the corresponding permutation count.
	BlindMin float64
	BlindMax float64
	BlindAvg float64
	Seen     float64
}

// Calculate computes entropy for a validated config over a filtered pool of
// poolSize words. accented reports whether the pool contains accented words
// (only possible when accents are allowed); it widens the assumed blind
// alphabet. Warnings are raised against the floors in settings and are never
// fatal.
func Calculate(cfg config.Config, poolSize int, accented bool, settings config.Settings) (Entropy, []config.Warning) {
	stats := ConfigStats(cfg)
	alphabet := blindAlphabetSize(cfg, accented)

	e := Entropy{
		PermutationsBlindMin: pow(alphabet, stats.LengthMin),
		PermutationsBlindMax: pow(alphabet, stats.LengthMax),
		PermutationsBlindAvg: pow(alphabet, int(math.Round(float64(stats.LengthMin+stats.LengthMax)/2))),
		PermutationsSeen:     seenPermutations(cfg, poolSize),
	}
	e.BlindMin = log2(e.PermutationsBlindMin)
	e.BlindMax = log2(e.PermutationsBlindMax)
	e.BlindAvg = log2(e.PermutationsBlindAvg)
	e.Seen = log2(e.PermutationsSeen)

	return e, collectWarnings(cfg, e, settings)
}

// blindAlphabetSize infers the alphabet a brute-force attacker has to cover.
// Lowercase letters are always assumed. A guaranteed non-alphanumeric symbol
// counts as exactly 33 extra possibilities regardless of the actual alphabet
// in use.
func blindAlphabetSize(cfg config.Config, accented bool) int {
	size := 26
	switch cfg.Str(config.KeyCaseTransform) {
	case config.CaseAlternate, config.CaseCapitalise, config.CaseInvert, config.CaseRandom:
		size += 26
	}
	if cfg.Int(config.KeyPaddingDigitsBefore)+cfg.Int(config.KeyPaddingDigitsAfter) > 0 {
		size += 10
	}
	if guaranteesSymbol(cfg, accented) {
		size += 33
	}
	return size
}

// guaranteesSymbol reports whether every password the config produces must
// contain at least one non-alphanumeric character.
func guaranteesSymbol(cfg config.Config, accented bool) bool {
	if accented {
		return true
	}
	if separatorGuaranteesSymbol(cfg) {
		return true
	}
	if !paddingApplied(cfg) {
		return false
	}
	switch pad := cfg.Str(config.KeyPaddingCharacter); pad {
	case config.CharNone:
		return false
	case config.CharSeparator:
		return separatorGuaranteesSymbol(cfg)
	case config.CharRandom:
		return allSymbols(paddingAlphabet(cfg))
	default:
		return isSymbol(pad)
	}
}

func separatorGuaranteesSymbol(cfg config.Config) bool {
	switch sep := cfg.Str(config.KeySeparatorCharacter); sep {
	case config.CharNone:
		return false
	case config.CharRandom:
		return allSymbols(separatorAlphabet(cfg))
	default:
		return isSymbol(sep)
	}
}

// separatorAlphabet resolves the alphabet a RANDOM separator draws from.
func separatorAlphabet(cfg config.Config) []string {
	if a := cfg.Alphabet(config.KeySeparatorAlphabet); a != nil {
		return a
	}
	return cfg.Alphabet(config.KeySymbolAlphabet)
}

// paddingAlphabet resolves the alphabet a RANDOM padding character draws from.
func paddingAlphabet(cfg config.Config) []string {
	if a := cfg.Alphabet(config.KeyPaddingAlphabet); a != nil {
		return a
	}
	return cfg.Alphabet(config.KeySymbolAlphabet)
}

func allSymbols(alphabet []string) bool {
	if len(alphabet) == 0 {
		return false
	}
	for _, c := range alphabet {
		if !isSymbol(c) {
			return false
		}
	}
	return true
}

func isSymbol(char string) bool {
	r, _ := utf8.DecodeRuneInString(char)
	return r != utf8.RuneError && !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// seenPermutations counts the search space of an attacker who knows the
// dictionary and the config: pool^words (doubled per word for random case),
// times the separator and padding alphabets when those are drawn at random,
// times 10 per padding digit.
func seenPermutations(cfg config.Config, poolSize int) *big.Int {
	exponent := cfg.Int(config.KeyNumWords)
	if cfg.Str(config.KeyCaseTransform) == config.CaseRandom {
		exponent *= 2
	}
	n := pow(poolSize, exponent)

	if cfg.Str(config.KeySeparatorCharacter) == config.CharRandom {
		n.Mul(n, big.NewInt(int64(len(separatorAlphabet(cfg)))))
	}
	if paddingApplied(cfg) && cfg.Str(config.KeyPaddingCharacter) == config.CharRandom {
		n.Mul(n, big.NewInt(int64(len(paddingAlphabet(cfg)))))
	}

	digits := cfg.Int(config.KeyPaddingDigitsBefore) + cfg.Int(config.KeyPaddingDigitsAfter)
	if digits > 0 {
		n.Mul(n, pow(10, digits))
	}
	return n
}

func collectWarnings(cfg config.Config, e Entropy, settings config.Settings) []config.Warning {
	var warnings []config.Warning

	if settings.WarnOnBlind() && e.BlindMin < float64(settings.EntropyMinBlind) {
		warnings = append(warnings, config.Warning{
			Message: fmt.Sprintf("blind entropy %.2f bits is below the recommended minimum of %d bits", e.BlindMin, settings.EntropyMinBlind),
		})
	}
	if settings.WarnOnSeen() && e.Seen < float64(settings.EntropyMinSeen) {
		warnings = append(warnings, config.Warning{
			Message: fmt.Sprintf("seen entropy %.2f bits is below the recommended minimum of %d bits", e.Seen, settings.EntropyMinSeen),
		})
	}

	if cfg.Str(config.KeyPaddingType) != config.PaddingAdaptive {
		for _, to := range cfg.Substitutions() {
			if utf8.RuneCountInString(to) > 1 {
				warnings = append(warnings, config.Warning{
					Key:     config.KeySubstitutions,
					Message: "multi-character substitutions make the maximum length estimate unreliable",
				})
				break
			}
		}
	}
	return warnings
}

func pow(base, exp int) *big.Int {
	if exp < 0 {
		exp = 0
	}
	return new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)
}

// log2 returns the base-2 logarithm of a positive big integer. The top 53
// bits are converted exactly; the remainder contributes the binary exponent.
func log2(x *big.Int) float64 {
	if x == nil || x.Sign() <= 0 {
		return 0
	}
	bits := x.BitLen()
	if bits <= 53 {
		return math.Log2(float64(x.Uint64()))
	}
	shift := uint(bits - 53)
	top := new(big.Int).Rsh(x, shift)
	return math.Log2(float64(top.Uint64())) + float64(shift)
}

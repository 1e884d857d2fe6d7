package assembler

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/wordpass/pkg/config"
	"github.com/dmitrymomot/wordpass/pkg/random"
)

// Assemble produces one password from a validated config, a non-empty
// filtered word pool, and a random cache. The config must have passed
// config.Validate; Assemble does not re-check it.
func Assemble(cfg config.Config, pool []string, cache *random.Cache) (string, error) {
	words, err := selectWords(cfg, pool, cache)
	if err != nil {
		return "", err
	}

	if err := applyCaseTransform(cfg, words, cache); err != nil {
		return "", err
	}
	applySubstitutions(cfg, words)

	separator, err := resolveSeparator(cfg, cache)
	if err != nil {
		return "", err
	}
	padChar, err := resolvePaddingCharacter(cfg, separator, cache)
	if err != nil {
		return "", err
	}

	password := strings.Join(words, separator)

	password, err = attachDigits(cfg, password, separator, cache)
	if err != nil {
		return "", err
	}

	return applyPadding(cfg, password, padChar), nil
}

// selectWords draws num_words indices into the pool, with replacement.
func selectWords(cfg config.Config, pool []string, cache *random.Cache) ([]string, error) {
	n := cfg.Int(config.KeyNumWords)
	words := make([]string, n)
	for i := range words {
		f, err := cache.Next()
		if err != nil {
			return nil, err
		}
		words[i] = pool[random.BoundedInt(f, len(pool))]
	}
	return words, nil
}

// applyCaseTransform rewrites words in place per the configured transform.
// The RANDOM transform draws one bit per word: 0 for upper, 1 for lower.
func applyCaseTransform(cfg config.Config, words []string, cache *random.Cache) error {
	switch cfg.Str(config.KeyCaseTransform) {
	case config.CaseNone:
	case config.CaseUpper:
		for i, w := range words {
			words[i] = strings.ToUpper(w)
		}
	case config.CaseLower:
		for i, w := range words {
			words[i] = strings.ToLower(w)
		}
	case config.CaseCapitalise:
		for i, w := range words {
			words[i] = capitalise(w)
		}
	case config.CaseInvert:
		for i, w := range words {
			words[i] = invertCapitalise(w)
		}
	case config.CaseAlternate:
		for i, w := range words {
			if i%2 == 0 {
				words[i] = strings.ToLower(w)
			} else {
				words[i] = strings.ToUpper(w)
			}
		}
	case config.CaseRandom:
		for i, w := range words {
			f, err := cache.Next()
			if err != nil {
				return err
			}
			if random.BoundedInt(f, 2) == 0 {
				words[i] = strings.ToUpper(w)
			} else {
				words[i] = strings.ToLower(w)
			}
		}
	}
	return nil
}

func capitalise(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

func invertCapitalise(w string) string {
	runes := []rune(strings.ToUpper(w))
	if len(runes) > 0 {
		runes[0] = unicode.ToLower(runes[0])
	}
	return string(runes)
}

// applySubstitutions replaces every occurrence of each mapped character in
// every word. Entries apply independently in sorted-key order; replacements
// are not re-scanned for further matches.
func applySubstitutions(cfg config.Config, words []string) {
	subs := cfg.Substitutions()
	if len(subs) == 0 {
		return
	}
	for _, from := range cfg.SubstitutionKeys() {
		to := subs[from]
		for i, w := range words {
			words[i] = strings.ReplaceAll(w, from, to)
		}
	}
}

// resolveSeparator returns the separator string for this password: empty for
// NONE, the literal character, or one character drawn from the separator
// alphabet (falling back to the symbol alphabet) for RANDOM.
func resolveSeparator(cfg config.Config, cache *random.Cache) (string, error) {
	switch sep := cfg.Str(config.KeySeparatorCharacter); sep {
	case config.CharNone:
		return "", nil
	case config.CharRandom:
		alphabet := cfg.Alphabet(config.KeySeparatorAlphabet)
		if alphabet == nil {
			alphabet = cfg.Alphabet(config.KeySymbolAlphabet)
		}
		f, err := cache.Next()
		if err != nil {
			return "", err
		}
		return alphabet[random.BoundedInt(f, len(alphabet))], nil
	default:
		return sep, nil
	}
}

// resolvePaddingCharacter returns the padding character for this password,
// or "" when padding is off or the character resolves to NONE. SEPARATOR
// reuses the already-resolved separator.
func resolvePaddingCharacter(cfg config.Config, separator string, cache *random.Cache) (string, error) {
	if cfg.Str(config.KeyPaddingType) == config.PaddingNone {
		return "", nil
	}
	switch pad := cfg.Str(config.KeyPaddingCharacter); pad {
	case config.CharNone:
		return "", nil
	case config.CharSeparator:
		return separator, nil
	case config.CharRandom:
		alphabet := cfg.Alphabet(config.KeyPaddingAlphabet)
		if alphabet == nil {
			alphabet = cfg.Alphabet(config.KeySymbolAlphabet)
		}
		f, err := cache.Next()
		if err != nil {
			return "", err
		}
		return alphabet[random.BoundedInt(f, len(alphabet))], nil
	default:
		return pad, nil
	}
}

// attachDigits draws the configured digit groups and attaches them to the
// base string, each group joined to the words by the separator.
func attachDigits(cfg config.Config, password, separator string, cache *random.Cache) (string, error) {
	before, err := drawDigits(cfg.Int(config.KeyPaddingDigitsBefore), cache)
	if err != nil {
		return "", err
	}
	after, err := drawDigits(cfg.Int(config.KeyPaddingDigitsAfter), cache)
	if err != nil {
		return "", err
	}
	if before != "" {
		password = before + separator + password
	}
	if after != "" {
		password = password + separator + after
	}
	return password, nil
}

func drawDigits(n int, cache *random.Cache) (string, error) {
	if n <= 0 {
		return "", nil
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		f, err := cache.Next()
		if err != nil {
			return "", err
		}
		b.WriteString(strconv.Itoa(random.BoundedInt(f, 10)))
	}
	return b.String(), nil
}

// applyPadding applies the configured padding strategy. FIXED attaches the
// configured number of copies front and back. ADAPTIVE forces the exact
// target length, appending padding characters or truncating from the end.
func applyPadding(cfg config.Config, password, padChar string) string {
	switch cfg.Str(config.KeyPaddingType) {
	case config.PaddingFixed:
		if padChar == "" {
			return password
		}
		before := strings.Repeat(padChar, cfg.Int(config.KeyPaddingCharactersBefore))
		after := strings.Repeat(padChar, cfg.Int(config.KeyPaddingCharactersAfter))
		return before + password + after
	case config.PaddingAdaptive:
		target := cfg.Int(config.KeyPadToLength)
		runes := []rune(password)
		if len(runes) > target {
			return string(runes[:target])
		}
		if padChar == "" {
			return password
		}
		for len(runes) < target {
			runes = append(runes, []rune(padChar)...)
		}
		return string(runes)
	}
	return password
}

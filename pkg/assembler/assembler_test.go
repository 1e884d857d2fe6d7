package assembler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordpass/pkg/assembler"
	"github.com/dmitrymomot/wordpass/pkg/config"
	"github.com/dmitrymomot/wordpass/pkg/dictionary"
	"github.com/dmitrymomot/wordpass/pkg/entropy"
	"github.com/dmitrymomot/wordpass/pkg/random"
)

// baseConfig returns a valid config with no separator randomness, no digits,
// and no padding, to be tweaked per test.
func baseConfig() config.Config {
	return config.Config{
		config.KeyNumWords:            3,
		config.KeyWordLengthMin:       4,
		config.KeyWordLengthMax:       4,
		config.KeyCaseTransform:       config.CaseNone,
		config.KeySeparatorCharacter:  "-",
		config.KeyPaddingDigitsBefore: 0,
		config.KeyPaddingDigitsAfter:  0,
		config.KeyPaddingType:         config.PaddingNone,
	}
}

// newCache wraps a fixed draw sequence. Batch size 1 makes the cache hand
// values out one by one in order.
func newCache(values ...float64) *random.Cache {
	return random.NewCache(random.NewFixedSource(values...))
}

func mustAssemble(t *testing.T, cfg config.Config, pool []string, cache *random.Cache) string {
	t.Helper()
	require.NoError(t, config.Validate(cfg))
	password, err := assembler.Assemble(cfg, pool, cache)
	require.NoError(t, err)
	return password
}

func TestAssembleWordsAndSeparator(t *testing.T) {
	t.Parallel()

	t.Run("an all-zero source repeats the first word", func(t *testing.T) {
		pool := []string{"blue", "frog", "king"}
		got := mustAssemble(t, baseConfig(), pool, newCache(0.0))
		assert.Equal(t, "blue-blue-blue", got)
	})

	t.Run("word selection is with replacement", func(t *testing.T) {
		pool := []string{"blue", "frog"}
		// Indices 1, 1, 0.
		got := mustAssemble(t, baseConfig(), pool, newCache(0.0000015, 0.0000015, 0.0))
		assert.Equal(t, "frog-frog-blue", got)
	})

	t.Run("NONE separator joins words directly", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeySeparatorCharacter] = config.CharNone
		got := mustAssemble(t, cfg, []string{"blue"}, newCache(0.0))
		assert.Equal(t, "blueblueblue", got)
	})

	t.Run("RANDOM separator draws from the symbol alphabet", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeySeparatorCharacter] = config.CharRandom
		cfg[config.KeySymbolAlphabet] = []string{"!", "@"}
		// Three word draws, then a separator draw mapping to index 1.
		got := mustAssemble(t, cfg, []string{"blue"}, newCache(0.0, 0.0, 0.0, 0.0000015))
		assert.Equal(t, "blue@blue@blue", got)
	})

	t.Run("separator_alphabet wins over symbol_alphabet", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeySeparatorCharacter] = config.CharRandom
		cfg[config.KeySeparatorAlphabet] = []string{".", ","}
		cfg[config.KeySymbolAlphabet] = []string{"!", "@"}
		got := mustAssemble(t, cfg, []string{"blue"}, newCache(0.0))
		assert.Equal(t, "blue.blue.blue", got)
	})
}

func TestAssembleCaseTransforms(t *testing.T) {
	t.Parallel()

	pool := []string{"bLuE"}

	caseOf := func(transform string, draws ...float64) string {
		cfg := baseConfig()
		cfg[config.KeyCaseTransform] = transform
		values := append([]float64{0.0, 0.0, 0.0}, draws...)
		return mustAssemble(t, cfg, pool, newCache(values...))
	}

	t.Run("NONE keeps words unchanged", func(t *testing.T) {
		assert.Equal(t, "bLuE-bLuE-bLuE", caseOf(config.CaseNone))
	})

	t.Run("UPPER forces upper case", func(t *testing.T) {
		assert.Equal(t, "BLUE-BLUE-BLUE", caseOf(config.CaseUpper))
	})

	t.Run("LOWER forces lower case", func(t *testing.T) {
		assert.Equal(t, "blue-blue-blue", caseOf(config.CaseLower))
	})

	t.Run("CAPITALISE upper-cases the first letter only", func(t *testing.T) {
		assert.Equal(t, "Blue-Blue-Blue", caseOf(config.CaseCapitalise))
	})

	t.Run("INVERT lower-cases the first letter only", func(t *testing.T) {
		assert.Equal(t, "bLUE-bLUE-bLUE", caseOf(config.CaseInvert))
	})

	t.Run("ALTERNATE lowers even and uppers odd word indexes", func(t *testing.T) {
		assert.Equal(t, "blue-BLUE-blue", caseOf(config.CaseAlternate))
	})

	t.Run("RANDOM draws one bit per word", func(t *testing.T) {
		// Bits 0 (upper), 1 (lower), 0 (upper). The three word draws come
		// from the same cache first.
		cfg := baseConfig()
		cfg[config.KeyCaseTransform] = config.CaseRandom
		cache := newCache(0.0, 0.0, 0.0, 0.0, 0.0000015, 0.0)
		got := mustAssemble(t, cfg, pool, cache)
		assert.Equal(t, "BLUE-blue-BLUE", got)
	})
}

func TestAssembleSubstitutions(t *testing.T) {
	t.Parallel()

	t.Run("replaces every occurrence in every word", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyNumWords] = 2
		cfg[config.KeySubstitutions] = map[string]string{"o": "0"}
		got := mustAssemble(t, cfg, []string{"moon"}, newCache(0.0))
		assert.Equal(t, "m00n-m00n", got)
	})

	t.Run("entries apply independently in sorted order", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyNumWords] = 2
		cfg[config.KeySubstitutions] = map[string]string{"s": "$", "a": "4"}
		got := mustAssemble(t, cfg, []string{"sass"}, newCache(0.0))
		assert.Equal(t, "$4$$-$4$$", got)
	})

	t.Run("substitution runs after the case transform", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyNumWords] = 2
		cfg[config.KeyCaseTransform] = config.CaseUpper
		cfg[config.KeySubstitutions] = map[string]string{"O": "0"}
		got := mustAssemble(t, cfg, []string{"moon"}, newCache(0.0))
		assert.Equal(t, "M00N-M00N", got)
	})

	t.Run("replacements may be multi-character", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyNumWords] = 2
		cfg[config.KeySubstitutions] = map[string]string{"e": "33"}
		got := mustAssemble(t, cfg, []string{"tree"}, newCache(0.0))
		assert.Equal(t, "tr3333-tr3333", got)
	})
}

func TestAssembleDigitsAndPadding(t *testing.T) {
	t.Parallel()

	t.Run("digit groups join through the separator", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyNumWords] = 2
		cfg[config.KeyPaddingDigitsBefore] = 2
		cfg[config.KeyPaddingDigitsAfter] = 1
		// Word draws 0,0 then digits 1,2 then digit 3.
		cache := newCache(0.0, 0.0, 0.0000015, 0.0000025, 0.0000035)
		got := mustAssemble(t, cfg, []string{"blue"}, cache)
		assert.Equal(t, "12-blue-blue-3", got)
	})

	t.Run("digit groups without a separator attach directly", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyNumWords] = 2
		cfg[config.KeySeparatorCharacter] = config.CharNone
		cfg[config.KeyPaddingDigitsBefore] = 1
		cfg[config.KeyPaddingDigitsAfter] = 0
		got := mustAssemble(t, cfg, []string{"blue"}, newCache(0.0))
		assert.Equal(t, "0blueblue", got)
	})

	t.Run("fixed padding attaches copies front and back", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyNumWords] = 2
		cfg[config.KeyPaddingType] = config.PaddingFixed
		cfg[config.KeyPaddingCharacter] = "*"
		cfg[config.KeyPaddingCharactersBefore] = 1
		cfg[config.KeyPaddingCharactersAfter] = 2
		got := mustAssemble(t, cfg, []string{"blue"}, newCache(0.0))
		assert.Equal(t, "*blue-blue**", got)
	})

	t.Run("SEPARATOR padding reuses the resolved separator", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyNumWords] = 2
		cfg[config.KeySeparatorCharacter] = config.CharRandom
		cfg[config.KeySeparatorAlphabet] = []string{"!", "@"}
		cfg[config.KeyPaddingType] = config.PaddingFixed
		cfg[config.KeyPaddingCharacter] = config.CharSeparator
		cfg[config.KeyPaddingCharactersBefore] = 1
		cfg[config.KeyPaddingCharactersAfter] = 1
		// Words 0,0 then separator draw mapping to index 1.
		got := mustAssemble(t, cfg, []string{"blue"}, newCache(0.0, 0.0, 0.0000015))
		assert.Equal(t, "@blue@blue@", got)
	})

	t.Run("adaptive padding extends to the exact target", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyNumWords] = 2
		cfg[config.KeyPaddingType] = config.PaddingAdaptive
		cfg[config.KeyPaddingCharacter] = "*"
		cfg[config.KeyPadToLength] = 12
		// Base "blue-blue" is 9 characters.
		got := mustAssemble(t, cfg, []string{"blue"}, newCache(0.0))
		assert.Equal(t, "blue-blue***", got)
		assert.Len(t, got, 12)
	})

	t.Run("adaptive padding truncates from the end", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyNumWords] = 3
		cfg[config.KeyWordLengthMin] = 5
		cfg[config.KeyWordLengthMax] = 5
		cfg[config.KeyPaddingType] = config.PaddingAdaptive
		cfg[config.KeyPaddingCharacter] = "*"
		cfg[config.KeyPadToLength] = 12
		// Base "crane-crane-crane" is 17 characters; the cut lands after a
		// separator, mid password. Accepted lossy behavior.
		got := mustAssemble(t, cfg, []string{"crane"}, newCache(0.0))
		assert.Equal(t, "crane-crane-", got)
		assert.Len(t, got, 12)
	})
}

// TestDrawConsumption asserts that one assembly consumes exactly
// ConfigStats().RandomDrawsRequired values for a spread of configs.
func TestDrawConsumption(t *testing.T) {
	t.Parallel()

	configs := map[string]config.Config{
		"plain": baseConfig(),
		"random case": func() config.Config {
			cfg := baseConfig()
			cfg[config.KeyCaseTransform] = config.CaseRandom
			return cfg
		}(),
		"random separator and padding": func() config.Config {
			cfg := baseConfig()
			cfg[config.KeySeparatorCharacter] = config.CharRandom
			cfg[config.KeySymbolAlphabet] = []string{"!", "@"}
			cfg[config.KeyPaddingType] = config.PaddingFixed
			cfg[config.KeyPaddingCharacter] = config.CharRandom
			cfg[config.KeyPaddingCharactersBefore] = 2
			cfg[config.KeyPaddingCharactersAfter] = 2
			return cfg
		}(),
		"digits": func() config.Config {
			cfg := baseConfig()
			cfg[config.KeyPaddingDigitsBefore] = 3
			cfg[config.KeyPaddingDigitsAfter] = 2
			return cfg
		}(),
		"everything at once": func() config.Config {
			cfg := baseConfig()
			cfg[config.KeyCaseTransform] = config.CaseRandom
			cfg[config.KeySeparatorCharacter] = config.CharRandom
			cfg[config.KeySymbolAlphabet] = []string{"!", "@"}
			cfg[config.KeyPaddingDigitsBefore] = 2
			cfg[config.KeyPaddingDigitsAfter] = 2
			cfg[config.KeyPaddingType] = config.PaddingAdaptive
			cfg[config.KeyPaddingCharacter] = config.CharRandom
			cfg[config.KeyPadToLength] = 30
			return cfg
		}(),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, config.Validate(cfg))
			draws := entropy.ConfigStats(cfg).RandomDrawsRequired

			// One batch of exactly the predicted size must be fully
			// consumed with nothing left over and no second refill.
			src := &countingSource{}
			cache := random.NewCache(src)
			cache.SetBatchSize(draws)

			_, err := assembler.Assemble(cfg, []string{"blue", "frog", "king"}, cache)
			require.NoError(t, err)
			assert.Equal(t, 1, src.calls)
			assert.Equal(t, 0, cache.Len())
		})
	}
}

type countingSource struct {
	calls int
}

func (s *countingSource) Draw(n int) ([]float64, error) {
	s.calls++
	return make([]float64, n), nil
}

// TestLengthBounds asserts the generated-length properties over real random
// draws: fixed padding stays within the computed bounds, adaptive padding
// hits the target exactly.
func TestLengthBounds(t *testing.T) {
	t.Parallel()

	pool, err := dictionary.Filter(dictionary.Default().WordList(), 4, 8, false)
	require.NoError(t, err)

	t.Run("fixed padding stays within the computed bounds", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyWordLengthMin] = 4
		cfg[config.KeyWordLengthMax] = 8
		cfg[config.KeyPaddingDigitsBefore] = 2
		cfg[config.KeyPaddingDigitsAfter] = 2
		cfg[config.KeyPaddingType] = config.PaddingFixed
		cfg[config.KeyPaddingCharacter] = "*"
		cfg[config.KeyPaddingCharactersBefore] = 2
		cfg[config.KeyPaddingCharactersAfter] = 2
		require.NoError(t, config.Validate(cfg))

		stats := entropy.ConfigStats(cfg)
		cache := random.NewCache(random.NewCryptoSource())
		cache.SetBatchSize(stats.RandomDrawsRequired)

		for i := 0; i < 50; i++ {
			password, err := assembler.Assemble(cfg, pool, cache)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(password), stats.LengthMin)
			assert.LessOrEqual(t, len(password), stats.LengthMax)
		}
	})

	t.Run("adaptive padding hits the target exactly", func(t *testing.T) {
		cfg := baseConfig()
		cfg[config.KeyWordLengthMin] = 4
		cfg[config.KeyWordLengthMax] = 8
		cfg[config.KeyPaddingType] = config.PaddingAdaptive
		cfg[config.KeyPaddingCharacter] = "*"
		cfg[config.KeyPadToLength] = 24
		require.NoError(t, config.Validate(cfg))

		cache := random.NewCache(random.NewCryptoSource())
		for i := 0; i < 50; i++ {
			password, err := assembler.Assemble(cfg, pool, cache)
			require.NoError(t, err)
			assert.Len(t, password, 24)
		}
	})
}

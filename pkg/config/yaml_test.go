package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordpass/pkg/config"
)

const sampleYAML = `
num_words: 3
word_length_min: 4
word_length_max: 8
case_transform: ALTERNATE
separator_character: RANDOM
symbol_alphabet: ["!", "@", "$"]
padding_digits_before: 2
padding_digits_after: 2
padding_type: NONE
character_substitutions:
  o: "0"
`

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("decodes a full config document", func(t *testing.T) {
		cfg, err := config.ParseYAML([]byte(sampleYAML))
		require.NoError(t, err)
		require.NoError(t, config.Validate(cfg))
		assert.Equal(t, 3, cfg.Int(config.KeyNumWords))
		assert.Equal(t, []string{"!", "@", "$"}, cfg.Alphabet(config.KeySymbolAlphabet))
		assert.Equal(t, map[string]string{"o": "0"}, cfg.Substitutions())
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := config.ParseYAML([]byte("{not yaml"))
		require.ErrorIs(t, err, config.ErrParseConfig)
	})

	t.Run("decoded documents work as overrides", func(t *testing.T) {
		overrides, err := config.ParseYAML([]byte("num_words: 5\nbogus_key: 1\n"))
		require.NoError(t, err)

		merged, warns, err := config.MergeOverrides(minimalConfig(), overrides)
		require.NoError(t, err)
		require.Len(t, warns, 1)
		assert.Equal(t, 5, merged.Int(config.KeyNumWords))
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("loads a config from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

		cfg, err := config.LoadFile(path)
		require.NoError(t, err)
		assert.NoError(t, config.Validate(cfg))
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, config.ErrParseConfig)
	})
}

package config

import (
	"errors"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Entropy warning modes for Settings.EntropyWarnings.
const (
	WarnAll   = "ALL"
	WarnBlind = "BLIND"
	WarnSeen  = "SEEN"
	WarnNone  = "NONE"
)

// Settings holds process-level tunables that are not part of the password
// configuration itself: the entropy floors below which the statistics engine
// raises warnings, and which of those warning categories are enabled.
type Settings struct {
	// EntropyMinBlind is the minimum acceptable blind entropy in bits.
	EntropyMinBlind int `env:"WORDPASS_ENTROPY_MIN_BLIND" envDefault:"78"`
	// EntropyMinSeen is the minimum acceptable seen entropy in bits.
	EntropyMinSeen int `env:"WORDPASS_ENTROPY_MIN_SEEN" envDefault:"52"`
	// EntropyWarnings selects which floor checks may warn:
	// ALL, BLIND, SEEN, or NONE.
	EntropyWarnings string `env:"WORDPASS_ENTROPY_WARNINGS" envDefault:"ALL"`
}

// WarnOnBlind reports whether blind-entropy floor warnings are enabled.
func (s Settings) WarnOnBlind() bool {
	mode := strings.ToUpper(s.EntropyWarnings)
	return mode == WarnAll || mode == WarnBlind
}

// WarnOnSeen reports whether seen-entropy floor warnings are enabled.
func (s Settings) WarnOnSeen() bool {
	mode := strings.ToUpper(s.EntropyWarnings)
	return mode == WarnAll || mode == WarnSeen
}

// DefaultSettings returns the built-in floors with all warnings enabled.
func DefaultSettings() Settings {
	return Settings{
		EntropyMinBlind: 78,
		EntropyMinSeen:  52,
		EntropyWarnings: WarnAll,
	}
}

var defaultEnvLoaded sync.Once

// LoadSettings parses Settings from environment variables, loading a .env
// file first if one exists in the working directory.
func LoadSettings() (Settings, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Join(ErrParseSettings, err)
	}
	return s, nil
}

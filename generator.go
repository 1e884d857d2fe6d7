package wordpass

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/wordpass/pkg/assembler"
	"github.com/dmitrymomot/wordpass/pkg/config"
	"github.com/dmitrymomot/wordpass/pkg/dictionary"
	"github.com/dmitrymomot/wordpass/pkg/entropy"
	"github.com/dmitrymomot/wordpass/pkg/random"
)

// Generator produces passwords from a validated config, a word source, and a
// random source. All derived state (the filtered word pool, the random
// buffer, the cached statistics) is owned by the instance and rebuilt
// synchronously on every replacement, guarded by a single mutex.
type Generator struct {
	mu sync.Mutex

	id       string
	log      *slog.Logger
	settings config.Settings

	cfg    config.Config
	source dictionary.WordSource
	cache  *random.Cache

	pool     []string
	accented bool
	stats    entropy.Stats
	ent      entropy.Entropy
	warnings []config.Warning

	generated uint64
}

// Option configures a Generator under construction.
type Option func(*options) error

type options struct {
	cfg      config.Config
	warnings []config.Warning
	source   dictionary.WordSource
	rand     random.Source
	log      *slog.Logger
	settings *config.Settings
}

// WithConfig sets the generator's config. The config is validated during New.
func WithConfig(cfg config.Config) Option {
	return func(o *options) error {
		if err := config.Validate(cfg); err != nil {
			return err
		}
		o.cfg = config.Clone(cfg)
		return nil
	}
}

// WithPreset sets the generator's config from a named preset with optional
// overrides. Override warnings are logged and retained on the generator.
func WithPreset(name string, overrides config.Config) Option {
	return func(o *options) error {
		cfg, warns, err := config.Preset(name, overrides)
		if err != nil {
			return err
		}
		o.cfg = cfg
		o.warnings = warns
		return nil
	}
}

// WithWordSource replaces the default built-in English word source.
func WithWordSource(src dictionary.WordSource) Option {
	return func(o *options) error {
		if src == nil {
			return fmt.Errorf("nil word source")
		}
		o.source = src
		return nil
	}
}

// WithRandomSource replaces the default crypto/rand backed random source.
func WithRandomSource(src random.Source) Option {
	return func(o *options) error {
		if src == nil {
			return fmt.Errorf("nil random source")
		}
		o.rand = src
		return nil
	}
}

// WithLogger sets the structured logger warnings are reported to.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) error {
		if log != nil {
			o.log = log
		}
		return nil
	}
}

// WithSettings overrides the process settings (entropy floors and warning
// suppression) for this generator.
func WithSettings(s config.Settings) Option {
	return func(o *options) error {
		o.settings = &s
		return nil
	}
}

// New constructs a Generator. Without options it uses the DEFAULT preset,
// the built-in English word list, and a crypto/rand backed random source.
func New(opts ...Option) (*Generator, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.cfg == nil {
		cfg, _, err := config.Preset("DEFAULT", nil)
		if err != nil {
			return nil, err
		}
		o.cfg = cfg
	}
	if o.source == nil {
		o.source = dictionary.Default()
	}
	if o.rand == nil {
		o.rand = random.NewCryptoSource()
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.settings == nil {
		s, err := config.LoadSettings()
		if err != nil {
			return nil, err
		}
		o.settings = &s
	}

	g := &Generator{
		id:       uuid.NewString(),
		settings: *o.settings,
		cfg:      o.cfg,
		source:   o.source,
		cache:    random.NewCache(o.rand),
		warnings: o.warnings,
	}
	g.log = o.log.With(slog.String("generator_id", g.id))

	if err := g.rebuild(); err != nil {
		return nil, err
	}
	g.reportWarnings(g.warnings)
	return g, nil
}

// rebuild refreshes every piece of derived state from the active config and
// word source: the filtered pool, the cache batch size, and the statistics.
// Callers hold the construction context or the mutex.
func (g *Generator) rebuild() error {
	raw := g.source.WordList()
	pool, err := dictionary.Filter(
		raw,
		g.cfg.Int(config.KeyWordLengthMin),
		g.cfg.Int(config.KeyWordLengthMax),
		g.cfg.Bool(config.KeyAllowAccents),
	)
	if err != nil {
		return err
	}

	g.pool = pool
	g.accented = g.cfg.Bool(config.KeyAllowAccents) && dictionary.ContainsAccents(pool)
	g.stats = entropy.ConfigStats(g.cfg)
	g.cache.SetBatchSize(g.stats.RandomDrawsRequired)

	ent, warns := entropy.Calculate(g.cfg, len(pool), g.accented, g.settings)
	g.ent = ent
	g.warnings = append(g.warnings, warns...)
	g.reportWarnings(warns)
	return nil
}

func (g *Generator) reportWarnings(warns []config.Warning) {
	for _, w := range warns {
		g.log.Warn("password generator warning",
			slog.String("key", w.Key),
			slog.String("warning", w.Message),
		)
	}
}

// Password assembles one password.
func (g *Generator) Password() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	password, err := assembler.Assemble(g.cfg, g.pool, g.cache)
	if err != nil {
		return "", err
	}
	g.generated++
	return password, nil
}

// Passwords assembles n passwords. On error the passwords generated so far
// are discarded.
func (g *Generator) Passwords(n int) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		p, err := g.Password()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// UpdateConfig validates cfg and swaps it in atomically. On any failure,
// whether an invalid config or a word pool the new length bounds leave
// empty, the previously active config and derived state remain in effect.
func (g *Generator) UpdateConfig(cfg config.Config) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	prevCfg, prevPool, prevAccented := g.cfg, g.pool, g.accented
	prevStats, prevEnt, prevWarns := g.stats, g.ent, g.warnings

	g.cfg = config.Clone(cfg)
	g.warnings = nil
	if err := g.rebuild(); err != nil {
		g.cfg, g.pool, g.accented = prevCfg, prevPool, prevAccented
		g.stats, g.ent, g.warnings = prevStats, prevEnt, prevWarns
		return err
	}
	return nil
}

// ApplyOverrides merges overrides into the active config and swaps in the
// result. Per-key problems are returned as warnings; cross-key violations
// and an emptied word pool are fatal and leave the active state untouched.
func (g *Generator) ApplyOverrides(overrides config.Config) ([]config.Warning, error) {
	g.mu.Lock()
	base := config.Clone(g.cfg)
	g.mu.Unlock()

	merged, warns, err := config.MergeOverrides(base, overrides)
	if err != nil {
		return warns, err
	}
	g.reportWarnings(warns)
	if err := g.UpdateConfig(merged); err != nil {
		return warns, err
	}
	return warns, nil
}

// SetWordSource replaces the word source and rebuilds the pool and
// statistics. A source whose filtered pool is empty is rejected and the
// previous source stays active.
func (g *Generator) SetWordSource(src dictionary.WordSource) error {
	if src == nil {
		return fmt.Errorf("nil word source")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	prev := g.source
	prevPool, prevAccented := g.pool, g.accented
	g.source = src
	if err := g.rebuild(); err != nil {
		g.source = prev
		g.pool, g.accented = prevPool, prevAccented
		return err
	}
	return nil
}

// SetRandomSource replaces the random source and clears any buffered values
// drawn from the previous one.
func (g *Generator) SetRandomSource(src random.Source) error {
	if src == nil {
		return fmt.Errorf("nil random source")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.cache.SetSource(src)
	return nil
}

// Config returns a copy of the active config.
func (g *Generator) Config() config.Config {
	g.mu.Lock()
	defer g.mu.Unlock()
	return config.Clone(g.cfg)
}

// Stats returns the structural statistics of the active config.
func (g *Generator) Stats() entropy.Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats
}

// Entropy returns the entropy estimates for the active config and pool.
func (g *Generator) Entropy() entropy.Entropy {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ent
}

// Warnings returns the warnings accumulated by the most recent config or
// source change.
func (g *Generator) Warnings() []config.Warning {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]config.Warning, len(g.warnings))
	copy(out, g.warnings)
	return out
}

// PoolSize returns the number of words in the filtered pool.
func (g *Generator) PoolSize() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pool)
}

// SourceDescription describes the active word source.
func (g *Generator) SourceDescription() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.source.SourceDescription()
}

// GeneratedCount returns how many passwords this instance has produced.
func (g *Generator) GeneratedCount() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generated
}

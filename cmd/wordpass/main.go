// Package main provides the CLI entrypoint for wordpass.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/wordpass"
	"github.com/dmitrymomot/wordpass/pkg/config"
	"github.com/dmitrymomot/wordpass/pkg/dictionary"
	"github.com/dmitrymomot/wordpass/pkg/entropy"
)

var (
	genPreset     string
	genConfigFile string
	genOverrides  []string
	genCount      int
	genDictionary string
	genScore      bool

	statsJSON bool
	quiet     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordpass",
		Short:         "Generate memorable word-based passwords",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress warnings")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more passwords",
		RunE:  runGenerate,
	}
	addGenerateFlags(rootCmd)
	addGenerateFlags(generateCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List the available configuration presets",
		RunE:  runPresets,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show length bounds and entropy for a configuration",
		RunE:  runStats,
	}
	statsCmd.Flags().StringVarP(&genPreset, "preset", "p", "DEFAULT", "preset name")
	statsCmd.Flags().StringVarP(&genConfigFile, "config", "c", "", "YAML config file")
	statsCmd.Flags().StringArrayVarP(&genOverrides, "set", "s", nil, "config override key=value")
	statsCmd.Flags().StringVarP(&genDictionary, "dictionary", "d", "", "word file, one word per line")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit JSON")

	rootCmd.AddCommand(generateCmd, presetsCmd, statsCmd)
	return rootCmd
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&genPreset, "preset", "p", "DEFAULT", "preset name")
	cmd.Flags().StringVarP(&genConfigFile, "config", "c", "", "YAML config file")
	cmd.Flags().StringArrayVarP(&genOverrides, "set", "s", nil, "config override key=value")
	cmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of passwords")
	cmd.Flags().StringVarP(&genDictionary, "dictionary", "d", "", "word file, one word per line")
	cmd.Flags().BoolVar(&genScore, "score", false, "print a zxcvbn score next to each password")
}

// newGenerator builds a Generator from the shared flags.
func newGenerator() (*wordpass.Generator, error) {
	opts := []wordpass.Option{
		wordpass.WithLogger(newLogger()),
	}

	switch {
	case genConfigFile != "":
		cfg, err := config.LoadFile(genConfigFile)
		if err != nil {
			return nil, err
		}
		overrides, err := parseOverrides(genOverrides)
		if err != nil {
			return nil, err
		}
		if len(overrides) > 0 {
			merged, warns, err := config.MergeOverrides(cfg, overrides)
			if err != nil {
				return nil, err
			}
			printWarnings(warns)
			cfg = merged
		}
		opts = append(opts, wordpass.WithConfig(cfg))
	default:
		overrides, err := parseOverrides(genOverrides)
		if err != nil {
			return nil, err
		}
		opts = append(opts, wordpass.WithPreset(genPreset, overrides))
	}

	if genDictionary != "" {
		src, err := dictionary.NewFileSource(genDictionary)
		if err != nil {
			return nil, err
		}
		opts = append(opts, wordpass.WithWordSource(src))
	}

	return wordpass.New(opts...)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	printWarnings(gen.Warnings())

	passwords, err := gen.Passwords(genCount)
	if err != nil {
		return err
	}
	for _, p := range passwords {
		if genScore {
			fmt.Printf("%s\t(zxcvbn score %d/4)\n", p, entropy.Score(p))
		} else {
			fmt.Println(p)
		}
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	for _, name := range config.PresetNames() {
		desc, err := config.PresetDescription(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-10s %s\n", name, desc)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	stats := gen.Stats()
	ent := gen.Entropy()

	if statsJSON {
		out := map[string]any{
			"source":                gen.SourceDescription(),
			"pool_size":             gen.PoolSize(),
			"length_min":            stats.LengthMin,
			"length_max":            stats.LengthMax,
			"random_draws_required": stats.RandomDrawsRequired,
			"entropy_blind_min":     ent.BlindMin,
			"entropy_blind_max":     ent.BlindMax,
			"entropy_blind_avg":     ent.BlindAvg,
			"entropy_seen":          ent.Seen,
		}
		var warnings []string
		for _, w := range gen.Warnings() {
			warnings = append(warnings, w.String())
		}
		out["warnings"] = warnings
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Source:      ", gen.SourceDescription())
	fmt.Println("Pool size:   ", gen.PoolSize())
	fmt.Printf("Length:       %d to %d characters\n", stats.LengthMin, stats.LengthMax)
	fmt.Println("Random draws:", stats.RandomDrawsRequired)
	fmt.Printf("Blind entropy: between %.2f and %.2f bits (avg %.2f)\n", ent.BlindMin, ent.BlindMax, ent.BlindAvg)
	fmt.Printf("Seen entropy:  %.2f bits\n", ent.Seen)
	printWarnings(gen.Warnings())
	return nil
}

// parseOverrides turns --set key=value flags into a Config. Values stay
// strings except ints and bools, which cover every scalar key; list and
// mapping keys need a YAML config file.
func parseOverrides(pairs []string) (config.Config, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(config.Config, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid override %q: expected key=value", pair)
		}
		overrides[key] = coerce(value)
	}
	return overrides, nil
}

func coerce(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err == nil && fmt.Sprint(n) == value {
		return n
	}
	return value
}

func printWarnings(warns []config.Warning) {
	if quiet {
		return
	}
	for _, w := range warns {
		fmt.Fprintln(os.Stderr, "Warning:", w.String())
	}
}

// newLogger keeps the generator's structured log output above the warning
// level; the CLI reports warnings itself via printWarnings.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

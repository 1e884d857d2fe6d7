package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML mapping into a Config. Values keep their decoded
// shapes (strings, ints, bools, lists, mappings); the result is not validated
// here, so it can be used either as a full config for Validate or as an
// override set for MergeOverrides.
func ParseYAML(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}
	cfg := make(Config, len(raw))
	for key, v := range raw {
		cfg[key] = v
	}
	return cfg, nil
}

// LoadFile reads and parses a YAML config document from disk.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}
	return ParseYAML(data)
}

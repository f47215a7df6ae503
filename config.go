package calculator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxPowBits is the default limit on the estimated size of the result
// of ^, about 1.26 million decimal digits.
const DefaultMaxPowBits = 1 << 22

// Config holds the settings of a session and its read loop.
type Config struct {
	// Prompt is printed before reading each line.
	Prompt string `yaml:"prompt"`
	// Color enables coloured error messages even when the output is not a
	// terminal.
	Color bool `yaml:"color"`
	// Verbose adds the reason and position to error messages.
	Verbose bool `yaml:"verbose"`
	// Echo prints the postfix form of each expression before its value.
	Echo bool `yaml:"echo"`
	// MaxPowBits limits the estimated size in bits of the result of ^. Zero
	// or less means no limit.
	MaxPowBits int64 `yaml:"max_pow_bits"`
	// Vars are initial variable definitions of the form "name=value", where
	// value is an expression that may use the names defined before it.
	Vars []string `yaml:"vars"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{MaxPowBits: DefaultMaxPowBits}
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their default values, and unknown fields are errors.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer file.Close()
	cfg, err := ReadConfig(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ReadConfig decodes a YAML configuration from r on top of the defaults. An
// empty document gives the defaults.
func ReadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	for _, b := range cfg.Vars {
		if _, _, err := ParseBinding(b); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

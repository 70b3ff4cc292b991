// Package config loads the optional YAML configuration of the ipogen CLI.
//
// Example file:
//
//	seed: 42
//	format: table      # table | csv
//	title: Browser matrix
//	border: rounded    # normal | rounded | ascii | markdown
//	verify: true
//	log_level: info    # debug | info | warn | error
//
// Unknown keys are rejected. Command-line flags override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a file that cannot be parsed or fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the CLI knobs.
type Config struct {
	// Seed drives placeholder resolution; 0 selects the library default.
	Seed int64 `yaml:"seed"`

	// Format selects the output: "table" or "csv".
	Format string `yaml:"format" validate:"oneof=table csv"`

	// Title heads the table output; empty keeps the default title.
	Title string `yaml:"title" validate:"max=120"`

	// Border names the table frame; empty lets the CLI decide.
	Border string `yaml:"border" validate:"omitempty,oneof=normal rounded ascii markdown"`

	// Verify runs the brute-force coverage check after generation.
	Verify bool `yaml:"verify"`

	// LogLevel is the zap level for diagnostics on stderr.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format:   "table",
		LogLevel: "warn",
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Load reads path over Default() and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result. An empty
// document yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

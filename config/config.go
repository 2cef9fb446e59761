// Package config loads robotlex settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/dhamidi/robotlex/robot/classify"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Recognizers names the recognizers to run, in order. Empty means the
	// builtin default order.
	Recognizers []string `yaml:"recognizers,omitempty"`
	Log         Log      `yaml:"log"`
	Batch       Batch    `yaml:"batch"`
}

type Log struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file,omitempty"`
}

type Batch struct {
	Workers    int           `yaml:"workers"`
	Timeout    time.Duration `yaml:"timeout"`
	Extensions []string      `yaml:"extensions"`
}

func Default() *Config {
	return &Config{
		Recognizers: classify.RecognizerNames(),
		Batch: Batch{
			Workers:    4,
			Timeout:    10 * time.Second,
			Extensions: []string{".robot", ".resource", ".txt", ".tsv"},
		},
	}
}

// Load reads path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := classify.RecognizersByName(c.Recognizers); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers must be positive, got %d", ErrInvalid, c.Batch.Workers)
	}
	if c.Batch.Timeout < 0 {
		return fmt.Errorf("%w: batch.timeout must not be negative", ErrInvalid)
	}
	if c.Log.Verbosity < -4 {
		return fmt.Errorf("%w: log.verbosity below -4: %d", ErrInvalid, c.Log.Verbosity)
	}
	return nil
}

// Builder returns a context builder running the configured recognizers.
func (c *Config) Builder() (*classify.Builder, error) {
	if len(c.Recognizers) == 0 {
		return classify.NewBuilder(), nil
	}
	rs, err := classify.RecognizersByName(c.Recognizers)
	if err != nil {
		return nil, err
	}
	return classify.NewBuilder(classify.WithRecognizers(rs...)), nil
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Package config loads framecat profiles from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/googollee/go-framing"
	"github.com/googollee/go-framing/codec"
)

// Config is a framecat profile.
type Config struct {
	Strategy     string  `yaml:"strategy" toml:"strategy"`
	Codec        string  `yaml:"codec" toml:"codec"`
	BufferSize   int     `yaml:"buffer_size" toml:"buffer_size"`
	MaxFrameSize int     `yaml:"max_frame_size" toml:"max_frame_size"`
	Logging      Logging `yaml:"logging" toml:"logging"`
	Serve        Serve   `yaml:"serve" toml:"serve"`
}

// Logging contains logging configuration.
type Logging struct {
	Enable    bool `yaml:"enable" toml:"enable"`
	Verbosity int  `yaml:"verbosity" toml:"verbosity"`
}

// Serve configures `framecat serve`.
type Serve struct {
	Addr        string `yaml:"addr" toml:"addr"`
	Path        string `yaml:"path" toml:"path"`
	MetricsPath string `yaml:"metrics_path" toml:"metrics_path"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Strategy:     "newline",
		Codec:        "raw",
		BufferSize:   4096,
		MaxFrameSize: 16 << 20,
		Logging: Logging{
			Enable: true,
		},
		Serve: Serve{
			Addr:        "127.0.0.1:8080",
			Path:        "/stream",
			MetricsPath: "/metrics",
		},
	}
}

// Load reads the file at path over the defaults. The format is chosen by
// the extension: .yaml, .yml or .toml.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, in the format chosen by the extension.
func Save(cfg *Config, path string) error {
	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	case ".toml":
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks that the named strategy and codec exist and the sizes are
// usable.
func (c *Config) Validate() error {
	var errs []error
	if _, err := framing.Lookup(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := codec.Lookup(c.Codec); err != nil {
		errs = append(errs, err)
	}
	if c.BufferSize <= 0 {
		errs = append(errs, fmt.Errorf("buffer_size must be positive, got %d", c.BufferSize))
	}
	if c.MaxFrameSize < c.BufferSize {
		errs = append(errs, fmt.Errorf("max_frame_size %d is less than buffer_size %d", c.MaxFrameSize, c.BufferSize))
	}
	return errors.Join(errs...)
}

// FramingOptions returns the options for an Encoder or a Decoder.
func (c *Config) FramingOptions() []framing.Option {
	return []framing.Option{
		framing.WithBufferSize(c.BufferSize),
		framing.WithMaxFrameSize(c.MaxFrameSize),
	}
}

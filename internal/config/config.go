package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// user defaults applied when the matching flags are not given
type Config struct {
	// default output format for convert (html, csv or srt); empty
	// means the --to flag is required
	Format string `yaml:"format"`

	// input character set; empty means detect
	InputCharset string `yaml:"input_charset"`

	// whether rendered output includes speaker names: auto, always
	// or never
	Names string `yaml:"names"`
}

func defaultConfig() *Config {
	return &Config{
		Names: "auto",
	}
}

// Path returns the per-user config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "subconv", "config.yaml"), nil
}

// Load reads the user config file. A missing file is not an error:
// defaults are returned.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return defaultConfig(), nil
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (*Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case "", "html", "csv", "srt":
	default:
		return fmt.Errorf("invalid format %q: use html, csv or srt", c.Format)
	}
	switch c.Names {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid names mode %q: use auto, always or never", c.Names)
	}
	return nil
}

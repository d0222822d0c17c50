// Package config loads the settings of the vecpath command from TOML or YAML
// files.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/vecpath"
)

// Config is the complete configuration of the vecpath command.
type Config struct {
	Format  Format  `toml:"format" yaml:"format"`
	Grammar Grammar `toml:"grammar" yaml:"grammar"`
	Join    Join    `toml:"join" yaml:"join"`
	Fit     Fit     `toml:"fit" yaml:"fit"`
	Log     Log     `toml:"log" yaml:"log"`
}

type Format struct {
	// MaxPrecision is the maximum number of decimals of formatted
	// coordinates. Zero means as many as needed.
	MaxPrecision int `toml:"max_precision" yaml:"max_precision"`
}

type Grammar struct {
	// ReflectSmooth makes S and T reflect the previous control point.
	ReflectSmooth bool `toml:"reflect_smooth" yaml:"reflect_smooth"`
}

type Join struct {
	// Threshold is the distance within which endpoints are considered
	// touching.
	Threshold float64 `toml:"threshold" yaml:"threshold"`
}

type Fit struct {
	// Tolerance is the maximum distance between samples and fitted curves.
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`
}

type Log struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Join: Join{Threshold: 1e-6},
		Fit:  Fit{Tolerance: 0.5},
		Log:  Log{Level: "warn"},
	}
}

// Load reads the configuration file at path, which may start with ~. Fields
// missing from the file keep their default values. The format is chosen by
// the file extension.
func Load(path string) (Config, error) {
	full, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	f, err := os.Open(full)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var format string
	switch ext := strings.ToLower(filepath.Ext(full)); ext {
	case ".toml":
		format = "toml"
	case ".yaml", ".yml":
		format = "yaml"
	default:
		return Config{}, fmt.Errorf("config %q: unsupported file extension %q", full, ext)
	}
	cfg, err := Decode(f, format)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", full, err)
	}
	return cfg, nil
}

// Decode reads a configuration in the given format, "toml" or "yaml", from r
// and validates it. Unknown keys are an error.
func Decode(r io.Reader, format string) (Config, error) {
	cfg := Default()
	switch format {
	case "toml":
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decoding toml: %w", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unknown config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (cfg Config) Validate() error {
	if cfg.Format.MaxPrecision < 0 {
		return fmt.Errorf("format.max_precision must not be negative, got %d", cfg.Format.MaxPrecision)
	}
	if cfg.Join.Threshold < 0 {
		return fmt.Errorf("join.threshold must not be negative, got %g", cfg.Join.Threshold)
	}
	if cfg.Fit.Tolerance <= 0 {
		return fmt.Errorf("fit.tolerance must be positive, got %g", cfg.Fit.Tolerance)
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (cfg Config) ParseOptions() vecpath.ParseOptions {
	return vecpath.ParseOptions{ReflectSmooth: cfg.Grammar.ReflectSmooth}
}

func (cfg Config) FormatOptions() vecpath.FormatOptions {
	return vecpath.FormatOptions{MaxPrecision: cfg.Format.MaxPrecision}
}

// SlogLevel converts the configured level name. An empty level is warn.
func (l Log) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"lumen/internal/utils/fs"
)

// FileName is the project configuration file looked up next to the sources.
const FileName = "lumen.toml"

var ErrInvalidConfig = errors.New("invalid configuration")

// Backends lists the accepted values of build.backend.
var Backends = []string{"qbe", "llvm"}

type Config struct {
	Build BuildConfig `toml:"build"`
	Debug DebugConfig `toml:"debug"`
}

type BuildConfig struct {
	Backend  string `toml:"backend"`  // qbe | llvm
	Output   string `toml:"output"`   // empty: derive from the input file
	Parallel int    `toml:"parallel"` // >1 lowers functions concurrently
}

type DebugConfig struct {
	Enabled bool `toml:"enabled"`
	Tokens  bool `toml:"tokens"`
}

func Default() *Config {
	return &Config{
		Build: BuildConfig{Backend: "qbe"},
	}
}

// Load reads path over the defaults. Keys the file omits keep their
// default value; unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%s: %w:\n%s", path, ErrInvalidConfig, strict.String())
		}
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads dir/lumen.toml, falling back to the defaults when
// there is no such file.
func LoadOrDefault(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if !fs.IsValidFile(path) {
		return Default(), nil
	}
	return Load(path)
}

// Save writes cfg to dir/lumen.toml.
func Save(dir string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	known := false
	for _, name := range Backends {
		if c.Build.Backend == name {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown backend %q (want one of %v)", ErrInvalidConfig, c.Build.Backend, Backends)
	}
	if c.Build.Parallel < 0 {
		return fmt.Errorf("%w: parallel must not be negative, got %d", ErrInvalidConfig, c.Build.Parallel)
	}
	return nil
}

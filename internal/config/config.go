// Package config manages the TOML engine-tuning file for the spelling
// corrector: the build depth, prefix length, key scheme, and default
// query parameters a Corrector is built with.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/dmitry-maltsev/spelling-corrector/internal/corrector"
)

// Engine holds the tunable parameters of a corrector.Config, exposed as
// TOML fields so an operator can adjust them without a rebuild.
type Engine struct {
	BuildMaxEditDistance   int    `toml:"build_max_edit_distance"`
	PrefixLength           int    `toml:"prefix_length"`
	KeyScheme              string `toml:"key_scheme"`
	DefaultMaxEditDistance int    `toml:"default_max_edit_distance"`
	DefaultTopK            int    `toml:"default_top_k"`
}

// Config is the top-level TOML document shape.
type Config struct {
	Engine Engine `toml:"engine"`
}

// DefaultConfig returns a Config mirroring corrector.DefaultConfig.
func DefaultConfig() *Config {
	d := corrector.DefaultConfig()
	return &Config{
		Engine: Engine{
			BuildMaxEditDistance:   d.BuildMaxEditDistance,
			PrefixLength:           d.PrefixLength,
			KeyScheme:              d.KeyScheme,
			DefaultMaxEditDistance: d.DefaultMaxEditDistance,
			DefaultTopK:            d.DefaultTopK,
		},
	}
}

// ToCorrectorConfig converts the loaded TOML values into a corrector.Config.
func (c *Config) ToCorrectorConfig() corrector.Config {
	return corrector.Config{
		BuildMaxEditDistance:   c.Engine.BuildMaxEditDistance,
		PrefixLength:           c.Engine.PrefixLength,
		KeyScheme:              c.Engine.KeyScheme,
		DefaultMaxEditDistance: c.Engine.DefaultMaxEditDistance,
		DefaultTopK:            c.Engine.DefaultTopK,
	}
}

// LoadConfig reads and decodes a TOML file at path.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as TOML, creating parent directories
// as needed.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// InitConfig loads path, or creates it with DefaultConfig's values if
// missing. Any load failure falls back to the built-in defaults rather
// than aborting startup: tuning config should never block the engine
// from starting.
func InitConfig(path string) *Config {
	if path == "" {
		return DefaultConfig()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, path); err != nil {
			log.Warnf("could not create default config at %s: %v", path, err)
		}
		return cfg
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Warnf("could not load config from %s, using defaults: %v", path, err)
		return DefaultConfig()
	}
	return cfg
}

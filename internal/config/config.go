// Package config loads the settings of the gridpack tool.
package config

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/robert-malhotra/go-ndgrid/internal/log"
)

// ErrInvalid is returned when a loaded configuration is inconsistent.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full tool configuration.
type Config struct {
	Grid   GridConfig   `mapstructure:"grid"`
	Region RegionConfig `mapstructure:"region"`
	// Props selects the element properties to transfer; empty means all.
	Props []int      `mapstructure:"props"`
	Log   log.Config `mapstructure:"log"`
}

// GridConfig describes the grid shape.
type GridConfig struct {
	Extents []int `mapstructure:"extents"`
	Ghost   []int `mapstructure:"ghost"`
}

// RegionConfig selects the sub-region to transfer. When Domain is set the
// region is the grid's domain and Start/Stop are ignored.
type RegionConfig struct {
	Domain bool  `mapstructure:"domain"`
	Start  []int `mapstructure:"start"`
	Stop   []int `mapstructure:"stop"`
}

func setDefaults(v *viper.Viper) {
	def := log.DefaultConfig()
	v.SetDefault("grid.extents", []int{8, 8})
	v.SetDefault("grid.ghost", []int{1, 1})
	v.SetDefault("region.domain", true)
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.format", def.Format)
	v.SetDefault("log.stdout", def.Stdout)
	v.SetDefault("log.stderr", def.Stderr)
}

// Load reads a YAML or JSON file into a Config. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			v.SetConfigType("yaml")
		case ".json":
			v.SetConfigType("json")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the dimensionality of every field agrees.
func (c *Config) Validate() error {
	n := len(c.Grid.Extents)
	if n == 0 {
		return errors.Wrap(ErrInvalid, "grid.extents is empty")
	}
	if len(c.Grid.Ghost) != 0 && len(c.Grid.Ghost) != n {
		return errors.Wrapf(ErrInvalid, "grid.ghost has %d entries, want %d", len(c.Grid.Ghost), n)
	}
	if !c.Region.Domain {
		if len(c.Region.Start) != n || len(c.Region.Stop) != n {
			return errors.Wrapf(ErrInvalid, "region start/stop must have %d entries", n)
		}
	}
	for _, p := range c.Props {
		if p < 0 {
			return errors.Wrapf(ErrInvalid, "negative property index %d", p)
		}
	}
	return nil
}

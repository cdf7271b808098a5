// Package config loads the settings shared by the climbingroutes commands.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/spf13/viper"
)

// Config holds the resolved settings
type Config struct {
	LogLevel string        `mapstructure:"logLevel"`
	Storage  StorageConfig `mapstructure:"storage"`
	Palette  PaletteConfig `mapstructure:"palette"`
	Render   SizeConfig    `mapstructure:"render"`
	Viewer   SizeConfig    `mapstructure:"viewer"`
}

// StorageConfig holds the route database settings
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// PaletteConfig holds one hex color per difficulty band
type PaletteConfig struct {
	Green  string `mapstructure:"green"`
	Yellow string `mapstructure:"yellow"`
	Orange string `mapstructure:"orange"`
	Red    string `mapstructure:"red"`
}

// SizeConfig is a width and height in pixels
type SizeConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// SetDefaults registers the default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("storage.path", "climbingroutes.db")

	v.SetDefault("palette.green", grade.HexColor(grade.DefaultPalette[grade.Green]))
	v.SetDefault("palette.yellow", grade.HexColor(grade.DefaultPalette[grade.Yellow]))
	v.SetDefault("palette.orange", grade.HexColor(grade.DefaultPalette[grade.Orange]))
	v.SetDefault("palette.red", grade.HexColor(grade.DefaultPalette[grade.Red]))

	v.SetDefault("render.width", 800)
	v.SetDefault("render.height", 1000)
	v.SetDefault("viewer.width", 1280)
	v.SetDefault("viewer.height", 800)
}

// Load reads the configuration. An empty path searches for climbingroutes.yaml in the
// working directory; a missing file there is not an error. Environment variables with
// the CLIMBROUTES_ prefix override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("CLIMBROUTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("climbingroutes")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}

	if cfg.Render.Width <= 0 || cfg.Render.Height <= 0 {
		return Config{}, fmt.Errorf("render size must be positive: %dx%d", cfg.Render.Width, cfg.Render.Height)
	}

	return cfg, nil
}

// BandPalette parses the configured colors
func (c Config) BandPalette() (grade.BandPalette, error) {
	var p grade.BandPalette
	colors := map[grade.Band]string{
		grade.Green:  c.Palette.Green,
		grade.Yellow: c.Palette.Yellow,
		grade.Orange: c.Palette.Orange,
		grade.Red:    c.Palette.Red,
	}

	for band, hex := range colors {
		col, err := grade.ParseHexColor(hex)
		if err != nil {
			return p, fmt.Errorf("palette.%s: %w", band, err)
		}
		p[band] = col
	}

	return p, nil
}

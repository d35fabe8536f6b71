package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading environment overrides,
// e.g. SPHERES_OUTPUT or SPHERES_TILE_SIZE.
const EnvPrefix = "SPHERES"

// Config keys
const (
	KeyWidth    = "width"
	KeyHeight   = "height"
	KeyOutput   = "output"
	KeyWorkers  = "workers"
	KeyTileSize = "tile_size"
	KeyPreview  = "preview"
)

// Config represents the render configuration
type Config struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	Output   string `mapstructure:"output"`
	Workers  int    `mapstructure:"workers"`   // 0 = use CPU count
	TileSize int    `mapstructure:"tile_size"` // Square tile edge in pixels
	Preview  bool   `mapstructure:"preview"`   // Allow the console preview for small images
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:    512,
		Height:   512,
		Output:   "./spheres.png",
		Workers:  0,
		TileSize: 64,
		Preview:  true,
	}
}

// New returns a viper instance with defaults and environment overrides set up
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault(KeyWidth, defaults.Width)
	v.SetDefault(KeyHeight, defaults.Height)
	v.SetDefault(KeyOutput, defaults.Output)
	v.SetDefault(KeyWorkers, defaults.Workers)
	v.SetDefault(KeyTileSize, defaults.TileSize)
	v.SetDefault(KeyPreview, defaults.Preview)
}

// Load reads the optional config file and unmarshals the result. Validation
// is left to the caller, which may still override values from the command line.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("worker count cannot be negative, got %d", c.Workers)
	}
	if c.Output == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	return nil
}

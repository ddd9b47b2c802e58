package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a tassel session.
// Values are populated from .tassel.yaml, TASSEL_* env vars, and CLI flags.
type Config struct {
	DataDir          string  `mapstructure:"data_dir"`
	DatabaseFile     string  `mapstructure:"database_file"`
	AutosaveEnabled  bool    `mapstructure:"autosave_enabled"`
	AutosaveSeconds  int     `mapstructure:"autosave_seconds"`
	GradeScaleMax    float64 `mapstructure:"grade_scale_max"`
}

// Init points viper at the config file and environment. It is fine if no
// config file exists; defaults cover everything.
func Init(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".tassel")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("TASSEL")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("data_dir", "")
	viper.SetDefault("database_file", "tassel.db")
	viper.SetDefault("autosave_enabled", true)
	viper.SetDefault("autosave_seconds", 5)
	viper.SetDefault("grade_scale_max", 4.0)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// DatabasePath resolves the SQLite file location. An empty data dir falls
// back to ~/.tassel.
func (c Config) DatabasePath() (string, error) {
	dir := c.DataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".tassel")
	}
	return filepath.Join(dir, c.DatabaseFile), nil
}

// AutosaveInterval converts the configured seconds to a duration.
func (c Config) AutosaveInterval() time.Duration {
	if c.AutosaveSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.AutosaveSeconds) * time.Second
}

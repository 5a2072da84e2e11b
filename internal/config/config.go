package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config carries the CLI defaults that flags fall back to.
type Config struct {
	Algorithm   string `mapstructure:"algorithm"`
	Seed        string `mapstructure:"seed"` // hex or decimal uint64
	TableFile   string `mapstructure:"table_file"`
	Compression string `mapstructure:"compression"`
	LogJSON     bool   `mapstructure:"log_json"`
	NoColor     bool   `mapstructure:"no_color"`
	Verbose     bool   `mapstructure:"verbose"`
}

var globalConfig *Config

// Initialize loads configuration from the given file, or from
// dchunk.yaml in the working directory / ~/.dchunk when empty.
// DCHUNK_* environment variables override file values, and file changes
// are picked up while running.
func Initialize(configPath string) error {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("dchunk")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".dchunk"))
		}
	}

	v.SetEnvPrefix("DCHUNK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("algorithm", "sha256")
	v.SetDefault("compression", "none")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		_ = v.Unmarshal(&globalConfig)
	})

	return nil
}

// GetConfig returns the loaded configuration, or built-in defaults when
// Initialize has not run.
func GetConfig() *Config {
	if globalConfig == nil {
		return &Config{Algorithm: "sha256", Compression: "none"}
	}
	return globalConfig
}

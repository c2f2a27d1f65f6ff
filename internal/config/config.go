// Package config loads the user-tunable settings from a .todoapp file,
// overridable through TODOAPP_* environment variables and root flags.
package config

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds every setting the app understands. Nothing here touches item
// data; the collection itself is never configured, never persisted.
type Config struct {
	Theme    string // classic, neon or mono
	Summary  bool   // print the closing summary after the screen exits
	LogFile  string // debug log destination; empty disables logging
	LogLevel string // debug, info, warn, error or fatal
}

// Load reads the config. A missing file is fine; the defaults carry it.
func Load() (*Config, error) {
	viper.SetDefault("theme", "classic")
	viper.SetDefault("summary", true)
	viper.SetDefault("log-file", "")
	viper.SetDefault("log-level", "info")

	viper.SetConfigName(".todoapp") // .yaml is implicit
	viper.SetEnvPrefix("TODOAPP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("TODOAPP_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Config{
		Theme:    viper.GetString("theme"),
		Summary:  viper.GetBool("summary"),
		LogFile:  viper.GetString("log-file"),
		LogLevel: viper.GetString("log-level"),
	}, nil
}

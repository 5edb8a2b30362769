// Package config resolves the explorer's settings once at startup from
// flags, APOD_* environment variables and an optional .apod.yaml file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/apod/pkg/client"
	"tableflip.dev/apod/pkg/viewmodel"
)

// Keys understood by Load. Command line flags bind to the same names.
const (
	KeyBackend        = "backend"
	KeyRecentDays     = "recent-days"
	KeyRequestTimeout = "request-timeout"
	KeyLogFile        = "log-file"
	KeyLogLevel       = "log-level"
)

// Config is the resolved configuration.
type Config struct {
	Backend        string        `json:"backend"`
	RecentDays     int           `json:"recentDays"`
	RequestTimeout time.Duration `json:"requestTimeout"`
	LogFile        string        `json:"logFile,omitempty"`
	LogLevel       string        `json:"logLevel"`
	// File is the config file that was read, if any.
	File string `json:"file,omitempty"`
}

// New returns a viper instance with defaults and search paths applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyBackend, client.DefaultBaseURL)
	v.SetDefault(KeyRecentDays, viewmodel.DefaultRecentDays)
	v.SetDefault(KeyRequestTimeout, time.Duration(0))
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")

	v.SetConfigName(".apod") // .yaml is implicit
	v.SetEnvPrefix("APOD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("APOD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return v
}

// Load reads the optional config file and resolves the settings. A missing
// file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = New()
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	cfg := Config{
		Backend:        v.GetString(KeyBackend),
		RecentDays:     v.GetInt(KeyRecentDays),
		RequestTimeout: v.GetDuration(KeyRequestTimeout),
		LogFile:        v.GetString(KeyLogFile),
		LogLevel:       v.GetString(KeyLogLevel),
		File:           v.ConfigFileUsed(),
	}
	if cfg.LogFile != "" {
		expanded, err := homedir.Expand(cfg.LogFile)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", KeyLogFile, err)
		}
		cfg.LogFile = expanded
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c Config) Validate() error {
	if c.RecentDays < 1 {
		return fmt.Errorf("config: %s must be at least 1, got %d", KeyRecentDays, c.RecentDays)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: %s must not be negative", KeyRequestTimeout)
	}
	if _, err := client.New(client.Options{BaseURL: c.Backend}); err != nil {
		return fmt.Errorf("config: %s: %w", KeyBackend, err)
	}
	return nil
}

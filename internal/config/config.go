// Package config loads runtime settings from defaults, an optional .env file,
// an optional YAML config file, SHRAMBA_* environment variables and command
// line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/erazemk/shramba/internal/logging"
	"github.com/erazemk/shramba/internal/model"
)

const envPrefix = "SHRAMBA"

// Config keys. Flag names use dashes in place of underscores.
const (
	KeyAddr     = "addr"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
	KeySeed     = "seed"
	KeyActor    = "actor"
	KeyRole     = "role"
)

// Config holds the settings for a shramba process.
type Config struct {
	Addr     string
	LogLevel string
	LogFile  string
	Seed     bool
	Actor    string
	Role     string
}

// Sources tells Load where to look. Every field is optional.
type Sources struct {
	ConfigFile string
	EnvFile    string
	Flags      *pflag.FlagSet
}

// Load resolves the configuration.
func Load(src Sources) (*Config, error) {
	if src.EnvFile != "" {
		// Existing environment variables win over .env entries.
		if err := godotenv.Load(src.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	}

	v := viper.New()
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeySeed, true)
	v.SetDefault(KeyActor, "admin")
	v.SetDefault(KeyRole, model.RoleAdmin)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if src.ConfigFile != "" {
		v.SetConfigFile(src.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if src.Flags != nil {
		for _, key := range []string{KeyAddr, KeyLogLevel, KeyLogFile, KeySeed, KeyActor, KeyRole} {
			f := src.Flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", f.Name, err)
			}
		}
	}

	cfg := &Config{
		Addr:     v.GetString(KeyAddr),
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  v.GetString(KeyLogFile),
		Seed:     v.GetBool(KeySeed),
		Actor:    v.GetString(KeyActor),
		Role:     v.GetString(KeyRole),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("invalid config: addr required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Actor == "" {
		return fmt.Errorf("invalid config: actor required")
	}
	if !model.ValidRole(c.Role) {
		return fmt.Errorf("invalid config: role must be %q or %q, got %q", model.RoleAdmin, model.RoleUser, c.Role)
	}
	return nil
}

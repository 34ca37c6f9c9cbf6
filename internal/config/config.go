/*
 * config.go, part of tmdstack.
 *
 * Copyright 2026 The tmdstack Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config loads the settings of the tmdstack command from defaults,
// a TOML file and TMDSTACK_ environment variables, in increasing precedence.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	tmd "github.com/rmera/tmdstack"
)

// EnvPrefix is the prefix of the environment variables that override settings.
// TMDSTACK_STACK_VACUUM sets stack.vacuum, and so on.
const EnvPrefix = "TMDSTACK"

// Name of the configuration file looked for in the working directory.
const FileName = "tmdstack"

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Stack    StackConfig    `mapstructure:"stack"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// StackConfig holds the defaults of stack requests.
type StackConfig struct {
	CSep              float64 `mapstructure:"c_sep"`
	Vacuum            float64 `mapstructure:"vacuum"`
	ABStacking        bool    `mapstructure:"ab_stacking"`
	MismatchTolerance float64 `mapstructure:"mismatch_tolerance"`
	Strict            bool    `mapstructure:"strict"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// SetDefaults configures default values for all settings.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "monolayers.db")

	v.SetDefault("stack.c_sep", 3.0)   // A, chalcogen to chalcogen
	v.SetDefault("stack.vacuum", 15.0) // A, above the topmost atom
	v.SetDefault("stack.ab_stacking", true)
	v.SetDefault("stack.mismatch_tolerance", tmd.DefaultMismatchTolerance)
	v.SetDefault("stack.strict", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

// New returns a Viper with defaults and environment bindings, which has read
// configFile if given, or tmdstack.toml from the working directory if it exists.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", configFile)
		}
		return v, nil
	}
	v.SetConfigName(FileName)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
	}
	return v, nil
}

// Load unmarshals and validates the settings in v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the settings that can be checked without building anything.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("config: empty database.path")
	}
	if c.Stack.MismatchTolerance < 0 {
		return errors.Newf("config: negative stack.mismatch_tolerance %g", c.Stack.MismatchTolerance)
	}
	if c.Stack.CSep < 0 || c.Stack.Vacuum < 0 {
		return errors.New("config: stack.c_sep and stack.vacuum must not be negative")
	}
	return nil
}

// StackDefaults returns an empty stack request carrying the configured defaults.
func (c *Config) StackDefaults() tmd.StackSpec {
	return tmd.StackSpec{
		CSep:       c.Stack.CSep,
		Vacuum:     c.Stack.Vacuum,
		ABStacking: c.Stack.ABStacking,
	}
}

// Configure sets the mismatch policy of B from c.
func (c *Config) Configure(B *tmd.Builder) {
	B.MismatchTolerance = c.Stack.MismatchTolerance
	B.Strict = c.Stack.Strict
}

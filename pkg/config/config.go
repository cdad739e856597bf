// Package config loads the layered configuration used by the CLI and
// watch mode: built-in defaults, overridden by a project-local
// .tstl.toml (always parsed as TOML), overridden by TSTL_-prefixed
// environment variables.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/GlassBricks/TypeScriptToLua/pkg/errors"
)

// Config holds every setting the driver, cache, and watch loop read.
type Config struct {
	Emit struct {
		IndentWidth  int    `mapstructure:"indent_width"` // loaded only; the engine always indents by four spaces
		OutputSuffix string `mapstructure:"output_suffix"`
		BitOpLibrary string `mapstructure:"bit_op_library"`
	} `mapstructure:"emit"`

	Watch struct {
		DebounceMillis int    `mapstructure:"debounce_ms"`
		SourceSuffix   string `mapstructure:"source_suffix"`
	} `mapstructure:"watch"`

	Cache struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	} `mapstructure:"cache"`
}

var global *Config

// SetDefaults installs the built-in defaults onto v. BitOpLibrary
// defaults to "bit", the LuaJIT-native name; a target running on
// vanilla Lua 5.2's bit32 overrides it via config or env var.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("emit.indent_width", 4)
	v.SetDefault("emit.output_suffix", ".lua")
	v.SetDefault("emit.bit_op_library", "bit")

	v.SetDefault("watch.debounce_ms", 200)
	v.SetDefault("watch.source_suffix", ".ts")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", "tstl-cache.db")
}

// Load reads configuration from (in ascending precedence) built-in
// defaults, a project-local .tstl config file, and TSTL_-prefixed
// environment variables. Results are cached for the process lifetime;
// use Reset to force a reload (tests do this).
func Load() (*Config, error) {
	if global != nil {
		return global, nil
	}

	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("TSTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(".tstl")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading .tstl config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	global = &cfg
	return global, nil
}

// Reset clears the cached configuration.
func Reset() {
	global = nil
}

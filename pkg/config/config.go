package config

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/clout/pkg/paths"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the runtime configuration shared by the output façade, the
// help renderer and the action spinner.
type Config struct {
	// Name selects the XDG directories (~/.cache/<name>, ...)
	Name string `koanf:"name" toml:"name"`

	// Bin is the executable name printed in usage lines
	Bin string `koanf:"bin" toml:"bin"`

	Version string `koanf:"version" toml:"version"`

	// Debug > 0 prints debug lines and full errors instead of the
	// bangified summary
	Debug int `koanf:"debug" toml:"debug"`

	// Mock buffers stream output so tests can inspect it
	Mock bool `koanf:"mock" toml:"mock"`

	// Color is empty for auto-detection, "false"/"0" to disable and any
	// other value to force color on
	Color string `koanf:"color" toml:"color"`

	// Columns overrides the detected terminal width when > 0
	Columns int `koanf:"columns" toml:"columns"`

	// Theme is a path to a YAML theme file
	Theme string `koanf:"theme" toml:"theme"`

	// Verbosity is the zerolog verbosity level
	Verbosity int `koanf:"verbosity" toml:"verbosity"`

	Dirs paths.Dirs `koanf:"dirs" toml:"dirs"`
}

// Options are the values an embedding CLI passes explicitly. Zero values
// leave the loaded configuration untouched.
type Options struct {
	Name       string
	Bin        string
	Version    string
	Debug      int
	Mock       bool
	Color      string
	Columns    int
	Theme      string
	Verbosity  int
	ConfigFile string
	Dirs       paths.Dirs
}

// ColorDisabled reports whether color output was explicitly turned off
func (c *Config) ColorDisabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.Color)) {
	case "false", "0":
		return true
	}
	return false
}

// ColorForced reports whether color output was explicitly turned on
func (c *Config) ColorForced() bool {
	return strings.TrimSpace(c.Color) != "" && !c.ColorDisabled()
}

// Dump serializes the configuration as TOML. It is printed next to
// errors when debug output is on.
func (c *Config) Dump() string {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", *c)
	}
	return string(data)
}

func (c *Config) apply(opts Options) {
	if opts.Name != "" {
		c.Name = opts.Name
	}
	if opts.Bin != "" {
		c.Bin = opts.Bin
	}
	if opts.Version != "" {
		c.Version = opts.Version
	}
	if opts.Debug != 0 {
		c.Debug = opts.Debug
	}
	if opts.Mock {
		c.Mock = true
	}
	if opts.Color != "" {
		c.Color = opts.Color
	}
	if opts.Columns != 0 {
		c.Columns = opts.Columns
	}
	if opts.Theme != "" {
		c.Theme = opts.Theme
	}
	if opts.Verbosity != 0 {
		c.Verbosity = opts.Verbosity
	}
	if opts.Dirs.Cache != "" {
		c.Dirs.Cache = opts.Dirs.Cache
	}
	if opts.Dirs.Config != "" {
		c.Dirs.Config = opts.Dirs.Config
	}
	if opts.Dirs.State != "" {
		c.Dirs.State = opts.Dirs.State
	}
}

// fillDirs resolves any directory left empty by the config sources
func (c *Config) fillDirs() {
	defaults := paths.New(c.Name)
	if c.Dirs.Cache == "" {
		c.Dirs.Cache = defaults.Cache
	}
	if c.Dirs.Config == "" {
		c.Dirs.Config = defaults.Config
	}
	if c.Dirs.State == "" {
		c.Dirs.State = defaults.State
	}
}

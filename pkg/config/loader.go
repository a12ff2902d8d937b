package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/clout/pkg/errors"
	"github.com/arthur-debert/clout/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables mapped onto config keys
const EnvPrefix = "CLOUT_"

// New builds a configuration from the built-in defaults and the given
// options only. No file or environment is read, which keeps tests
// hermetic.
func New(opts Options) *Config {
	k := koanf.New(".")
	cfg := &Config{}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err == nil {
		_ = unmarshal(k, cfg)
	}
	cfg.apply(opts)
	cfg.fillDirs()
	return cfg
}

// Load builds the configuration from every source, lowest priority first:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. the user config file ($XDG_CONFIG_HOME/<name>/config.toml or
//     Options.ConfigFile)
//  3. CLOUT_* environment variables (CLOUT_DEBUG -> debug)
//  4. the well-known DEBUG, COLOR and COLUMNS variables
//  5. explicit options
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	name := opts.Name
	if name == "" {
		name = k.String("name")
	}
	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = paths.New(name).ConfigFilePath()
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile).
				WithDetail("path", configFile)
		}
	} else if opts.ConfigFile != "" {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", configFile).
			WithDetail("path", configFile)
	}

	// 3. Prefixed env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Well-known env vars
	if err := k.Load(confmap.Provider(wellKnownEnv(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	cfg := &Config{}
	if err := unmarshal(k, cfg); err != nil {
		return nil, err
	}

	// 5. Options
	cfg.apply(opts)
	cfg.fillDirs()

	return cfg, nil
}

func unmarshal(k *koanf.Koanf, cfg *Config) error {
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return nil
}

// wellKnownEnv maps the unprefixed variables users already set for other
// CLIs onto config keys. Variables that are unset or unparsable are
// skipped.
func wellKnownEnv() map[string]interface{} {
	values := make(map[string]interface{})

	if v, ok := os.LookupEnv("DEBUG"); ok && v != "" {
		values["debug"] = parseDebug(v)
	}
	if v, ok := os.LookupEnv("COLOR"); ok && v != "" {
		values["color"] = v
	}
	if v, ok := os.LookupEnv("COLUMNS"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			values["columns"] = n
		}
	}

	return values
}

// parseDebug accepts a level ("2"), "*" or "true" (level 1). Any other
// non-empty value also enables level 1 and "false"/"0" disables it.
func parseDebug(v string) int {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "", "false", "0":
		return 0
	case "*", "true":
		return 1
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return n
	}
	return 1
}

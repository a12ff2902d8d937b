package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvCacheDir overrides the XDG cache directory
	EnvCacheDir = "CLOUT_CACHE_DIR"

	// EnvConfigDir overrides the XDG config directory
	EnvConfigDir = "CLOUT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory
	EnvStateDir = "CLOUT_STATE_DIR"
)

// Default file names
const (
	// ErrorLogName is the append-only log of every error shown to the user
	ErrorLogName = "error.log"

	// LogFileName is the zerolog debug log
	LogFileName = "clout.log"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"
)

// Dirs holds the resolved directories for one CLI binary.
type Dirs struct {
	Cache  string `koanf:"cache" toml:"cache"`
	Config string `koanf:"config" toml:"config"`
	State  string `koanf:"state" toml:"state"`
}

// New resolves the directories for the named CLI, respecting the
// CLOUT_*_DIR overrides.
func New(name string) Dirs {
	return Dirs{
		Cache:  resolve(EnvCacheDir, xdg.CacheHome, name),
		Config: resolve(EnvConfigDir, xdg.ConfigHome, name),
		State:  resolve(EnvStateDir, xdg.StateHome, name),
	}
}

// ErrorLogPath returns the path of the error log
func (d Dirs) ErrorLogPath() string {
	return filepath.Join(d.Cache, ErrorLogName)
}

// LogFilePath returns the path of the debug log file
func (d Dirs) LogFilePath() string {
	return filepath.Join(d.State, LogFileName)
}

// ConfigFilePath returns the path of the user config file
func (d Dirs) ConfigFilePath() string {
	return filepath.Join(d.Config, ConfigFileName)
}

func resolve(envVar, base, name string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(base, name)
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

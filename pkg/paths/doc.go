// Package paths resolves the directories clout reads and writes.
//
// It follows the XDG Base Directory specification through adrg/xdg and
// derives every file location from three directories per CLI name:
//
//   - cache: error.log, the append-only log of errors shown to the user
//   - config: config.toml, the user configuration
//   - state: clout.log, the zerolog debug log
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - CLOUT_CACHE_DIR: Override the cache directory (default: $XDG_CACHE_HOME/<name>)
//   - CLOUT_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/<name>)
//   - CLOUT_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/<name>)
//
// A leading ~ in an override is expanded to the home directory.
package paths

// Package config handles loading and validation of recent's configuration.
//
// Configuration is read from ~/.config/recent/config.toml, or from the file
// named by RECENT_CONFIG.
//
// # Data Directory (highest priority first)
//
//   - --data-dir flag
//   - RECENT_DATA_DIR env var
//   - data_dir config setting (must be absolute or ~/...)
//   - the host's per-application data directory
//
// # Key Settings
//
//   - data_dir: where recent_files.json is kept
//   - lock: serialize "recent add" through an advisory lock file
//   - list.format: default output of "recent list" (auto, table, plain, json)
package config

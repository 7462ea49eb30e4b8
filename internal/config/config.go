package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/recent/internal/recent"
	"github.com/raphi011/recent/internal/storage"
)

// Environment variables read by the config package.
const (
	EnvConfig  = "RECENT_CONFIG"
	EnvDataDir = "RECENT_DATA_DIR"
)

// ListConfig holds "recent list" settings
type ListConfig struct {
	Format string `toml:"format"` // "auto", "table", "plain" or "json"
}

// Config holds the recent configuration
type Config struct {
	DataDir string     `toml:"data_dir"`
	Lock    bool       `toml:"lock"`
	List    ListConfig `toml:"list"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		List: ListConfig{Format: "auto"},
	}
}

// Path returns the config file location: $RECENT_CONFIG if set,
// otherwise ~/.config/recent/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "recent", "config.toml"), nil
}

// Load reads the config file at Path.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path, with the same rules as Load.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidatePath(cfg.DataDir, "data_dir"); err != nil {
		return Default(), err
	}
	if cfg.DataDir != "" {
		expanded, err := expandPath(cfg.DataDir)
		if err != nil {
			return Default(), fmt.Errorf("expand data_dir: %w", err)
		}
		cfg.DataDir = expanded
	}

	if cfg.List.Format == "" {
		cfg.List.Format = "auto"
	}
	if err := ValidateFormat(cfg.List.Format); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// ResolveDataDir picks the data directory: flagValue, then
// RECENT_DATA_DIR, then data_dir, then the host default.
func (c *Config) ResolveDataDir(flagValue string) (string, error) {
	for _, dir := range []string{flagValue, os.Getenv(EnvDataDir), c.DataDir} {
		if dir != "" {
			return expandPath(dir)
		}
	}
	return recent.DefaultDataDir()
}

// Encode writes the config as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

const defaultConfig = `# recent configuration

# Directory holding recent_files.json.
# Must be absolute or start with ~. Defaults to the platform's
# per-user application data directory.
# data_dir = "~/.local/share/recent"

# Serialize "recent add" through an advisory lock file so concurrent
# adds never drop each other's entry.
lock = false

[list]
# Default output of "recent list": "auto", "table", "plain" or "json".
# "auto" prints a table on a terminal and one path per line otherwise.
format = "auto"
`

// Init creates a default config file at Path.
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := storage.EnsureParent(path); err != nil {
		return "", err
	}
	if err := storage.WriteAtomic(path, []byte(defaultConfig)); err != nil {
		return "", err
	}

	return path, nil
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config stored in ctx, or nil.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

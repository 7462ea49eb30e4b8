package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.List.Format != "auto" {
		t.Errorf("expected list.format %q, got %q", "auto", cfg.List.Format)
	}
	if cfg.Lock {
		t.Error("expected lock to default to false")
	}
	if cfg.DataDir != "" {
		t.Errorf("expected empty data_dir, got %q", cfg.DataDir)
	}
}

func TestLoadFrom_Nonexistent(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom returned error for missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("LoadFrom = %+v, want defaults", cfg)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name    string
		content string
		want    Config
		wantErr string
	}{
		{
			name:    "full config",
			content: "data_dir = \"/var/lib/recent\"\nlock = true\n[list]\nformat = \"json\"\n",
			want:    Config{DataDir: "/var/lib/recent", Lock: true, List: ListConfig{Format: "json"}},
		},
		{
			name:    "tilde data dir",
			content: "data_dir = \"~/recent\"\n",
			want:    Config{DataDir: filepath.Join(home, "recent"), List: ListConfig{Format: "auto"}},
		},
		{
			name:    "empty file",
			content: "",
			want:    Default(),
		},
		{
			name:    "relative data dir",
			content: "data_dir = \"data\"\n",
			wantErr: "data_dir must be absolute",
		},
		{
			name:    "invalid format",
			content: "[list]\nformat = \"xml\"\n",
			wantErr: `invalid list.format "xml"`,
		},
		{
			name:    "invalid toml",
			content: "data_dir = ",
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadFrom(writeConfig(t, tt.content))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFrom error = %v, want containing %q", err, tt.wantErr)
				}
				if cfg != Default() {
					t.Errorf("LoadFrom on error = %+v, want defaults", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFrom failed: %v", err)
			}
			if cfg != tt.want {
				t.Errorf("LoadFrom = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"~", false},
		{"~/data", false},
		{"/abs/path", false},
		{".", true},
		{"relative/dir", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path, "data_dir")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	t.Parallel()

	for _, f := range ValidFormats {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", f, err)
		}
	}

	err := ValidateFormat("yaml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	want := `invalid list.format "yaml": must be "auto", "table", "plain", or "json"`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestResolveDataDir(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	cfg := &Config{DataDir: "/from/config"}

	got, err := cfg.ResolveDataDir("/from/flag")
	if err != nil || got != "/from/flag" {
		t.Errorf("flag: ResolveDataDir = %q, %v; want /from/flag", got, err)
	}

	got, err = cfg.ResolveDataDir("")
	if err != nil || got != "/from/config" {
		t.Errorf("config: ResolveDataDir = %q, %v; want /from/config", got, err)
	}

	t.Setenv(EnvDataDir, "/from/env")
	got, err = cfg.ResolveDataDir("")
	if err != nil || got != "/from/env" {
		t.Errorf("env: ResolveDataDir = %q, %v; want /from/env", got, err)
	}

	got, err = cfg.ResolveDataDir("/from/flag")
	if err != nil || got != "/from/flag" {
		t.Errorf("flag over env: ResolveDataDir = %q, %v; want /from/flag", got, err)
	}
}

func TestResolveDataDir_HostDefault(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	cfg := Default()
	got, err := cfg.ResolveDataDir("")
	if err != nil {
		// Hosts without a config dir report an environment error.
		return
	}
	if filepath.Base(got) != "recent" {
		t.Errorf("ResolveDataDir = %q, want host data dir ending in recent", got)
	}
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/recent.toml")

	got, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if got != "/etc/recent.toml" {
		t.Errorf("Path = %q, want /etc/recent.toml", got)
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv(EnvConfig, path)

	got, err := Init(false)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if got != path {
		t.Errorf("Init path = %q, want %q", got, path)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load after Init failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("generated config = %+v, want defaults", cfg)
	}

	if _, err := Init(false); err == nil {
		t.Error("expected error when config already exists")
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init(force) failed: %v", err)
	}
}

func TestDefaultConfigParses(t *testing.T) {
	t.Parallel()

	var cfg Config
	if _, err := toml.Decode(defaultConfig, &cfg); err != nil {
		t.Fatalf("default config template does not parse: %v", err)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	cfg := Config{DataDir: "/data", Lock: true, List: ListConfig{Format: "plain"}}

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded Config
	if _, err := toml.Decode(buf.String(), &decoded); err != nil {
		t.Fatalf("decode failed: %v\n%s", err, buf.String())
	}
	if decoded != cfg {
		t.Errorf("decoded = %+v, want %+v", decoded, cfg)
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{List: ListConfig{Format: "json"}}
		ctx := WithConfig(context.Background(), cfg)
		got := FromContext(ctx)
		if got != cfg {
			t.Error("FromContext did not return the stored config")
		}
	})

	t.Run("nil when not set", func(t *testing.T) {
		t.Parallel()
		if got := FromContext(context.Background()); got != nil {
			t.Errorf("FromContext on empty context = %v, want nil", got)
		}
	})
}

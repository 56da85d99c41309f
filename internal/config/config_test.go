package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points every lookup location at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	for _, k := range []string{"QR_CONF", "QR_ENTRIES_FILE", "QR_MATCH", "QR_FILL_ORDER", "QR_SHELL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return tmp
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	confDir := filepath.Join(dir, "qr")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(confDir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmp := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EntriesFile != filepath.Join(tmp, ".qr.conf") {
		t.Fatalf("entries_file mismatch: %s", cfg.EntriesFile)
	}
	if cfg.FillOrder != "row" || cfg.Match != "substring" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CaseSensitive || cfg.Sort {
		t.Fatalf("case_sensitive and sort default to false: %+v", cfg)
	}
	if !cfg.SetTitle || !cfg.EchoCommand || !cfg.ShowHelp {
		t.Fatalf("title, echo and help default to true: %+v", cfg)
	}
	if cfg.Shell != "/bin/sh" || cfg.ColumnPadding != 2 {
		t.Fatalf("unexpected shell/padding: %+v", cfg)
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	tmp := isolate(t)
	writeConfig(t, tmp, "config.yaml", `entries_file: /etc/qr/entries
fill_order: column
match: fuzzy
case_sensitive: true
set_title: false
shell: /bin/bash
column_padding: 4`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EntriesFile != "/etc/qr/entries" {
		t.Fatalf("entries_file mismatch: %s", cfg.EntriesFile)
	}
	if cfg.FillOrder != "column" {
		t.Fatalf("fill_order mismatch: %s", cfg.FillOrder)
	}
	if cfg.Match != "fuzzy" || !cfg.CaseSensitive {
		t.Fatalf("match settings mismatch: %+v", cfg)
	}
	if cfg.SetTitle {
		t.Fatalf("set_title should be false")
	}
	if !cfg.EchoCommand {
		t.Fatalf("echo_command should keep its default")
	}
	if cfg.Shell != "/bin/bash" || cfg.ColumnPadding != 4 {
		t.Fatalf("shell/padding mismatch: %+v", cfg)
	}
}

func TestLoadTOMLConfig(t *testing.T) {
	tmp := isolate(t)
	writeConfig(t, tmp, "config.toml", `match = "prefix"
sort = true`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Match != "prefix" || !cfg.Sort {
		t.Fatalf("toml settings not applied: %+v", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	tmp := isolate(t)
	writeConfig(t, tmp, "config.yaml", "match: fuzzy\n")
	t.Setenv("QR_MATCH", "prefix")
	t.Setenv("QR_CONF", "~/launch.conf")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Match != "prefix" {
		t.Fatalf("QR_MATCH should win over the file: %s", cfg.Match)
	}
	if cfg.EntriesFile != filepath.Join(tmp, "launch.conf") {
		t.Fatalf("QR_CONF not applied: %s", cfg.EntriesFile)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tmp := isolate(t)
	writeConfig(t, tmp, "config.yaml", "fill_order: diagonal\n")

	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for an unknown fill_order")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	tmp := isolate(t)
	writeConfig(t, tmp, "config.yaml", "match: [unterminated\n")

	if _, err := Load(); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"plural fill", func(c *Config) { c.FillOrder = "Columns" }, true},
		{"bad match", func(c *Config) { c.Match = "regex" }, false},
		{"negative padding", func(c *Config) { c.ColumnPadding = -1 }, false},
		{"empty shell", func(c *Config) { c.Shell = " " }, false},
		{"empty entries file", func(c *Config) { c.EntriesFile = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/qr")
	if got := expandHome("~/.qr.conf"); got != "/home/qr/.qr.conf" {
		t.Fatalf("expandHome: %s", got)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Fatalf("absolute paths are untouched: %s", got)
	}
	if got := expandHome("~other/x"); got != "~other/x" {
		t.Fatalf("other users are not expanded: %s", got)
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultEntriesFile   = "~/.qr.conf"
	defaultFillOrder     = "row"
	defaultMatch         = "substring"
	defaultShell         = "/bin/sh"
	defaultColumnPadding = 2
)

type Config struct {
	EntriesFile   string `mapstructure:"entries_file"`
	FillOrder     string `mapstructure:"fill_order"`
	Match         string `mapstructure:"match"`
	CaseSensitive bool   `mapstructure:"case_sensitive"`
	Sort          bool   `mapstructure:"sort"`
	SetTitle      bool   `mapstructure:"set_title"`
	EchoCommand   bool   `mapstructure:"echo_command"`
	Shell         string `mapstructure:"shell"`
	ColumnPadding int    `mapstructure:"column_padding"`
	ShowHelp      bool   `mapstructure:"show_help"`
}

func defaultConfig() *Config {
	return &Config{
		EntriesFile:   defaultEntriesFile,
		FillOrder:     defaultFillOrder,
		Match:         defaultMatch,
		SetTitle:      true,
		EchoCommand:   true,
		Shell:         defaultShell,
		ColumnPadding: defaultColumnPadding,
		ShowHelp:      true,
	}
}

// Load reads config.{yaml,toml,json} from $XDG_CONFIG_HOME/qr or
// ~/.config/qr, then applies QR_* environment overrides. A missing config
// file is not an error.
func Load() (*Config, error) {
	v := newViper()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.EntriesFile = expandHome(cfg.EntriesFile)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "qr"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "qr"))
	}

	d := defaultConfig()
	v.SetDefault("entries_file", d.EntriesFile)
	v.SetDefault("fill_order", d.FillOrder)
	v.SetDefault("match", d.Match)
	v.SetDefault("case_sensitive", d.CaseSensitive)
	v.SetDefault("sort", d.Sort)
	v.SetDefault("set_title", d.SetTitle)
	v.SetDefault("echo_command", d.EchoCommand)
	v.SetDefault("shell", d.Shell)
	v.SetDefault("column_padding", d.ColumnPadding)
	v.SetDefault("show_help", d.ShowHelp)

	v.SetEnvPrefix("qr")
	v.AutomaticEnv()
	// QR_CONF is the historical name for the entries file override.
	_ = v.BindEnv("entries_file", "QR_ENTRIES_FILE", "QR_CONF")
	return v
}

// Validate rejects values the launcher cannot act on.
func (c *Config) Validate() error {
	switch strings.ToLower(c.FillOrder) {
	case "row", "rows", "column", "columns":
	default:
		return fmt.Errorf("invalid fill_order %q: want row or column", c.FillOrder)
	}
	switch strings.ToLower(c.Match) {
	case "substring", "prefix", "fuzzy":
	default:
		return fmt.Errorf("invalid match %q: want substring, prefix or fuzzy", c.Match)
	}
	if c.ColumnPadding < 0 {
		return fmt.Errorf("invalid column_padding %d: must not be negative", c.ColumnPadding)
	}
	if strings.TrimSpace(c.Shell) == "" {
		return errors.New("shell must not be empty")
	}
	if strings.TrimSpace(c.EntriesFile) == "" {
		return errors.New("entries_file must not be empty")
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

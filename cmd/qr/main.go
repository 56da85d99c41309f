package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/nicobailon/qr/internal/config"
	"github.com/nicobailon/qr/internal/entries"
	"github.com/nicobailon/qr/internal/launcher"
	"github.com/nicobailon/qr/internal/logging"
	"github.com/nicobailon/qr/internal/termcheck"
	"github.com/nicobailon/qr/internal/tui"
	"github.com/nicobailon/qr/internal/tui/views"
	"github.com/nicobailon/qr/pkg/version"
	"github.com/spf13/cobra"
)

var (
	entriesFile   string
	fillFlag      string
	matchFlag     string
	caseSensitive bool
	sortFlag      bool
	allowEmpty    bool
	noHelp        bool
	logFile       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// On platforms without exec the command runs as a child; mirror its status.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "qr: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "qr",
	Short:         "Pick a saved shell command from a filterable grid and run it",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Version = version.Version
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&entriesFile, "file", "f", "", "Entries file (default ~/.qr.conf, or $QR_CONF)")
	pf.StringVar(&logFile, "log-file", "", "Write debug log to this file (or set $QR_DEBUG)")
	pf.BoolVar(&sortFlag, "sort", false, "Sort entries by group, then name")

	f := rootCmd.Flags()
	f.StringVar(&fillFlag, "fill", "", "Grid fill order: row or column")
	f.StringVar(&matchFlag, "match", "", "Filter mode: substring, prefix or fuzzy")
	f.BoolVar(&caseSensitive, "case-sensitive", false, "Match the query case-sensitively")
	f.BoolVar(&allowEmpty, "allow-empty", false, "Open the picker even with no entries")
	f.BoolVar(&noHelp, "no-help", false, "Hide the key help footer")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadSettings reads the config file and environment, then layers any
// explicitly set flags on top.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.EntriesFile = entriesFile
	}
	if flags.Changed("sort") {
		cfg.Sort = sortFlag
	}
	if flags.Changed("fill") {
		cfg.FillOrder = fillFlag
	}
	if flags.Changed("match") {
		cfg.Match = matchFlag
	}
	if flags.Changed("case-sensitive") {
		cfg.CaseSensitive = caseSensitive
	}
	if flags.Changed("no-help") {
		cfg.ShowHelp = !noHelp
	}
}

// loadEntries reads the entries file, reporting malformed lines to warn.
func loadEntries(cfg *config.Config, warn io.Writer) (*entries.List, error) {
	list, problems, err := entries.LoadFile(cfg.EntriesFile)
	if err != nil {
		return nil, err
	}
	for _, p := range problems {
		fmt.Fprintf(warn, "qr: skipping %v\n", p)
	}
	if cfg.Sort {
		list = list.Sorted()
	}
	return list, nil
}

func sessionOptions(cfg *config.Config) (tui.Options, error) {
	mode, err := views.ParseMatchMode(strings.ToLower(cfg.Match))
	if err != nil {
		return tui.Options{}, err
	}
	fill, err := views.ParseFillOrder(strings.ToLower(cfg.FillOrder))
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Match:    views.FilterOptions{Mode: mode, CaseSensitive: cfg.CaseSensitive},
		Layout:   views.LayoutOptions{Fill: fill, Padding: cfg.ColumnPadding},
		ShowHelp: cfg.ShowHelp,
	}, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	closer, err := logging.Setup(logFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	list, err := loadEntries(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if list.Empty() && !allowEmpty {
		fmt.Fprintf(cmd.ErrOrStderr(), "No entries in %s. Add lines of the form \"name: command\".\n", cfg.EntriesFile)
		return nil
	}
	opts, err := sessionOptions(cfg)
	if err != nil {
		return err
	}
	if _, err := launcher.CheckShell(cfg.Shell); err != nil {
		return err
	}
	if err := termcheck.Check(os.Stdin, os.Stdout); err != nil {
		return err
	}

	selected, err := tui.New(list, opts).Run()
	if err != nil {
		return err
	}
	if selected == nil {
		return nil
	}

	l := launcher.New(cfg.Shell, cmd.OutOrStdout())
	l.SetTitle = cfg.SetTitle
	l.Echo = cfg.EchoCommand
	return l.Launch(*selected)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/google/shlex"
	"github.com/nicobailon/qr/internal/entries"
	"github.com/nicobailon/qr/internal/tui/theme"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the entries file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		list, problems, err := entries.LoadFile(cfg.EntriesFile)
		if err != nil {
			return err
		}
		return checkAction(cmd.OutOrStdout(), cfg.EntriesFile, list, problems, exec.LookPath)
	},
}

// shellBuiltins never resolve on PATH but are fine as the first word.
var shellBuiltins = map[string]bool{
	".": true, "cd": true, "eval": true, "exec": true, "export": true,
	"source": true, "ulimit": true, "umask": true, "set": true, "unset": true,
}

type finding struct {
	fatal bool
	msg   string
}

func checkEntries(list *entries.List, problems []*entries.ParseError, lookPath func(string) (string, error)) []finding {
	var out []finding
	for _, p := range problems {
		out = append(out, finding{fatal: true, msg: p.Error()})
	}
	for i := 0; i < list.Len(); i++ {
		e := list.At(i)
		words, err := shlex.Split(e.Command)
		if err != nil {
			out = append(out, finding{fatal: true, msg: fmt.Sprintf("%s: cannot split command: %v", e.Name, err)})
			continue
		}
		prog := firstProgram(words)
		if prog == "" || shellBuiltins[prog] || strings.ContainsAny(prog, "$`(") {
			continue
		}
		if _, err := lookPath(prog); err != nil {
			out = append(out, finding{msg: fmt.Sprintf("%s: %s not found on PATH", e.Name, prog)})
		}
	}
	return out
}

// firstProgram skips leading VAR=value assignments.
func firstProgram(words []string) string {
	for _, w := range words {
		if name, _, ok := strings.Cut(w, "="); ok && name != "" && !strings.ContainsAny(name, "/ ") {
			continue
		}
		return w
	}
	return ""
}

var errCheckFailed = errors.New("entries file has errors")

func checkAction(out io.Writer, path string, list *entries.List, problems []*entries.ParseError, lookPath func(string) (string, error)) error {
	findings := checkEntries(list, problems, lookPath)
	failed := false
	for _, f := range findings {
		if f.fatal {
			failed = true
			fmt.Fprintf(out, "%s %s\n", theme.ErrorStyle.Render("error"), f.msg)
		} else {
			fmt.Fprintf(out, "%s %s\n", theme.DimStyle.Render("warn "), f.msg)
		}
	}
	if failed {
		return errCheckFailed
	}
	fmt.Fprintf(out, "%s %d entries in %s\n", theme.SuccessStyle.Render("ok"), list.Len(), path)
	return nil
}

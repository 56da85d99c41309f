package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/nicobailon/qr/internal/entries"
)

var ErrShellMissing = errors.New("shell not found")

type Launcher interface {
	Launch(e entries.Entry) error
}

// ExecLauncher replaces the current process with Shell running the entry's
// command. On platforms without exec it runs the command as a child and
// returns its exit status as an *exec.ExitError.
type ExecLauncher struct {
	Shell    string
	Out      io.Writer
	SetTitle bool
	Echo     bool

	exec execFunc
}

type execFunc func(path string, argv []string, env []string) error

func New(shell string, out io.Writer) *ExecLauncher {
	return &ExecLauncher{Shell: shell, Out: out, SetTitle: true, Echo: true, exec: execProcess}
}

// CheckShell resolves the configured shell the same way exec would.
func CheckShell(shell string) (string, error) {
	path, err := exec.LookPath(shell)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrShellMissing, shell)
	}
	return path, nil
}

func (l *ExecLauncher) Launch(e entries.Entry) error {
	path, err := CheckShell(l.Shell)
	if err != nil {
		return err
	}
	if l.Out != nil {
		if _, err := io.WriteString(l.Out, Preamble(e, l.Echo, l.SetTitle)); err != nil {
			return fmt.Errorf("write preamble: %w", err)
		}
	}
	run := l.exec
	if run == nil {
		run = execProcess
	}
	return run(path, []string{l.Shell, "-c", e.Command}, os.Environ())
}

// Preamble is what gets printed before the command takes over the terminal:
// the command line itself and an OSC 2 sequence naming the window after the
// entry.
func Preamble(e entries.Entry, echo, title bool) string {
	var b strings.Builder
	if echo {
		b.WriteString(e.Command)
		b.WriteByte('\n')
	}
	if title {
		fmt.Fprintf(&b, "\033]2;%s\a", sanitizeTitle(e.Name))
	}
	return b.String()
}

// sanitizeTitle drops control characters that would end the OSC sequence
// early.
func sanitizeTitle(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

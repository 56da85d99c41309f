package logging

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "qr"

// DebugEnv names the variable that turns on debug logging when no log file
// was given on the command line.
const DebugEnv = "QR_DEBUG"

// Setup routes the standard logger to path, or to $QR_DEBUG when path is
// empty. With neither set, log output is discarded so it never corrupts the
// picker. The returned closer is always non-nil.
func Setup(path string) (io.Closer, error) {
	if path == "" {
		path = os.Getenv(DebugEnv)
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nopCloser{}, err
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

package entries

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ParseError describes a line that is neither an entry, a group header,
// a comment nor blank. Such lines are skipped.
type ParseError struct {
	Path string
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid entry in %s:%d: %s", e.Path, e.Line, e.Text)
}

// LoadFile reads an entries file. A missing file yields an empty list.
func LoadFile(path string) (*List, []*ParseError, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(nil), nil, nil
		}
		return nil, nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads "name : command" lines. A line "{ group }" starts a group.
// Malformed lines are returned as ParseErrors and otherwise ignored.
func Parse(r io.Reader, path string) (*List, []*ParseError, error) {
	var (
		raw     []Entry
		invalid []*ParseError
		group   string
		lineNo  int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if e, ok := parseEntry(line); ok {
			e.Group = group
			raw = append(raw, e)
			continue
		}
		if g, ok := parseGroup(line); ok {
			group = g
			continue
		}
		invalid = append(invalid, &ParseError{Path: path, Line: lineNo, Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, invalid, fmt.Errorf("read %s: %w", path, err)
	}
	return New(raw), invalid, nil
}

func parseEntry(line string) (Entry, bool) {
	name, command, found := strings.Cut(line, ":")
	if !found {
		return Entry{}, false
	}
	name = strings.TrimSpace(name)
	command = strings.TrimSpace(command)
	if name == "" || command == "" {
		return Entry{}, false
	}
	return Entry{Name: name, Command: command}, true
}

func parseGroup(line string) (string, bool) {
	if !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") || len(line) < 2 {
		return "", false
	}
	return strings.TrimSpace(line[1 : len(line)-1]), true
}

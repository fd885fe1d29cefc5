package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"syscall"

	"github.com/kballard/go-shellquote"
)

// OpenError is returned when the command file cannot be opened.
// Its message has the form "<reason>: '<path>'".
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: '%s'", strings.ToLower(e.Err.Error()), e.Path)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ParseLine parses one command file line.
// Comments, blank lines, short lines, unknown kinds and lines that cannot be
// tokenized all yield ok == false.
func ParseLine(line, placeholder string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false
	}

	parts, err := shellquote.Split(line)
	if err != nil || len(parts) < 3 {
		return Entry{}, false
	}

	kind, ok := ParseKind(parts[1])
	if !ok {
		return Entry{}, false
	}

	return Entry{
		Name:        parts[0],
		Kind:        kind,
		Program:     parts[2],
		Templates:   append([]string{}, parts[3:]...),
		Placeholder: placeholder,
	}, true
}

// Load builds a registry from the command file contents
func Load(r io.Reader, placeholder string) (*Registry, error) {
	reg := NewRegistry()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if e, ok := ParseLine(scanner.Text(), placeholder); ok {
			reg.Set(e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read commands: %w", err)
	}

	return reg, nil
}

// LoadFile зарежда registry от файл
func LoadFile(path, placeholder string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, &OpenError{Path: pathErr.Path, Err: pathErr.Err}
		}
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	// opening a directory succeeds on unix; reading it does not
	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, &OpenError{Path: path, Err: syscall.EISDIR}
	}

	return Load(f, placeholder)
}

// Package selection reads the text used when a command is submitted
// without an argument.
package selection

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// Source returns the current selection text
type Source interface {
	Text() (string, error)
}

// Clipboard reads the system clipboard, or the primary selection when
// Primary is set and the platform has one
type Clipboard struct {
	Primary bool
}

// clipboard.Primary is a package level switch
var mu sync.Mutex

func (c Clipboard) Text() (string, error) {
	if c.Primary {
		if text, ok, err := readWaylandPrimary(); ok {
			return trimNewline(text), err
		}
	}

	mu.Lock()
	defer mu.Unlock()

	restore := usePrimary(c.Primary)
	defer restore()

	if clipboard.Unsupported {
		return "", nil
	}
	text, err := clipboard.ReadAll()
	return trimNewline(text), err
}

// trimNewline drops the single newline some paste tools append
func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// None always returns an empty selection
type None struct{}

func (None) Text() (string, error) {
	return "", nil
}

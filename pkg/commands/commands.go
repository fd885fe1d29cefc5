// Package commands provides the command registry for ubq.
// It parses the line-oriented command file into entries and renders an
// entry into a concrete program invocation for a runtime argument.
package commands

import (
	"net/url"
	"strings"
)

// DefaultPlaceholder is the token replaced by the runtime argument
const DefaultPlaceholder = "____"

// Kind описва как се рендерират аргументите на команда
type Kind int

const (
	// KindLiteral ignores the argument
	KindLiteral Kind = iota
	// KindRaw substitutes the argument verbatim
	KindRaw
	// KindURL substitutes the form-urlencoded argument
	KindURL
)

var kindNames = map[string]Kind{
	"nop": KindLiteral,
	"raw": KindRaw,
	"url": KindURL,
}

// ParseKind връща Kind за името от config файла
func ParseKind(s string) (Kind, bool) {
	k, ok := kindNames[s]
	return k, ok
}

// String returns the config file verb for the kind
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "nop"
	case KindRaw:
		return "raw"
	case KindURL:
		return "url"
	default:
		return "unknown"
	}
}

// Entry представлява една команда от config файла
type Entry struct {
	Name        string
	Kind        Kind
	Program     string
	Templates   []string
	Placeholder string
}

// Render builds the program and argument list for argument.
// The program token is never substituted and the returned slice is never
// shared with the entry.
func (e Entry) Render(argument string) (string, []string) {
	args := make([]string, len(e.Templates))

	switch e.Kind {
	case KindRaw:
		for i, t := range e.Templates {
			args[i] = strings.ReplaceAll(t, e.Placeholder, argument)
		}
	case KindURL:
		encoded := url.QueryEscape(argument)
		for i, t := range e.Templates {
			args[i] = strings.ReplaceAll(t, e.Placeholder, encoded)
		}
	default:
		copy(args, e.Templates)
	}

	return e.Program, args
}

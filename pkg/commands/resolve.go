package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrEmptyInput се връща при празен вход
	ErrEmptyInput = errors.New("empty input")

	// ErrNotFound се връща когато командата не е регистрирана
	ErrNotFound = errors.New("command not found")
)

// NotFoundError carries the keyword that had no entry
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command '%s' not found", e.Name)
}

// Is reports whether target is ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Invocation is a resolved program ready to be spawned
type Invocation struct {
	Name    string
	Program string
	Args    []string
}

// Resolve turns submitted text into an invocation.
// fallback supplies the argument when the input carries none and is only
// called in that case.
func Resolve(reg *Registry, input string, fallback func() string) (Invocation, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Invocation{}, ErrEmptyInput
	}

	name, argument := splitInput(input)

	entry, ok := reg.Lookup(name)
	if !ok {
		return Invocation{}, &NotFoundError{Name: name}
	}

	if argument == "" && fallback != nil {
		argument = fallback()
	}

	program, args := entry.Render(argument)
	return Invocation{Name: name, Program: program, Args: args}, nil
}

// splitInput разделя входа на име и аргумент по първата поредица интервали
func splitInput(input string) (string, string) {
	i := strings.IndexFunc(input, unicode.IsSpace)
	if i < 0 {
		return input, ""
	}
	return input[:i], strings.TrimLeftFunc(input[i:], unicode.IsSpace)
}

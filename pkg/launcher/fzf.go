package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

type Fzf struct {
	command string
	args    []string
}

func NewFzf(command string, args []string) *Fzf {
	return &Fzf{command: command, args: args}
}

// Show runs fzf with --print-query so that text matching no candidate is
// still returned
func (f *Fzf) Show(ctx context.Context, options []string, prompt string) (string, error) {
	args := append([]string{}, f.args...)
	args = append(args, "--print-query", "--prompt", prompt+"> ")

	cmd := exec.CommandContext(ctx, f.command, args...)
	cmd.WaitDelay = time.Second
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))
	cmd.Stderr = os.Stderr

	output, err := cmd.Output()
	exitCode := 0
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("failed to start fzf: %w", err)
		}
		exitCode = exitErr.ExitCode()
	}

	return parseFzfOutput(string(output), exitCode)
}

// parseFzfOutput interprets fzf --print-query output.
// Exit 0 prints the query and the selection, exit 1 only the query,
// exit 130 means the user aborted.
func parseFzfOutput(output string, exitCode int) (string, error) {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	switch exitCode {
	case 0:
		if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
			return strings.TrimSpace(lines[1]), nil
		}
		return strings.TrimSpace(lines[0]), nil
	case 1:
		return strings.TrimSpace(lines[0]), nil
	case 130:
		return "", ErrCancelled
	default:
		return "", fmt.Errorf("fzf exited with status %d", exitCode)
	}
}

func (f *Fzf) Name() string {
	return "fzf"
}

func (f *Fzf) Args() []string {
	return f.args
}

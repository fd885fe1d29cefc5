package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"slices"
	"strings"
	"time"
)

// runMenu pipes options into a dmenu-style program and returns the first
// line it prints. Exit codes listed in cancelCodes map to ErrCancelled.
// The program is killed when ctx is done and ctx.Err() is returned.
func runMenu(ctx context.Context, name string, args []string, options []string, stderr io.Writer, cancelCodes ...int) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = time.Second
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))
	cmd.Stderr = stderr

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && slices.Contains(cancelCodes, exitErr.ExitCode()) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("failed to run %s: %w", name, err)
	}

	return firstLine(string(output)), nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

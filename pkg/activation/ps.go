package activation

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// PsLister lists processes with the POSIX ps utility.
// The command line is whatever ps prints for args=, which may be truncated
// or otherwise altered depending on the platform.
type PsLister struct {
	// UID defaults to the real user ID of the current process
	UID *int
	// Path defaults to "ps" looked up in PATH
	Path string
}

// List runs ps for the configured user and parses its output
func (l PsLister) List(ctx context.Context) ([]ProcessRecord, error) {
	uid := unix.Getuid()
	if l.UID != nil {
		uid = *l.UID
	}

	path := l.Path
	if path == "" {
		path = "ps"
	}

	cmd := exec.CommandContext(ctx, path, "-o", "pid=", "-o", "args=", "-u", strconv.Itoa(uid))
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", path, err)
	}

	return parsePsOutput(output), nil
}

// parsePsOutput парсва редове във формат "<pid> <args>"
func parsePsOutput(output []byte) []ProcessRecord {
	var records []ProcessRecord

	for _, line := range bytes.Split(output, []byte("\n")) {
		text := strings.TrimLeft(string(line), " \t")
		if text == "" {
			continue
		}

		pidStr, args, _ := strings.Cut(text, " ")
		pid, err := strconv.Atoi(pidStr)
		if err != nil {
			continue
		}

		records = append(records, ProcessRecord{PID: pid, CommandLine: args})
	}

	return records
}

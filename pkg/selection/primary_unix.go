//go:build freebsd || linux || netbsd || openbsd || solaris || dragonfly

package selection

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"

	"github.com/lvim-tech/ubq/pkg/utils"
)

func usePrimary(primary bool) func() {
	prev := clipboard.Primary
	clipboard.Primary = primary
	return func() {
		clipboard.Primary = prev
	}
}

// readWaylandPrimary reads the primary selection with wl-paste. The
// clipboard package ignores Primary on Wayland, so it is bypassed there.
// ok is false when not on Wayland or wl-paste is missing.
func readWaylandPrimary() (text string, ok bool, err error) {
	if os.Getenv("WAYLAND_DISPLAY") == "" || !utils.CommandExists("wl-paste") {
		return "", false, nil
	}

	out, err := exec.Command("wl-paste", "--primary", "--no-newline").Output()
	if err != nil {
		return "", true, fmt.Errorf("failed to read primary selection: %w", err)
	}
	return string(out), true, nil
}

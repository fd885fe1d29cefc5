package activation

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// DefaultSignal is the activation signal shared by all instances
const DefaultSignal = unix.SIGUSR1

// SignalChannel implements Channel with a user-defined OS signal.
// The signal carries no payload and is not acknowledged.
type SignalChannel struct {
	Signal syscall.Signal
}

// NewSignalChannel creates a channel for the named signal, e.g. "SIGUSR2".
// An empty name selects DefaultSignal.
func NewSignalChannel(name string) (*SignalChannel, error) {
	if name == "" {
		return &SignalChannel{Signal: DefaultSignal}, nil
	}

	name = strings.ToUpper(name)
	if !strings.HasPrefix(name, "SIG") {
		name = "SIG" + name
	}

	sig := unix.SignalNum(name)
	if sig == 0 {
		return nil, fmt.Errorf("unknown activation signal %q", name)
	}

	switch sig {
	case unix.SIGKILL, unix.SIGSTOP:
		return nil, fmt.Errorf("signal %s cannot be used for activation", name)
	}

	return &SignalChannel{Signal: sig}, nil
}

// SignalPeer sends the activation signal to pid
func (c *SignalChannel) SignalPeer(pid int) error {
	if err := unix.Kill(pid, c.Signal); err != nil {
		return fmt.Errorf("failed to signal pid %d: %w", pid, err)
	}
	return nil
}

// OnActivated installs the signal handler and blocks on it in a goroutine.
// The handler is installed before OnActivated returns.
func (c *SignalChannel) OnActivated(ctx context.Context, fn func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, c.Signal)

	go func() {
		defer signal.Stop(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ch:
				fn()
			}
		}
	}()
}

// Package activation keeps a single live ubq instance per user and command line.
//
// On startup the Gate takes a snapshot of the user's processes, finds other
// instances started with exactly the same command line and asks them to come
// to the foreground through a Channel. Matching is best effort: identical
// command lines of unrelated invocations are treated as the same instance and
// command lines that the process table renders differently are missed.
package activation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// ErrSelfMissing is returned when the snapshot does not contain our own PID
var ErrSelfMissing = errors.New("own record missing from process snapshot")

// ProcessRecord is one row of a process table snapshot
type ProcessRecord struct {
	PID         int
	CommandLine string
}

// ProcessLister takes a snapshot of the invoking user's processes
type ProcessLister interface {
	List(ctx context.Context) ([]ProcessRecord, error)
}

// Channel delivers activation requests between instances
type Channel interface {
	// SignalPeer asks the instance with the given PID to come to the foreground
	SignalPeer(pid int) error
	// OnActivated calls fn for every activation request until ctx is done
	OnActivated(ctx context.Context, fn func())
}

// Gate decides whether this process becomes the live instance
type Gate struct {
	Lister  ProcessLister
	Channel Channel
	PID     int
	Logger  *slog.Logger
}

func (g *Gate) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g.Logger
}

// FindPeers returns the sorted PIDs of other processes whose command line
// equals ours
func (g *Gate) FindPeers(ctx context.Context) ([]int, error) {
	records, err := g.Lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	byPID := make(map[int]string, len(records))
	for _, r := range records {
		byPID[r.PID] = r.CommandLine
	}

	self, ok := byPID[g.PID]
	if !ok {
		return nil, fmt.Errorf("pid %d: %w", g.PID, ErrSelfMissing)
	}
	delete(byPID, g.PID)

	var peers []int
	for pid, cmdline := range byPID {
		if cmdline == self {
			peers = append(peers, pid)
		}
	}
	sort.Ints(peers)

	return peers, nil
}

// ActivateOrProceed signals every peer and reports whether this process
// should start its own UI. It returns false as soon as one peer accepted the
// activation request.
func (g *Gate) ActivateOrProceed(ctx context.Context) (bool, error) {
	peers, err := g.FindPeers(ctx)
	if err != nil {
		return false, err
	}

	log := g.logger()
	activated := 0
	for _, pid := range peers {
		if err := g.Channel.SignalPeer(pid); err != nil {
			// peer exited after the snapshot
			log.Warn("failed to activate peer", "pid", pid, "error", err)
			continue
		}
		log.Debug("activated peer", "pid", pid)
		activated++
	}

	if activated > 0 {
		return false, nil
	}
	return true, nil
}

// Listen registers for activation requests on ch and returns a channel that
// receives one value per pending request. Requests arriving while a value
// is already pending are merged.
func Listen(ctx context.Context, ch Channel) <-chan struct{} {
	wake := make(chan struct{}, 1)
	ch.OnActivated(ctx, func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	})
	return wake
}

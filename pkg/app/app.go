// Package app runs the long-lived ubq event loop.
//
// The loop shows the prompt, resolves and spawns the submitted command, hides
// the prompt and then sleeps until another instance asks it to come to the
// foreground again.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lvim-tech/ubq/pkg/commands"
	"github.com/lvim-tech/ubq/pkg/launcher"
	"github.com/lvim-tech/ubq/pkg/selection"
)

// Notifier shows short inline messages
type Notifier interface {
	Notify(message string)
}

// SpawnFunc starts a program without waiting for it
type SpawnFunc func(name string, args ...string) error

// App свързва registry, front-end и spawner
type App struct {
	Registry  *commands.Registry
	Launcher  launcher.Launcher
	Selection selection.Source
	Notifier  Notifier
	Spawn     SpawnFunc
	Prompt    string
	Logger    *slog.Logger
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.Logger
}

// Run shows the prompt and then once per value received on wake until ctx
// is done. Activations that arrive while the prompt is visible are dropped.
// Cancelling ctx also closes a prompt that is currently shown.
func (a *App) Run(ctx context.Context, wake <-chan struct{}) error {
	log := a.logger()
	names := a.Registry.Names()

	for {
		if ctx.Err() != nil {
			return nil
		}

		input, err := a.Launcher.Show(ctx, names, a.Prompt)
		if ctx.Err() != nil {
			return nil
		}
		switch {
		case launcher.IsCancelled(err):
			log.Debug("prompt dismissed")
		case err != nil:
			return fmt.Errorf("%s prompt failed: %w", a.Launcher.Name(), err)
		default:
			_ = a.Submit(input)
		}

		drain(wake)

		select {
		case <-ctx.Done():
			return nil
		case <-wake:
			log.Debug("activated")
		}
	}
}

// Submit resolves input and spawns the command.
// Empty input and unknown keywords are reported through the notifier and
// returned; spawn failures are only logged.
func (a *App) Submit(input string) error {
	log := a.logger()

	inv, err := commands.Resolve(a.Registry, input, a.selectionText)
	if err != nil {
		var notFound *commands.NotFoundError
		switch {
		case errors.Is(err, commands.ErrEmptyInput):
			a.notify("empty input; doing nothing...")
		case errors.As(err, &notFound):
			a.notify(fmt.Sprintf("unable to comply: command '%s' not found", notFound.Name))
		}
		log.Debug("nothing to run", "input", input, "error", err)
		return err
	}

	a.notify(fmt.Sprintf("running command '%s'...", inv.Name))
	log.Info("running command", "name", inv.Name, "program", inv.Program, "args", inv.Args)

	if err := a.Spawn(inv.Program, inv.Args...); err != nil {
		log.Warn("failed to start command", "name", inv.Name, "program", inv.Program, "error", err)
	}
	return nil
}

func (a *App) selectionText() string {
	if a.Selection == nil {
		return ""
	}
	text, err := a.Selection.Text()
	if err != nil {
		a.logger().Debug("failed to read selection", "error", err)
		return ""
	}
	return text
}

func (a *App) notify(message string) {
	if a.Notifier != nil {
		a.Notifier.Notify(message)
	}
}

func drain(wake <-chan struct{}) {
	for {
		select {
		case <-wake:
		default:
			return
		}
	}
}

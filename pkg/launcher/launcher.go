// Package launcher provides the prompt front-ends used by ubq.
// It supports rofi, fuzzel, bemenu, dmenu, fzf and a built-in terminal prompt
// behind a unified interface. Each front-end shows a text box with the
// command names as candidates and returns the line the user submitted.
package launcher

import (
	"context"
	"fmt"

	"github.com/lvim-tech/ubq/pkg/config"
	"github.com/lvim-tech/ubq/pkg/utils"
)

// Launcher интерфейс за различни menu системи
type Launcher interface {
	// Show blocks until the user submits or dismisses the prompt or ctx is done
	Show(ctx context.Context, options []string, prompt string) (string, error)
	Name() string
	Args() []string
}

// Auto selects the first installed front-end
const Auto = "auto"

type constructor func(lc config.LauncherCommand) Launcher

var constructors = map[string]constructor{
	"rofi":   func(lc config.LauncherCommand) Launcher { return NewRofi(lc.Command, lc.Args) },
	"fuzzel": func(lc config.LauncherCommand) Launcher { return NewFuzzel(lc.Command, lc.Args) },
	"bemenu": func(lc config.LauncherCommand) Launcher { return NewBemenu(lc.Command, lc.Args) },
	"dmenu":  func(lc config.LauncherCommand) Launcher { return NewDmenu(lc.Command, lc.Args) },
	"fzf":    func(lc config.LauncherCommand) Launcher { return NewFzf(lc.Command, lc.Args) },
	"tui":    func(config.LauncherCommand) Launcher { return NewTUI() },
}

// Приоритет при auto: rofi > fuzzel > bemenu > dmenu > fzf
var priority = []string{"rofi", "fuzzel", "bemenu", "dmenu", "fzf"}

// New създава front-end по име
func New(name string, cfg *config.Config) (Launcher, error) {
	if name == "" || name == Auto {
		return DetectAvailable(cfg)
	}

	build, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown frontend %q", name)
	}
	return build(cfg.GetLauncherCommand(name)), nil
}

// DetectAvailable намира първия инсталиран front-end.
// The terminal prompt is used when none is installed and stdin is a tty.
func DetectAvailable(cfg *config.Config) (Launcher, error) {
	for _, name := range priority {
		lc := cfg.GetLauncherCommand(name)
		if utils.CommandExists(lc.Command) {
			return constructors[name](lc), nil
		}
	}

	if utils.IsTerminal() {
		return NewTUI(), nil
	}

	return nil, ErrNoLauncher
}

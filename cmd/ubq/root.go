package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lvim-tech/ubq/pkg/activation"
	"github.com/lvim-tech/ubq/pkg/app"
	"github.com/lvim-tech/ubq/pkg/commands"
	"github.com/lvim-tech/ubq/pkg/config"
	"github.com/lvim-tech/ubq/pkg/launcher"
	"github.com/lvim-tech/ubq/pkg/selection"
	"github.com/lvim-tech/ubq/pkg/utils"
)

const (
	version        = "0.5"
	defaultCommand = "~/.ubq"
)

type options struct {
	placeholder string
	frontend    string
	init        bool
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.placeholder, "placeholder", "p", commands.DefaultPlaceholder, "argument placeholder")
	fs.StringVarP(&o.frontend, "frontend", "f", "", "prompt front-end (auto, rofi, fuzzel, bemenu, dmenu, fzf, tui)")
	fs.BoolVar(&o.init, "init", false, "write the default settings file and exit")
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "ubq [CONFIG]",
		Short: "an application launcher inspired by Ubiquity",
		Long: "an application launcher inspired by Ubiquity <https://wiki.mozilla.org/Labs/Ubiquity>\n\n" +
			"CONFIG is the command file; defaults to " + defaultCommand + ".\n" +
			"Each line reads: <name> <nop|raw|url> <program> [args...]",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.init {
				return handleInit(cmd)
			}

			path := defaultCommand
			if len(args) > 0 {
				path = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, utils.ExpandHomeDir(path), opts, cmd.Flags().Changed("placeholder"))
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	bindFlags(cmd.Flags(), &opts)

	return cmd
}

func run(ctx context.Context, commandPath string, opts options, placeholderSet bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	placeholder := cfg.Placeholder
	if placeholderSet || placeholder == "" {
		placeholder = opts.placeholder
	}
	if placeholder == "" {
		return errors.New("placeholder must not be empty")
	}

	channel, err := activation.NewSignalChannel(cfg.ActivationSignal)
	if err != nil {
		return err
	}

	// Handler first: the default disposition of the signal would kill us
	wake := activation.Listen(ctx, channel)

	gate := &activation.Gate{
		Lister:  activation.PsLister{},
		Channel: channel,
		PID:     os.Getpid(),
		Logger:  logger,
	}
	proceed, err := gate.ActivateOrProceed(ctx)
	if err != nil {
		return err
	}
	if !proceed {
		logger.Debug("activated running instance")
		return nil
	}

	registry, err := commands.LoadFile(commandPath, placeholder)
	if err != nil {
		return err
	}
	logger.Debug("commands loaded", "path", commandPath, "count", registry.Len())

	frontend := cfg.Frontend
	if opts.frontend != "" {
		frontend = opts.frontend
	}
	prompt, err := launcher.New(frontend, cfg)
	if err != nil {
		return fmt.Errorf("failed to create launcher: %w", err)
	}

	var source selection.Source = selection.None{}
	if cfg.Selection.Enabled {
		source = selection.Clipboard{Primary: cfg.Selection.Primary}
	}

	a := &app.App{
		Registry:  registry,
		Launcher:  prompt,
		Selection: source,
		Notifier:  &utils.Notifier{Config: cfg.GetNotificationConfig(), Title: cfg.Prompt},
		Spawn:     utils.StartDetachedProcess,
		Prompt:    cfg.Prompt,
		Logger:    logger,
	}

	return a.Run(ctx, wake)
}

func handleInit(cmd *cobra.Command) error {
	if err := config.InitUserConfig(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config initialized at: %s\n", config.GetUserConfigPath())
	fmt.Fprintln(out, "\nYou can now edit the config file to customize ubq.")
	fmt.Fprintf(out, "Commands are read from %s.\n", defaultCommand)

	return nil
}

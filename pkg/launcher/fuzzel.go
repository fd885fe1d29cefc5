package launcher

import "context"

type Fuzzel struct {
	command string
	args    []string
}

func NewFuzzel(command string, args []string) *Fuzzel {
	return &Fuzzel{command: command, args: args}
}

// Show runs fuzzel in dmenu mode; it exits with 1 or 2 when aborted
func (f *Fuzzel) Show(ctx context.Context, options []string, prompt string) (string, error) {
	args := append([]string{}, f.args...)
	args = append(args, "--dmenu", "--prompt", prompt+"> ")

	return runMenu(ctx, f.command, args, options, nil, 1, 2)
}

func (f *Fuzzel) Name() string {
	return "fuzzel"
}

func (f *Fuzzel) Args() []string {
	return f.args
}

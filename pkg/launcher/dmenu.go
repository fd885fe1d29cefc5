package launcher

import "context"

type Dmenu struct {
	command string
	args    []string
}

func NewDmenu(command string, args []string) *Dmenu {
	return &Dmenu{command: command, args: args}
}

func (d *Dmenu) Show(ctx context.Context, options []string, prompt string) (string, error) {
	args := append([]string{}, d.args...)
	args = append(args, "-p", prompt)

	return runMenu(ctx, d.command, args, options, nil, 1)
}

func (d *Dmenu) Name() string {
	return "dmenu"
}

func (d *Dmenu) Args() []string {
	return d.args
}

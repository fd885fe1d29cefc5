package launcher

import "context"

type Rofi struct {
	command string
	args    []string
}

func NewRofi(command string, args []string) *Rofi {
	return &Rofi{command: command, args: args}
}

func (r *Rofi) Show(ctx context.Context, options []string, prompt string) (string, error) {
	args := append([]string{}, r.args...)
	args = append(args, "-dmenu", "-p", prompt)

	return runMenu(ctx, r.command, args, options, nil, 1)
}

func (r *Rofi) Name() string {
	return "rofi"
}

func (r *Rofi) Args() []string {
	return r.args
}

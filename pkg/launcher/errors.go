package launcher

import "errors"

var (
	// ErrCancelled се връща когато потребителят натисне ESC/Cancel
	ErrCancelled = errors.New("cancelled by user")

	// ErrNoLauncher се връща когато няма наличен front-end
	ErrNoLauncher = errors.New("no launcher available - please install rofi, fuzzel, bemenu, dmenu or fzf")
)

// IsCancelled проверява дали грешката е от cancel
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// Package utils provides notification utilities for ubq.
// Supports configurable notification behavior via NotificationConfig.
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/lvim-tech/ubq/pkg/config"
)

// Notifier shows short status messages to the user
type Notifier struct {
	Config config.NotificationConfig
	Title  string
}

// Notify изпраща съобщение според настройките
func (n *Notifier) Notify(message string) {
	NotifyWithConfig(&n.Config, n.Title, message)
}

// NotifyWithConfig sends a notification using the provided config
func NotifyWithConfig(cfg *config.NotificationConfig, title, message string) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	// If in terminal and ShowInTerminal is enabled, print to stderr
	if cfg.ShowInTerminal && IsTerminal() {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", title, message)
		return
	}

	tool := cfg.Tool
	if tool == "" || tool == "auto" {
		tool = detectNotificationTool()
	}

	name, args := notificationCommand(tool, title, message, cfg.Timeout, cfg.Urgency, "normal")
	if name == "" {
		return
	}

	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	if err := cmd.Start(); err == nil {
		go func() {
			_ = cmd.Wait()
		}()
	}
}

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

// notificationCommand builds the command line for the notification tool.
// Unknown tools yield an empty name.
func notificationCommand(tool, title, message string, timeout int, urgency, fallbackUrgency string) (string, []string) {
	if urgency == "" {
		urgency = fallbackUrgency
	}

	if timeout <= 0 {
		timeout = 5000
	}

	switch tool {
	case "dunstify", "notify-send":
		return tool, []string{
			"-u", urgency,
			"-t", strconv.Itoa(timeout),
			title,
			message,
		}
	default:
		return "", nil
	}
}

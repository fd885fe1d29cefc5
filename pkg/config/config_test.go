package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"UBQ_FRONTEND", "UBQ_PLACEHOLDER", "UBQ_ACTIVATION_SIGNAL", "UBQ_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom("", "")
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Frontend)
	assert.Equal(t, "ubq", cfg.Prompt)
	assert.Equal(t, "____", cfg.Placeholder)
	assert.Equal(t, "SIGUSR1", cfg.ActivationSignal)
	assert.True(t, cfg.Selection.Enabled)
	assert.True(t, cfg.Selection.Primary)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, "auto", cfg.Notifications.Tool)
	assert.Equal(t, LauncherCommand{Command: "rofi", Args: []string{"-i", "-sort"}}, cfg.Launchers["rofi"])
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoadFrom_UserOverridesDefaults(t *testing.T) {
	clearEnv(t)

	user := writeFile(t, `
frontend = "dmenu"
placeholder = "%s"

[selection]
primary = false

[notifications]
timeout = 3000

[launchers.dmenu]
args = "-b"

[launchers.wofi]
command = "/usr/bin/wofi"
args = ["--dmenu"]
`)
	system := writeFile(t, `frontend = "fzf"`)

	cfg, err := LoadFrom(user, system)
	require.NoError(t, err)

	assert.Equal(t, "dmenu", cfg.Frontend, "user file wins over system file")
	assert.Equal(t, "%s", cfg.Placeholder)
	assert.Equal(t, "ubq", cfg.Prompt, "unset keys keep defaults")
	assert.True(t, cfg.Selection.Enabled)
	assert.False(t, cfg.Selection.Primary)
	assert.Equal(t, 3000, cfg.Notifications.Timeout)
	assert.Equal(t, "low", cfg.Notifications.Urgency)
	assert.Equal(t, LauncherCommand{Command: "dmenu", Args: []string{"-b"}}, cfg.Launchers["dmenu"])
	assert.Equal(t, LauncherCommand{Command: "/usr/bin/wofi", Args: []string{"--dmenu"}}, cfg.Launchers["wofi"])
}

func TestLoadFrom_SystemWhenNoUser(t *testing.T) {
	clearEnv(t)

	system := writeFile(t, `frontend = "fzf"`)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"), system)
	require.NoError(t, err)
	assert.Equal(t, "fzf", cfg.Frontend)
}

func TestLoadFrom_BrokenFileFallsBackToDefaults(t *testing.T) {
	clearEnv(t)

	user := writeFile(t, `frontend = [unterminated`)

	cfg, err := LoadFrom(user, "")
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Frontend)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("UBQ_FRONTEND", "tui")
	t.Setenv("UBQ_PLACEHOLDER", "@@")
	t.Setenv("UBQ_LOG_LEVEL", "debug")

	user := writeFile(t, `frontend = "rofi"`)

	cfg, err := LoadFrom(user, "")
	require.NoError(t, err)

	assert.Equal(t, "tui", cfg.Frontend)
	assert.Equal(t, "@@", cfg.Placeholder)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestGetLauncherCommand(t *testing.T) {
	cfg := &Config{Launchers: map[string]LauncherCommand{
		"rofi": {Command: "rofi-wayland", Args: []string{"-i"}},
	}}

	got := cfg.GetLauncherCommand("rofi")
	assert.Equal(t, "rofi-wayland", got.Command)
	got.Args[0] = "changed"
	assert.Equal(t, []string{"-i"}, cfg.Launchers["rofi"].Args)

	assert.Equal(t, LauncherCommand{Command: "bemenu", Args: []string{}}, cfg.GetLauncherCommand("bemenu"))
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelWarn,
		"":      slog.LevelWarn,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, (&Config{LogLevel: in}).SlogLevel())
		})
	}
}

func TestInitUserConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, InitUserConfig())

	data, err := os.ReadFile(GetUserConfigPath())
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfigContent(), string(data))

	assert.Error(t, InitUserConfig(), "existing file is not overwritten")
}

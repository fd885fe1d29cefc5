// Package config provides settings management for ubq.
// It handles loading, merging, and accessing settings from the embedded
// defaults, the user or system settings file and the environment.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
)

//go:embed default.toml
var defaultConfigData string

// Config структура
type Config struct {
	Frontend         string
	Prompt           string
	Placeholder      string
	ActivationSignal string
	LogLevel         string
	Selection        SelectionConfig
	Notifications    NotificationConfig
	Launchers        map[string]LauncherCommand
}

// SelectionConfig controls the argument fallback
type SelectionConfig struct {
	Enabled bool `toml:"enabled"`
	Primary bool `toml:"primary"`
}

// NotificationConfig controls how inline messages are shown
type NotificationConfig struct {
	Enabled        bool   `toml:"enabled"`
	Tool           string `toml:"tool"`
	Timeout        int    `toml:"timeout"`
	Urgency        string `toml:"urgency"`
	ShowInTerminal bool   `toml:"show_in_terminal"`
}

// LauncherCommand описва как да се стартира front-end
type LauncherCommand struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// SelectionConfigFile е за четене от TOML (с pointers за optional полета)
type SelectionConfigFile struct {
	Enabled *bool `toml:"enabled"`
	Primary *bool `toml:"primary"`
}

// NotificationConfigFile е за четене от TOML
type NotificationConfigFile struct {
	Enabled        *bool   `toml:"enabled"`
	Tool           *string `toml:"tool"`
	Timeout        *int    `toml:"timeout"`
	Urgency        *string `toml:"urgency"`
	ShowInTerminal *bool   `toml:"show_in_terminal"`
}

// ConfigFile е за четене от TOML файл
type ConfigFile struct {
	Frontend         *string                   `toml:"frontend"`
	Prompt           *string                   `toml:"prompt"`
	Placeholder      *string                   `toml:"placeholder"`
	ActivationSignal *string                   `toml:"activation_signal"`
	LogLevel         *string                   `toml:"log_level"`
	Selection        SelectionConfigFile       `toml:"selection"`
	Notifications    NotificationConfigFile    `toml:"notifications"`
	Launchers        map[string]map[string]any `toml:"launchers"`
}

// envOverrides are applied last; empty values are ignored
type envOverrides struct {
	Frontend         string `env:"UBQ_FRONTEND"`
	Placeholder      string `env:"UBQ_PLACEHOLDER"`
	ActivationSignal string `env:"UBQ_ACTIVATION_SIGNAL"`
	LogLevel         string `env:"UBQ_LOG_LEVEL"`
}

// GetUserConfigPath връща пътя до user settings
func GetUserConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "ubq", "config.toml")
}

// GetSystemConfigPath връща пътя до system settings
func GetSystemConfigPath() string {
	return "/etc/ubq/config.toml"
}

// Load зарежда settings с merge на defaults + user (или system) файл + env
func Load() (*Config, error) {
	return LoadFrom(GetUserConfigPath(), GetSystemConfigPath())
}

// LoadFrom is Load with explicit user and system paths.
// A broken settings file is reported on stderr and the defaults are used.
func LoadFrom(userPath, systemPath string) (*Config, error) {
	// 1. Зареди defaults
	cfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// 2. User config, иначе system config
	for _, path := range []string{userPath, systemPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}

		fileCfg, err := loadConfigFromFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", path, err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			break
		}
		if err := mergeConfigs(cfg, fileCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid settings in %s: %v\n", path, err)
		}
		break
	}

	// 3. Environment
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDefaultConfig зарежда вградения default config
func loadDefaultConfig() (*Config, error) {
	var file ConfigFile
	if _, err := toml.Decode(defaultConfigData, &file); err != nil {
		return nil, err
	}

	cfg := &Config{Launchers: make(map[string]LauncherCommand)}
	if err := mergeConfigs(cfg, &file); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFromFile зарежда config от файл
func loadConfigFromFile(path string) (*ConfigFile, error) {
	var file ConfigFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// mergeConfigs merge file config върху cfg (file override)
func mergeConfigs(cfg *Config, file *ConfigFile) error {
	setString(&cfg.Frontend, file.Frontend)
	setString(&cfg.Prompt, file.Prompt)
	setString(&cfg.Placeholder, file.Placeholder)
	setString(&cfg.ActivationSignal, file.ActivationSignal)
	setString(&cfg.LogLevel, file.LogLevel)

	if file.Selection.Enabled != nil {
		cfg.Selection.Enabled = *file.Selection.Enabled
	}
	if file.Selection.Primary != nil {
		cfg.Selection.Primary = *file.Selection.Primary
	}

	n := file.Notifications
	if n.Enabled != nil {
		cfg.Notifications.Enabled = *n.Enabled
	}
	setString(&cfg.Notifications.Tool, n.Tool)
	if n.Timeout != nil {
		cfg.Notifications.Timeout = *n.Timeout
	}
	setString(&cfg.Notifications.Urgency, n.Urgency)
	if n.ShowInTerminal != nil {
		cfg.Notifications.ShowInTerminal = *n.ShowInTerminal
	}

	return mergeLauncherConfigs(cfg.Launchers, file.Launchers)
}

// mergeLauncherConfigs decodes the [launchers.<name>] tables
func mergeLauncherConfigs(merged map[string]LauncherCommand, raw map[string]map[string]any) error {
	for name, table := range raw {
		var user LauncherCommand
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &user,
		})
		if err != nil {
			return err
		}
		if err := decoder.Decode(table); err != nil {
			return fmt.Errorf("launchers.%s: %w", name, err)
		}

		current := merged[name]
		if user.Command != "" {
			current.Command = user.Command
		}
		if _, ok := table["args"]; ok {
			current.Args = user.Args
		}
		merged[name] = current
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	setString(&cfg.Frontend, &overrides.Frontend)
	setString(&cfg.Placeholder, &overrides.Placeholder)
	setString(&cfg.ActivationSignal, &overrides.ActivationSignal)
	setString(&cfg.LogLevel, &overrides.LogLevel)
	return nil
}

func setString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// GetLauncherCommand връща команда за конкретен front-end.
// Command defaults to the front-end name.
func (c *Config) GetLauncherCommand(name string) LauncherCommand {
	lc := c.Launchers[name]
	if lc.Command == "" {
		lc.Command = name
	}
	lc.Args = append([]string{}, lc.Args...)
	return lc
}

// GetNotificationConfig връща notification settings
func (c *Config) GetNotificationConfig() NotificationConfig {
	return c.Notifications
}

// SlogLevel parses LogLevel, defaulting to warn
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn
	}
	return level
}

// InitUserConfig копира default config в user config директорията
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()
	userConfigDir := filepath.Dir(userConfigPath)

	// Провери дали вече съществува
	if _, err := os.Stat(userConfigPath); err == nil {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	if err := os.MkdirAll(userConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent връща съдържанието на default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}

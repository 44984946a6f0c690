// ABOUTME: rawkeys settings loading with global + project config merge
// ABOUTME: YAML configuration via gopkg.in/yaml.v3; env vars override the log level

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "RAWKEYS_LOG_LEVEL"

// Settings holds the merged configuration.
type Settings struct {
	QuitKey    string `yaml:"quit_key,omitempty"`
	SuspendKey string `yaml:"suspend_key,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
	TTY        string `yaml:"tty,omitempty"`
	ShowHex    *bool  `yaml:"show_hex,omitempty"`
}

// Defaults returns the settings used when no file sets a value.
func Defaults() *Settings {
	showHex := true
	return &Settings{
		QuitKey:    "q",
		SuspendKey: "^Z",
		LogLevel:   "info",
		ShowHex:    &showHex,
	}
}

// Load reads and merges global and project-local settings on top of the
// defaults. Project settings override global settings. Missing files are
// not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return finish(merge(merge(Defaults(), global), project)), nil
}

// LoadFile reads settings from an explicit path on top of the defaults.
// Unlike Load, a missing file is an error.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return finish(merge(Defaults(), s)), nil
}

func finish(s *Settings) *Settings {
	ResolveEnvVars(s)
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		s.LogLevel = lvl
	}
	return s
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero fields of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base

	if over.QuitKey != "" {
		result.QuitKey = over.QuitKey
	}
	if over.SuspendKey != "" {
		result.SuspendKey = over.SuspendKey
	}
	if over.LogLevel != "" {
		result.LogLevel = over.LogLevel
	}
	if over.TTY != "" {
		result.TTY = over.TTY
	}
	if over.ShowHex != nil {
		v := *over.ShowHex
		result.ShowHex = &v
	}

	return &result
}

// Package config loads the demo application configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/lverne/sweettea"
)

type Config struct {
	// Animation toggles the open/close transitions. Default: true.
	Animation *bool `koanf:"animation"`

	Theme  ThemeConfig  `koanf:"theme"`
	Labels LabelsConfig `koanf:"labels"`
}

// ThemeConfig overrides parts of the default palette. Empty values
// keep the built-in color.
type ThemeConfig struct {
	Primary   string `koanf:"primary"`
	Secondary string `koanf:"secondary"`
	Border    string `koanf:"border"`
	Success   string `koanf:"success"`
	Error     string `koanf:"error"`
	Warning   string `koanf:"warning"`
	Info      string `koanf:"info"`
	Question  string `koanf:"question"`
}

// LabelsConfig overrides the default button labels.
type LabelsConfig struct {
	Confirm string `koanf:"confirm"`
	Deny    string `koanf:"deny"`
	Cancel  string `koanf:"cancel"`
}

// Load reads configuration files in priority order (last wins) and
// returns the merged result. Missing files are fine; the zero config
// keeps all defaults.
func Load() (*Config, error) {
	return loadPaths(configPaths())
}

// loadPaths merges the given files in order, last wins.
func loadPaths(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "sweettea-demo", "config.toml"),
		"config.toml", // pwd, highest priority
	}
}

// BuildTheme applies the configured overrides to the default theme.
func (c *Config) BuildTheme() sweettea.Theme {
	t := sweettea.DefaultTheme()
	apply := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	apply(&t.Primary, c.Theme.Primary)
	apply(&t.Secondary, c.Theme.Secondary)
	apply(&t.Border, c.Theme.Border)
	apply(&t.Success, c.Theme.Success)
	apply(&t.Error, c.Theme.Error)
	apply(&t.Warning, c.Theme.Warning)
	apply(&t.Info, c.Theme.Info)
	apply(&t.Question, c.Theme.Question)
	return t
}

// ApplyLabels fills unset button texts from the configuration.
// Labels left empty here fall back to the library defaults.
func (c *Config) ApplyLabels(opts *sweettea.Options) {
	if opts.ConfirmButtonText == "" {
		opts.ConfirmButtonText = c.Labels.Confirm
	}
	if opts.DenyButtonText == "" {
		opts.DenyButtonText = c.Labels.Deny
	}
	if opts.CancelButtonText == "" {
		opts.CancelButtonText = c.Labels.Cancel
	}
}

// Animates reports whether transitions are enabled.
func (c *Config) Animates() bool {
	return c.Animation == nil || *c.Animation
}

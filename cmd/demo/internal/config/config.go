// Package config loads the optional demo.yaml describing the option sets
// the demo renders.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional demo.yaml configuration.
type Config struct {
	Title  string  `yaml:"title,omitempty"`
	Groups []Group `yaml:"groups"`
}

// Group describes one radio group.
type Group struct {
	Label       string   `yaml:"label,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Disabled    bool     `yaml:"disabled,omitempty"`
	Initial     string   `yaml:"initial,omitempty"`
	Options     []Option `yaml:"options"`
}

// Option describes one selectable value.
type Option struct {
	Value    string `yaml:"value"`
	Text     string `yaml:"text,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Display returns the option's visible text, falling back to its value.
func (o Option) Display() string {
	if o.Text != "" {
		return o.Text
	}
	return o.Value
}

// LoadOptional reads demo.yaml from dir if present, otherwise returns the
// built-in default configuration.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "demo.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read demo.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse demo.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no demo.yaml exists.
func Default() *Config {
	return &Config{
		Title: "headless radio groups",
		Groups: []Group{
			{
				Label:       "Shirt size",
				Description: "Pick exactly one",
				Options: []Option{
					{Value: "small", Text: "Small"},
					{Value: "medium", Text: "Medium"},
					{Value: "large", Text: "Large"},
				},
			},
			{
				Label:   "Shipping",
				Initial: "standard",
				Options: []Option{
					{Value: "standard", Text: "Standard (5-7 days)"},
					{Value: "express", Text: "Express (1-2 days)"},
					{Value: "pigeon", Text: "Carrier pigeon", Disabled: true},
				},
			},
		},
	}
}

// Validate checks the configuration for empty groups and duplicate values.
func (c *Config) Validate() error {
	if len(c.Groups) == 0 {
		return fmt.Errorf("demo.yaml defines no groups")
	}
	for i, g := range c.Groups {
		if len(g.Options) == 0 {
			return fmt.Errorf("group %d (%q) has no options", i, g.Label)
		}
		seen := make(map[string]bool)
		for _, o := range g.Options {
			value := strings.TrimSpace(o.Value)
			if value == "" {
				return fmt.Errorf("group %d (%q) has an option with an empty value", i, g.Label)
			}
			if seen[value] {
				return fmt.Errorf("group %d (%q) repeats value %q", i, g.Label, value)
			}
			seen[value] = true
		}
		if g.Initial != "" && !seen[g.Initial] {
			return fmt.Errorf("group %d (%q) initial value %q matches no option", i, g.Label, g.Initial)
		}
	}
	return nil
}

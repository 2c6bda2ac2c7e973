// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package styles models the Tailwind build configuration as data: which
// files are scanned for utility-class usage and which custom design
// tokens extend the base theme. The checked-in tailwind.config.js is
// generated from Default() and must never be edited by hand — run the
// styles subcommand instead.
package styles

import (
	"fmt"
	"strings"
)

// Config is the style-build declaration: content globs plus theme
// extension. It is pure data, read once per style-generation run.
type Config struct {
	// Content lists glob patterns for the files scanned for class
	// usage. The glob dialect supports * (within one path segment)
	// and ** (across segments).
	Content []string

	// Theme holds the custom tokens layered on top of the framework
	// defaults.
	Theme Extension
}

// Extension is the theme.extend block: named tokens that become
// utility classes when referenced by scanned content.
type Extension struct {
	// FontFamily maps a semantic name to an ordered font fallback
	// list (font-<name> utilities).
	FontFamily map[string][]string

	// Colors maps a semantic color name to its value
	// (text-<name>, bg-<name>, ... utilities).
	Colors map[string]string

	// DropShadow maps an effect name to its layered shadow parameters
	// (drop-shadow-<name> utilities).
	DropShadow map[string][]string
}

// Default returns the gallery's style configuration: the embedded HTML
// templates are scanned, and the theme gains the Poppins font stack
// plus the heading accent color and drop shadow.
func Default() *Config {
	return &Config{
		Content: []string{
			"*.html",
			"internal/render/templates/**/*.html",
		},
		Theme: Extension{
			FontFamily: map[string][]string{
				"poppins": {"Poppins", "sans-serif"},
			},
			Colors: map[string]string{
				"header": "#334155",
			},
			DropShadow: map[string][]string{
				"header": {
					"0 4px 3px rgb(51 65 85 / 0.35)",
					"0 2px 2px rgb(51 65 85 / 0.25)",
				},
			},
		},
	}
}

// Validate checks the configuration for values the style-build tool
// would reject: empty content lists, unusable glob patterns, and empty
// or malformed token definitions.
func (c *Config) Validate() error {
	if len(c.Content) == 0 {
		return fmt.Errorf("styles: content globs must not be empty")
	}
	for _, glob := range c.Content {
		if glob == "" {
			return fmt.Errorf("styles: empty content glob")
		}
		if strings.HasPrefix(glob, "/") {
			return fmt.Errorf("styles: content glob %q must be relative", glob)
		}
	}

	for name, stack := range c.Theme.FontFamily {
		if name == "" {
			return fmt.Errorf("styles: font family token with empty name")
		}
		if len(stack) == 0 {
			return fmt.Errorf("styles: font family %q has an empty font stack", name)
		}
	}
	for name, value := range c.Theme.Colors {
		if name == "" {
			return fmt.Errorf("styles: color token with empty name")
		}
		if value == "" {
			return fmt.Errorf("styles: color %q has an empty value", name)
		}
	}
	for name, layers := range c.Theme.DropShadow {
		if name == "" {
			return fmt.Errorf("styles: drop shadow token with empty name")
		}
		if len(layers) == 0 {
			return fmt.Errorf("styles: drop shadow %q has no layers", name)
		}
	}

	return nil
}

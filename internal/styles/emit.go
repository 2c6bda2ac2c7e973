// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package styles

import (
	"fmt"
	"sort"
	"strings"
)

// EmitJS renders the configuration as a tailwind.config.js module.
// Output is deterministic: map keys are emitted in sorted order, so the
// same configuration always produces byte-identical bytes.
func (c *Config) EmitJS() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n")

	b.WriteString("  content: [\n")
	for _, glob := range c.Content {
		fmt.Fprintf(&b, "    %q,\n", glob)
	}
	b.WriteString("  ],\n")

	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")

	if len(c.Theme.Colors) > 0 {
		b.WriteString("      colors: {\n")
		for _, name := range sortedKeys(c.Theme.Colors) {
			fmt.Fprintf(&b, "        %s: %q,\n", jsKey(name), c.Theme.Colors[name])
		}
		b.WriteString("      },\n")
	}

	if len(c.Theme.DropShadow) > 0 {
		b.WriteString("      dropShadow: {\n")
		for _, name := range sortedKeys(c.Theme.DropShadow) {
			fmt.Fprintf(&b, "        %s: [\n", jsKey(name))
			for _, layer := range c.Theme.DropShadow[name] {
				fmt.Fprintf(&b, "          %q,\n", layer)
			}
			b.WriteString("        ],\n")
		}
		b.WriteString("      },\n")
	}

	if len(c.Theme.FontFamily) > 0 {
		b.WriteString("      fontFamily: {\n")
		for _, name := range sortedKeys(c.Theme.FontFamily) {
			quoted := make([]string, len(c.Theme.FontFamily[name]))
			for i, font := range c.Theme.FontFamily[name] {
				quoted[i] = fmt.Sprintf("%q", font)
			}
			fmt.Fprintf(&b, "        %s: [%s],\n", jsKey(name), strings.Join(quoted, ", "))
		}
		b.WriteString("      },\n")
	}

	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")

	return []byte(b.String()), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// jsKey quotes a map key unless it is a plain JS identifier.
func jsKey(name string) string {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '$':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return fmt.Sprintf("%q", name)
		}
	}
	return name
}

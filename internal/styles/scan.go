// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package styles

import (
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
)

// classAttr matches class attribute values in markup. Tailwind's own
// scanner is looser (it tokenizes whole files), but for auditing our
// templates the attribute form is the one that matters.
var classAttr = regexp.MustCompile(`class="([^"]*)"`)

// Usage is the set of utility classes referenced by scanned content.
type Usage struct {
	classes map[string]struct{}
	files   []string
}

// Scan walks fsys, matches files against the configuration's content
// globs, and collects every class name referenced in them. Template
// actions inside attribute values are ignored; the surrounding literal
// classes are still collected.
func (c *Config) Scan(fsys fs.FS) (*Usage, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	u := &Usage{classes: make(map[string]struct{})}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !c.matches(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("styles: read %s: %w", p, err)
		}

		u.files = append(u.files, p)
		for _, m := range classAttr.FindAllStringSubmatch(string(data), -1) {
			for _, class := range strings.Fields(m[1]) {
				if strings.ContainsAny(class, "{}") {
					continue
				}
				u.classes[class] = struct{}{}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u, nil
}

// matches reports whether a slash-separated path matches any content
// glob.
func (c *Config) matches(p string) bool {
	for _, glob := range c.Content {
		if globMatch(glob, p) {
			return true
		}
	}
	return false
}

// globMatch matches a path against a pattern segment by segment. A
// "**" segment matches zero or more path segments; other segments use
// path.Match semantics.
func globMatch(pattern, p string) bool {
	return segmentsMatch(strings.Split(pattern, "/"), strings.Split(p, "/"))
}

func segmentsMatch(pattern, segs []string) bool {
	if len(pattern) == 0 {
		return len(segs) == 0
	}
	if pattern[0] == "**" {
		for skip := 0; skip <= len(segs); skip++ {
			if segmentsMatch(pattern[1:], segs[skip:]) {
				return true
			}
		}
		return false
	}
	if len(segs) == 0 {
		return false
	}
	ok, err := path.Match(pattern[0], segs[0])
	if err != nil || !ok {
		return false
	}
	return segmentsMatch(pattern[1:], segs[1:])
}

// Uses reports whether the scanned content references class.
func (u *Usage) Uses(class string) bool {
	_, ok := u.classes[class]
	return ok
}

// Classes returns the referenced class names in sorted order.
func (u *Usage) Classes() []string {
	out := make([]string, 0, len(u.classes))
	for c := range u.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Files returns the scanned file paths in walk order.
func (u *Usage) Files() []string {
	return u.files
}

// TokenClasses returns the utility classes derived from the custom
// theme tokens. Tailwind's JIT engine emits a token's utilities only
// when scanned content references them, so auditing these against a
// Scan result tells you which declared tokens are live.
func (c *Config) TokenClasses() []string {
	var out []string
	for name := range c.Theme.FontFamily {
		out = append(out, "font-"+name)
	}
	for name := range c.Theme.Colors {
		out = append(out, "text-"+name)
	}
	for name := range c.Theme.DropShadow {
		out = append(out, "drop-shadow-"+name)
	}
	sort.Strings(out)
	return out
}

// UnusedTokens returns the token-derived classes that no scanned file
// references. These cost nothing in the generated stylesheet but are
// dead weight in the configuration.
func (c *Config) UnusedTokens(u *Usage) []string {
	var out []string
	for _, class := range c.TokenClasses() {
		if !u.Uses(class) {
			out = append(out, class)
		}
	}
	return out
}

// Package web provides the embedded static assets served at /static/.
// The compiled Tailwind stylesheet is generated from input.css by the
// tailwindcss CLI and embedded into the binary at build time.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree: the Tailwind input
// source and the compiled output.css the templates link.
//
//go:embed all:static
var StaticFS embed.FS

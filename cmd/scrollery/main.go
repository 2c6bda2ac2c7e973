// Package main is the entry point for the scrollery gallery. The
// default command runs the HTTP server; the styles and release
// subcommands regenerate the build scaffolding checked into the repo.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scrollery",
		Short: "HTMX infinite-scroll image gallery",
		Long: `Scrollery is a server-rendered infinite-scroll image gallery.

The server keeps its image catalog in PostgreSQL, caches rendered HTML
fragments in Valkey, and can seed the catalog from an S3-compatible
bucket. Pages load more images as the user scrolls, driven by htmx
intersection triggers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Bare invocation runs the server.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		stylesCmd(),
		releaseCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

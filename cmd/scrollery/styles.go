// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scrollery/internal/styles"
)

const stylesFile = "tailwind.config.js"

func stylesCmd() *cobra.Command {
	var (
		write bool
		check bool
		audit bool
	)

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Generate or audit the Tailwind configuration",
		Long: `Render the style configuration as tailwind.config.js.

Without flags the configuration is printed to stdout. --write replaces
the checked-in file, --check verifies it is up to date, and --audit
scans the content globs and reports declared theme tokens that no
template references (the JIT engine would emit nothing for them).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := styles.Default()

			emitted, err := cfg.EmitJS()
			if err != nil {
				return err
			}

			if check {
				current, err := os.ReadFile(stylesFile)
				if err != nil {
					return err
				}
				if !bytes.Equal(current, emitted) {
					return fmt.Errorf("%s is out of date; run `scrollery styles --write`", stylesFile)
				}
				fmt.Printf("%s is up to date\n", stylesFile)
				return nil
			}

			if audit {
				usage, err := cfg.Scan(os.DirFS("."))
				if err != nil {
					return err
				}
				fmt.Printf("scanned %d files, %d classes referenced\n",
					len(usage.Files()), len(usage.Classes()))
				if unused := cfg.UnusedTokens(usage); len(unused) != 0 {
					return fmt.Errorf("declared tokens never referenced: %v", unused)
				}
				fmt.Println("all declared tokens are referenced")
				return nil
			}

			if write {
				if err := os.WriteFile(stylesFile, emitted, 0o644); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", stylesFile)
				return nil
			}

			os.Stdout.Write(emitted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "write tailwind.config.js")
	cmd.Flags().BoolVar(&check, "check", false, "verify tailwind.config.js is current")
	cmd.Flags().BoolVar(&audit, "audit", false, "report theme tokens unused by scanned content")

	return cmd
}

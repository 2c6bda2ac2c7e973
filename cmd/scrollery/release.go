// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scrollery/internal/pipeline"
)

const releaseFile = "Dockerfile"

func releaseCmd() *cobra.Command {
	var (
		write bool
		check bool
	)

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Generate or verify the container build recipe",
		Long: `Render the release pipeline as a Dockerfile.

The recipe is validated before rendering: two stages, cache-mounted
dependency and build layers, a slim runtime image with a non-root user,
and no baked-in start command (the deployment supplies it). Without
flags the Dockerfile is printed to stdout; --write replaces the
checked-in file and --check verifies it is up to date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			emitted, err := pipeline.Default().EmitDockerfile()
			if err != nil {
				return err
			}

			if check {
				current, err := os.ReadFile(releaseFile)
				if err != nil {
					return err
				}
				if !bytes.Equal(current, emitted) {
					return fmt.Errorf("%s is out of date; run `scrollery release --write`", releaseFile)
				}
				fmt.Printf("%s is up to date\n", releaseFile)
				return nil
			}

			if write {
				if err := os.WriteFile(releaseFile, emitted, 0o644); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", releaseFile)
				return nil
			}

			os.Stdout.Write(emitted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "write the Dockerfile")
	cmd.Flags().BoolVar(&check, "check", false, "verify the Dockerfile is current")

	return cmd
}

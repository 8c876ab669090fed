package main

import (
	"fmt"

	cli "github.com/urfave/cli/v2"
)

// set at build time with -ldflags
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print version information",
		Action: func(ctx *cli.Context) error {
			_, err := fmt.Fprintf(ui.Out, "derinet version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	app := &cli.App{
		Name:  "derinet",
		Usage: "derivational lexicon toolbox",
		Commands: []*cli.Command{
			sortCommand(ui),
			treeCommand(ui),
			lookupCommand(ui),
			statCommand(ui),
			queryCommand(ui),
			importCommand(ui),
			versionCommand(ui),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "derinet: %v\n", err)
}

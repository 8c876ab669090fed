package main

import (
	"fmt"

	"github.com/tiefling-cat/derinet/storage/filesystem"
	"github.com/tiefling-cat/derinet/storage/sqlite/zombiezen"
	cli "github.com/urfave/cli/v2"

	"github.com/gosuri/uiprogress"
)

func importCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "import a TSV lexicon into a SQLite database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "TSV lexicon file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "SQLite database file",
				Required: true,
			},
		},
		Action: func(ctx *cli.Context) error {
			from := ctx.String("from")
			to := ctx.String("to")

			src := filesystem.NewLexiconStore(from)

			fmt.Fprintf(ui.Out, "Reading lexemes from %s...\n", from)
			store, _, err := loadLexicon(src, ui)
			if err != nil {
				return err
			}

			pool, err := zombiezen.NewPool(to)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := zombiezen.CreateLexemeTables(pool); err != nil {
				return fmt.Errorf("failed to create lexemes table: %w", err)
			}

			dst := zombiezen.NewLexiconStore(pool)

			uiprogress.Start()
			bar := uiprogress.AddBar(store.Len())
			bar.AppendCompleted()
			bar.PrependElapsed()

			err = dst.WriteAll(store, func(current, total int, lemma string) {
				bar.Incr()
			})
			uiprogress.Stop()
			if err != nil {
				return fmt.Errorf("failed to write lexemes: %w", err)
			}

			fmt.Fprintf(ui.Out, "Successfully imported %d lexemes from %s to %s\n", store.Len(), from, to)
			return nil
		},
	}
}

package main

import (
	"errors"
	"fmt"

	"github.com/tiefling-cat/derinet/forest"
	cli "github.com/urfave/cli/v2"
)

func sortCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "sort the lexicon into canonical order and save it",
		ArgsUsage: "<lexicon> [output]",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() < 1 {
				return errors.New("missing lexicon path")
			}

			in := ctx.Args().Get(0)
			out := in
			if ctx.NArg() > 1 {
				out = ctx.Args().Get(1)
			}

			srcPool := &Pool{}
			defer srcPool.Close()

			src, err := NewLexiconRepository(srcPool, in)
			if err != nil {
				return err
			}

			store, _, err := loadLexicon(src, ui)
			if err != nil {
				return err
			}

			sorted, err := forest.Sort(store)
			if err != nil {
				return err
			}

			dst := src
			if out != in {
				dstPool := &Pool{}
				defer dstPool.Close()

				dst, err = NewLexiconRepository(dstPool, out)
				if err != nil {
					return err
				}
			}

			if err := dst.Write(sorted); err != nil {
				return err
			}

			fmt.Fprintf(ui.Out, "📖 sorted %d lexemes into %s\n", sorted.Len(), out)
			return nil
		},
	}
}

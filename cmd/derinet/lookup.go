package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tiefling-cat/derinet/forest"
	"github.com/tiefling-cat/derinet/tsv"
	cli "github.com/urfave/cli/v2"
)

func lookupCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "resolve a lemma, optionally disambiguated by a morph pattern",
		ArgsUsage: "<lexicon> <lemma> [morph]",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() < 2 {
				return errors.New("usage: lookup <lexicon> <lemma> [morph]")
			}

			lemma := ctx.Args().Get(1)
			morph := ""
			if ctx.NArg() > 2 {
				morph = ctx.Args().Get(2)
			}

			p := &Pool{}
			defer p.Close()

			repo, err := NewLexiconRepository(p, ctx.Args().Get(0))
			if err != nil {
				return err
			}

			store, index, err := loadLexicon(repo, ui)
			if err != nil {
				return err
			}

			id, err := index.Lookup(lemma, morph)
			if err != nil {
				if errors.Is(err, forest.ErrAmbiguous) {
					return fmt.Errorf("%w, morph patterns: %s", err, strings.Join(index.Morphs(lemma), " "))
				}
				return err
			}

			l, err := store.Get(id)
			if err != nil {
				return err
			}

			fmt.Fprintf(ui.Out, "🌱 %s\n", tsv.Encode(l))
			return nil
		},
	}
}

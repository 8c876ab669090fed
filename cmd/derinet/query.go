package main

import (
	"errors"

	"github.com/tiefling-cat/derinet/query"
	cli "github.com/urfave/cli/v2"
)

func queryCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "interactive lemma lookup with completion",
		ArgsUsage: "<lexicon>",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() < 1 {
				return errors.New("missing lexicon path")
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

			h := query.NewHandler(store, index)
			return h.Run()
		},
	}
}

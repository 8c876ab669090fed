package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tiefling-cat/derinet/stat"
	cli "github.com/urfave/cli/v2"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print forest statistics of the lexicon",
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

			store, _, err := loadLexicon(repo, ui)
			if err != nil {
				return err
			}

			hdl := stat.NewHandler()
			hdl.Aggregate(store)

			stats := hdl.Get()
			fmt.Fprintf(ui.Out, "Num lexemes %d, roots %d, leaves %d, derivation edges %d, children per lexeme %.2f\n",
				stats.NumLexemes, stats.NumRoots, stats.NumLeaves, stats.NumEdges, stats.ChildrenPerNodeMean)

			counts := make([]int, 0, len(stats.ChildrenDis))
			for n := range stats.ChildrenDis {
				counts = append(counts, n)
			}
			sort.Ints(counts)

			for _, n := range counts {
				fmt.Fprintf(ui.Out, "  %d children: %d lexemes\n", n, stats.ChildrenDis[n])
			}

			return nil
		},
	}
}

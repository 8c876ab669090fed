package main

import (
	"errors"
	"strconv"

	"github.com/tiefling-cat/derinet/render"
	cli "github.com/urfave/cli/v2"
)

func treeCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "tree",
		Usage:     "print the derivation subtree rooted at a lexeme id",
		ArgsUsage: "<lexicon> <id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "render the subtree as JSON",
			},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() < 2 {
				return errors.New("usage: tree <lexicon> <id>")
			}

			id, err := strconv.Atoi(ctx.Args().Get(1))
			if err != nil {
				return errors.New("id must be an integer")
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

			node, err := render.Subtree(store, id)
			if err != nil {
				return err
			}

			var r render.Renderer = render.NewTreeRenderer(ui.Out)
			if ctx.Bool("json") {
				r = render.NewJSONRenderer(ui.Out)
			}

			return r.Render(node)
		},
	}
}

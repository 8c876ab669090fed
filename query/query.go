package query

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tiefling-cat/derinet/forest"
	"github.com/tiefling-cat/derinet/render"

	prompt "github.com/c-bata/go-prompt"
)

const maxSuggest = 12

type Handler struct {
	Store *forest.Store
	Index forest.Index
}

func NewHandler(s *forest.Store, x forest.Index) *Handler {
	return &Handler{
		Store: s,
		Index: x,
	}
}

// Run presents the lexicon REPL. An input line is a lemma, optionally
// followed by a morph pattern to disambiguate it; the derivation
// subtree of the resolved lexeme is printed.
func (h *Handler) Run() error {

	fmt.Println("🔑 <lemma> [morph] prints the derivation subtree, 🔧 quit")

	lemmas := h.Index.Lemmas()

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🌱 ", h.completer(lemmas),
			prompt.OptionTitle("derinet query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(maxSuggest),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		tokens := strings.Fields(in)
		if len(tokens) == 0 {
			continue
		}

		history = append(history, in)

		lemma := tokens[0]
		morph := ""
		if len(tokens) > 1 {
			morph = tokens[1]
		}

		id, err := h.Index.Lookup(lemma, morph)
		if err != nil {
			if errors.Is(err, forest.ErrAmbiguous) {
				fmt.Printf("❌ %s, morph patterns: %s\n", err, strings.Join(h.Index.Morphs(lemma), " "))
			} else {
				fmt.Printf("❌ %s\n", err)
			}
			continue
		}

		node, err := render.Subtree(h.Store, id)
		if err != nil {
			fmt.Printf("❌ %s\n", err)
			continue
		}

		r := render.NewTreeRenderer(os.Stdout)
		if err := r.Render(node); err != nil {
			return err
		}
	}
}

func (h *Handler) completer(lemmas []string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if "" == befCursor {
			return s
		}

		tokens := strings.Split(befCursor, " ")

		if len(tokens) == 1 {
			for _, lemma := range lemmas {
				if strings.HasPrefix(lemma, tokens[0]) {
					s = append(s, prompt.Suggest{Text: lemma, Description: "🌱 " + lemma})
				}

				if len(s) >= maxSuggest {
					break
				}
			}

			return s
		}

		// second token: complete the morph patterns of the first
		for _, morph := range h.Index.Morphs(tokens[0]) {
			if strings.HasPrefix(morph, tokens[1]) {
				s = append(s, prompt.Suggest{Text: morph, Description: tokens[0]})
			}
		}

		return s
	}
}

package stat

import (
	"github.com/tiefling-cat/derinet/forest"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumLexemes int
	NumRoots   int
	NumLeaves  int
	NumEdges   int

	// ChildrenPerNodeMean is the average number of children over all
	// lexemes. Always below 1 in a forest, so a fraction, not an int.
	ChildrenPerNodeMean float64

	// ChildrenDis maps a children count to the number of lexemes that
	// have exactly that many children.
	ChildrenDis map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{ChildrenDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(s *forest.Store) {
	h.stats.NumLexemes = s.Len()

	for _, l := range s.All() {
		if l.IsRoot() {
			h.stats.NumRoots++
		}

		if len(l.Children) == 0 {
			h.stats.NumLeaves++
		}

		h.stats.NumEdges += len(l.Children)
		h.stats.ChildrenDis[len(l.Children)]++
	}

	if h.stats.NumLexemes > 0 {
		h.stats.ChildrenPerNodeMean = float64(h.stats.NumEdges) / float64(h.stats.NumLexemes)
	}
}

package render

import (
	"encoding/json"
	"io"
)

// JSONRenderer writes a subtree as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the subtree as a nested JSON object.
func (r *JSONRenderer) Render(n Node) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(n)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)

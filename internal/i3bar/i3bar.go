// Package i3bar emits status blocks in the i3bar/i3blocks JSON
// protocol.
package i3bar

import (
	"encoding/json"
	"io"
)

// Block is a single status line record.
type Block struct {
	FullText   string `json:"full_text"`
	ShortText  string `json:"short_text,omitempty"`
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
}

// Emit writes the block as one JSON line.
func (b Block) Emit(w io.Writer) error {
	return json.NewEncoder(w).Encode(b)
}

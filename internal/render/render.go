// Package render prints gateway responses for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes v as 2-space-indented JSON. HTML escaping is off so emoji and
// other non-ASCII text print literally. Values the encoder rejects fall back
// to their fmt rendering.
func JSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(w, fmt.Sprint(v))
	}
}

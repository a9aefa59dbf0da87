// Package display lays out several rendered solutions side by side for
// terminal output. It ports original_source's TextBox column-packing
// algorithm (state.rs: StateSet<S>/TextBox) from Rust to Go — the one
// presentation concern spec.md calls out as an external collaborator
// (§1 "pretty-printing of final solutions") rather than core solver logic.
package display

import "strings"

const (
	// Padding is the blank-column gap original_source's TEXT_BOX_PADDING
	// leaves between adjacent boxes.
	Padding = 4
	// MaxWidth mirrors TEXT_BOX_WIDTH: the terminal width a row of boxes
	// wraps at before starting a new row.
	MaxWidth = 90
)

// Box is one solution rendered as a rectangle of equal-width lines.
type Box struct {
	Lines []string
	Width int
}

// NewBox pads every line to the width of the longest, so boxes placed
// side by side line up column-for-column.
func NewBox(lines []string) Box {
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	padded := make([]string, len(lines))
	for i, l := range lines {
		padded[i] = l + strings.Repeat(" ", w-len(l))
	}
	return Box{Lines: padded, Width: w}
}

// Render packs boxes left to right, wrapping to a new row of boxes once
// MaxWidth would be exceeded, and returns the full multi-row layout as one
// string.
func Render(boxes []Box) string {
	var out strings.Builder
	i := 0
	for i < len(boxes) {
		rowWidth := 0
		j := i
		for j < len(boxes) {
			w := boxes[j].Width
			if j > i {
				w += Padding
			}
			if j > i && rowWidth+w > MaxWidth {
				break
			}
			rowWidth += w
			j++
		}
		out.WriteString(renderRow(boxes[i:j]))
		i = j
	}
	return out.String()
}

func renderRow(boxes []Box) string {
	height := 0
	for _, b := range boxes {
		if len(b.Lines) > height {
			height = len(b.Lines)
		}
	}
	pad := strings.Repeat(" ", Padding)
	var out strings.Builder
	for row := 0; row < height; row++ {
		for bi, b := range boxes {
			if bi > 0 {
				out.WriteString(pad)
			}
			if row < len(b.Lines) {
				out.WriteString(b.Lines[row])
			} else {
				out.WriteString(strings.Repeat(" ", b.Width))
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}

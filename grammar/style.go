package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Korede-TA/ise/coord"
)

// Default cell dimensions in pixels; layout tables seed from these.
const (
	DefaultWidth  = 90.0
	DefaultHeight = 30.0
)

// Style bundles the presentation attributes attached to a grammar.
type Style struct {
	Width          float64
	Height         float64
	BorderColor    string
	BorderCollapse bool
	FontWeight     int
	FontColor      string
}

// DefaultStyle returns the style every fresh grammar carries:
// 90×30 px, grey border, not collapsed, weight 400, black text.
func DefaultStyle() Style {
	return Style{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		BorderColor:    "grey",
		BorderCollapse: false,
		FontWeight:     400,
		FontColor:      "black",
	}
}

// CSS renders the style's plain declaration block.
func (s Style) CSS() string {
	collapse := "inherit"
	if s.BorderCollapse {
		collapse = "collapse"
	}
	return fmt.Sprintf(
		"border: 1px solid %s;\nborder-collapse: %s;\nfont-weight: %d;\ncolor: %s;\n",
		s.BorderColor, collapse, s.FontWeight, s.FontColor,
	)
}

// CSS renders the grammar's full declaration block for the cell at c.
//
// Grid kinds emit a CSS grid wrapper whose grid-template-areas names every
// child cell, one quoted string per row, sub-coordinates sorted (row, col)
// ascending. All other kinds emit the plain style. Either way the block ends
// with the cell's own grid-area assignment.
func (g Grammar) CSS(c coord.Coordinate) string {
	grid, ok := g.Kind.(Grid)
	if !ok {
		return g.Style.CSS() + "grid-area: cell-" + c.String() + ";\n"
	}

	subs := make([]coord.Fragment, len(grid.SubCoords))
	copy(subs, grid.SubCoords)
	sort.Slice(subs, func(i, j int) bool { return subs[i].Compare(subs[j]) < 0 })

	var areas strings.Builder
	prevRow := uint32(0)
	for _, f := range subs {
		switch {
		case prevRow == 0:
			areas.WriteByte('"')
		case f.Row > prevRow:
			areas.WriteString("\"\n\"")
		default:
			areas.WriteByte(' ')
		}
		areas.WriteString("cell-")
		areas.WriteString(coord.ChildOf(c, f).String())
		prevRow = f.Row
	}
	areas.WriteByte('"')

	return fmt.Sprintf(
		"display: grid;\ngrid-area: cell-%s;\nheight: fit-content;\nwidth: fit-content !important;\ngrid-template-areas: \n%s;\n",
		c.String(), areas.String(),
	)
}

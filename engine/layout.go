package engine

import (
	"github.com/Korede-TA/ise/coord"
	"github.com/Korede-TA/ise/grammar"
	"github.com/Korede-TA/ise/session"
)

// borderPx is the border thickness added once per band and once per
// ancestor level on every resize.
const borderPx = 2.0

// Layout holds the pixel sizes of row and column bands, keyed by the bands'
// canonical strings. Root and meta sit in no band and have no entries.
type Layout struct {
	RowHeights map[string]float64
	ColWidths  map[string]float64
}

// NewLayout returns empty layout tables.
func NewLayout() Layout {
	return Layout{
		RowHeights: make(map[string]float64),
		ColWidths:  make(map[string]float64),
	}
}

// Seed ensures default entries for every nested coordinate stored in m.
func (l Layout) Seed(m session.Map) {
	for _, c := range m.Coords() {
		l.Ensure(c)
	}
}

// Ensure seeds default band entries for c if absent. Top-level coordinates
// are ignored.
func (l Layout) Ensure(c coord.Coordinate) {
	if r, ok := c.FullRow(); ok {
		if _, present := l.RowHeights[r.Key()]; !present {
			l.RowHeights[r.Key()] = grammar.DefaultHeight
		}
	}
	if col, ok := c.FullCol(); ok {
		if _, present := l.ColWidths[col.Key()]; !present {
			l.ColWidths[col.Key()] = grammar.DefaultWidth
		}
	}
}

// RowHeight reports the height of c's row band, defaulting when unseeded.
func (l Layout) RowHeight(c coord.Coordinate) float64 {
	if r, ok := c.FullRow(); ok {
		if h, present := l.RowHeights[r.Key()]; present {
			return h
		}
	}
	return grammar.DefaultHeight
}

// ColWidth reports the width of c's column band, defaulting when unseeded.
func (l Layout) ColWidth(c coord.Coordinate) float64 {
	if col, ok := c.FullCol(); ok {
		if w, present := l.ColWidths[col.Key()]; present {
			return w
		}
	}
	return grammar.DefaultWidth
}

// Resize sets c's bands to height and width plus one border, then grows
// every ancestor band by the same delta plus one border per level.
func (l Layout) Resize(c coord.Coordinate, height, width float64) {
	var dh, dw float64
	if r, ok := c.FullRow(); ok {
		l.Ensure(c)
		dh = height + borderPx - l.RowHeights[r.Key()]
		l.RowHeights[r.Key()] = height + borderPx
	}
	if col, ok := c.FullCol(); ok {
		dw = width + borderPx - l.ColWidths[col.Key()]
		l.ColWidths[col.Key()] = width + borderPx
	}
	for p, ok := c.Parent(); ok; p, ok = p.Parent() {
		l.Ensure(p)
		if r, ok := p.FullRow(); ok {
			l.RowHeights[r.Key()] += dh + borderPx
		}
		if col, ok := p.FullCol(); ok {
			l.ColWidths[col.Key()] += dw + borderPx
		}
	}
}

package session

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Korede-TA/ise/coord"
	"github.com/Korede-TA/ise/grammar"
)

// ErrInconsistent indicates a grammar map violating a structural invariant.
var ErrInconsistent = errors.New("session: inconsistent grammar map")

// Map is the authoritative coordinate-to-grammar association. Keys are
// printed coordinate strings; Coords re-derives the coordinates by parsing.
type Map map[string]grammar.Grammar

// Get reports the grammar stored at c, if any.
func (m Map) Get(c coord.Coordinate) (grammar.Grammar, bool) {
	g, ok := m[c.String()]
	return g, ok
}

// Set stores g at c, replacing any previous grammar.
func (m Map) Set(c coord.Coordinate, g grammar.Grammar) {
	m[c.String()] = g
}

// Has reports whether any grammar is stored at c.
func (m Map) Has(c coord.Coordinate) bool {
	_, ok := m[c.String()]
	return ok
}

// Delete removes the grammar at c. Removing an absent coordinate is a no-op.
func (m Map) Delete(c coord.Coordinate) {
	delete(m, c.String())
}

// Coords returns every stored coordinate in canonical order: lexicographic on
// fragment paths, ancestors before descendants.
func (m Map) Coords() []coord.Coordinate {
	cs := make([]coord.Coordinate, 0, len(m))
	for key := range m {
		cs = append(cs, coord.MustParse(key))
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].Compare(cs[j]) < 0 })
	return cs
}

// QueryParent returns the stored direct children of p, sorted row-major.
func (m Map) QueryParent(p coord.Coordinate) []coord.Coordinate {
	var cs []coord.Coordinate
	for _, c := range m.Coords() {
		if n, ok := p.IsNParent(c); ok && n == 1 {
			cs = append(cs, c)
		}
	}
	return cs
}

// QueryRow returns the stored cells lying in row band r, sorted by column.
func (m Map) QueryRow(r coord.Row) []coord.Coordinate {
	var cs []coord.Coordinate
	for _, c := range m.QueryParent(r.Parent) {
		if c.Row() == r.Index {
			cs = append(cs, c)
		}
	}
	return cs
}

// QueryCol returns the stored cells lying in column band col, sorted by row.
func (m Map) QueryCol(col coord.Col) []coord.Coordinate {
	var cs []coord.Coordinate
	for _, c := range m.QueryParent(col.Parent) {
		if c.Col() == col.Index {
			cs = append(cs, c)
		}
	}
	return cs
}

// Reconcile recomputes the Grid sub-coordinate index at parent from the
// children actually stored in the map, sorted row-major. A parent with
// children becomes (or stays) a Grid; name and style are preserved. A parent
// with no stored children is left untouched.
func (m Map) Reconcile(parent coord.Coordinate) {
	children := m.QueryParent(parent)
	if len(children) == 0 {
		return
	}
	subs := make([]coord.Fragment, len(children))
	for i, c := range children {
		subs[i] = c.Last()
	}
	g, ok := m.Get(parent)
	if !ok {
		g = grammar.Default()
	}
	g.Kind = grammar.Grid{SubCoords: subs}
	m.Set(parent, g)
}

// CheckConsistency verifies the structural invariants of the map: root and
// meta present, every Grid's sub-coordinates stored, and every nested cell's
// parent stored as a Grid listing the cell.
func (m Map) CheckConsistency() error {
	if !m.Has(coord.Root()) {
		return fmt.Errorf("%w: missing root", ErrInconsistent)
	}
	if !m.Has(coord.Meta()) {
		return fmt.Errorf("%w: missing meta", ErrInconsistent)
	}
	for _, c := range m.Coords() {
		g, _ := m.Get(c)
		if grid, ok := g.IsGrid(); ok {
			for _, f := range grid.SubCoords {
				if !m.Has(coord.ChildOf(c, f)) {
					return fmt.Errorf("%w: %s lists absent child (%d,%d)",
						ErrInconsistent, c, f.Row, f.Col)
				}
			}
		}
		p, ok := c.Parent()
		if !ok {
			continue
		}
		pg, ok := m.Get(p)
		if !ok {
			return fmt.Errorf("%w: %s has no parent entry", ErrInconsistent, c)
		}
		grid, ok := pg.IsGrid()
		if !ok {
			return fmt.Errorf("%w: parent of %s is not a grid", ErrInconsistent, c)
		}
		listed := false
		for _, f := range grid.SubCoords {
			if f == c.Last() {
				listed = true
				break
			}
		}
		if !listed {
			return fmt.Errorf("%w: parent of %s does not list it", ErrInconsistent, c)
		}
	}
	return nil
}

// Clone deep-copies the map; grammars are cloned so Grid indices are unshared.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for key, g := range m {
		out[key] = g.Clone()
	}
	return out
}

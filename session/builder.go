package session

import (
	"errors"

	"github.com/Korede-TA/ise/coord"
	"github.com/Korede-TA/ise/grammar"
)

// Builder errors.
var (
	// ErrEmptyTable indicates a table literal with no rows or no columns.
	ErrEmptyTable = errors.New("session: table must have at least one row and one column")
	// ErrRaggedTable indicates table rows of differing lengths.
	ErrRaggedTable = errors.New("session: table rows must be equal length")
)

// Entry is one node of a nested table literal: either a single Cell grammar
// or a rectangular Table of entries.
type Entry interface{ isEntry() }

// Cell is a leaf entry holding one grammar.
type Cell struct{ G grammar.Grammar }

// Table is a rectangular nesting of entries, rows outermost.
type Table struct{ Rows [][]Entry }

func (Cell) isEntry()  {}
func (Table) isEntry() {}

// Build inserts the entry tree rooted at coordinate at into m, row-major.
// Each Table produces a synthetic Grid grammar at its own coordinate, styled
// to span its children (cols x 90 wide, rows x 30 tall), with one child per
// sub-entry at the matching fragment. The map is untouched on error.
func Build(m Map, at coord.Coordinate, e Entry) error {
	staged := make(Map)
	if err := build(staged, at, e); err != nil {
		return err
	}
	for key, g := range staged {
		m[key] = g
	}
	return nil
}

func build(m Map, at coord.Coordinate, e Entry) error {
	switch v := e.(type) {
	case Cell:
		m.Set(at, v.G)
		return nil
	case Table:
		rows := uint32(len(v.Rows))
		if rows == 0 || len(v.Rows[0]) == 0 {
			return ErrEmptyTable
		}
		cols := uint32(len(v.Rows[0]))
		for _, row := range v.Rows {
			if uint32(len(row)) != cols {
				return ErrRaggedTable
			}
		}
		for r, row := range v.Rows {
			for c, sub := range row {
				frag := coord.Fragment{Row: uint32(r) + 1, Col: uint32(c) + 1}
				if err := build(m, coord.ChildOf(at, frag), sub); err != nil {
					return err
				}
			}
		}
		g, err := grammar.AsGrid(rows, cols)
		if err != nil {
			return err
		}
		g.Style.Width = grammar.DefaultWidth * float64(cols)
		g.Style.Height = grammar.DefaultHeight * float64(rows)
		m.Set(at, g)
	}
	return nil
}

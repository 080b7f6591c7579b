package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Korede-TA/ise/coord"
	"github.com/Korede-TA/ise/grammar"
	"github.com/Korede-TA/ise/session"
)

// keys flattens coordinates to their printed strings, in the given order.
func keys(cs []coord.Coordinate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// TestQueryParent verifies direct children come back row-major, and only
// direct ones: grandchildren are excluded.
func TestQueryParent(t *testing.T) {
	s := session.Default()
	m := s.Grammars
	nested, err := grammar.AsGrid(1, 1)
	require.NoError(t, err)
	m.Set(coord.MustParse("root-A1"), nested)
	m.Set(coord.MustParse("root-A1-A1"), grammar.Default())

	require.Equal(t,
		[]string{"root-A1", "root-B1", "root-A2", "root-B2", "root-A3", "root-B3"},
		keys(m.QueryParent(coord.Root())))
}

// TestQueryRowCol verifies band queries select on the last fragment only.
func TestQueryRowCol(t *testing.T) {
	s := session.Default()
	m := s.Grammars

	row, ok := coord.MustParse("root-A2").FullRow()
	require.True(t, ok)
	require.Equal(t, []string{"root-A2", "root-B2"}, keys(m.QueryRow(row)))

	col, ok := coord.MustParse("root-B1").FullCol()
	require.True(t, ok)
	require.Equal(t, []string{"root-B1", "root-B2", "root-B3"}, keys(m.QueryCol(col)))
}

// TestReconcile verifies the grid index is rebuilt from stored children and
// that a childless coordinate is left untouched.
func TestReconcile(t *testing.T) {
	s := session.Default()
	m := s.Grammars

	m.Set(coord.MustParse("root-C1"), grammar.Default())
	m.Set(coord.MustParse("root-C2"), grammar.Default())
	m.Set(coord.MustParse("root-C3"), grammar.Default())
	m.Reconcile(coord.Root())

	g, _ := m.Get(coord.Root())
	grid, ok := g.IsGrid()
	require.True(t, ok)
	require.Equal(t, []coord.Fragment{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
		{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3},
		{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	}, grid.SubCoords)
	require.NoError(t, m.CheckConsistency())

	leaf := coord.MustParse("root-A1")
	before, _ := m.Get(leaf)
	m.Reconcile(leaf)
	after, _ := m.Get(leaf)
	require.Equal(t, before, after)
}

// TestCheckConsistency covers the orphan and non-grid-parent violations.
func TestCheckConsistency(t *testing.T) {
	s := session.Default()
	m := s.Grammars.Clone()
	m.Set(coord.MustParse("root-A1-A1"), grammar.Default())
	require.ErrorIs(t, m.CheckConsistency(), session.ErrInconsistent)

	m = s.Grammars.Clone()
	m.Set(coord.MustParse("root-D9"), grammar.Default())
	require.ErrorIs(t, m.CheckConsistency(), session.ErrInconsistent)
}

// TestBuild verifies nested tables insert synthetic grids sized to span their
// children, and that ragged or empty literals are rejected without mutation.
func TestBuild(t *testing.T) {
	m := make(session.Map)
	err := session.Build(m, coord.Root(), session.Table{Rows: [][]session.Entry{
		{session.Cell{G: grammar.NewText("a", "x")}, session.Table{Rows: [][]session.Entry{
			{session.Cell{G: grammar.Default()}},
			{session.Cell{G: grammar.Default()}},
		}}},
	}})
	require.NoError(t, err)

	g, ok := m.Get(coord.Root())
	require.True(t, ok)
	require.Equal(t, 2*grammar.DefaultWidth, g.Style.Width)
	require.Equal(t, 1*grammar.DefaultHeight, g.Style.Height)

	g, ok = m.Get(coord.MustParse("root-B1"))
	require.True(t, ok)
	require.Equal(t, 2*grammar.DefaultHeight, g.Style.Height)
	require.True(t, m.Has(coord.MustParse("root-B1-A2")))

	//---//

	m = make(session.Map)
	err = session.Build(m, coord.Root(), session.Table{Rows: [][]session.Entry{
		{session.Cell{G: grammar.Default()}, session.Cell{G: grammar.Default()}},
		{session.Cell{G: grammar.Default()}},
	}})
	require.ErrorIs(t, err, session.ErrRaggedTable)
	require.Empty(t, m)

	err = session.Build(m, coord.Root(), session.Table{})
	require.ErrorIs(t, err, session.ErrEmptyTable)
	require.Empty(t, m)
}

package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Korede-TA/ise/coord"
	"github.com/Korede-TA/ise/grammar"
)

// TestDefault verifies the fresh-cell grammar is an empty Input with the
// default style.
func TestDefault(t *testing.T) {
	g := grammar.Default()
	require.Equal(t, grammar.Input{}, g.Kind)
	require.Empty(t, g.Name)
	require.Equal(t, grammar.DefaultStyle(), g.Style)
}

// TestAsGrid checks row-major sub-coordinate enumeration and the empty-grid error.
func TestAsGrid(t *testing.T) {
	g, err := grammar.AsGrid(2, 2)
	require.NoError(t, err)
	grid, ok := g.IsGrid()
	require.True(t, ok)
	require.Equal(t, []coord.Fragment{
		{Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 1}, {Row: 2, Col: 2},
	}, grid.SubCoords)

	_, err = grammar.AsGrid(0, 3)
	require.ErrorIs(t, err, grammar.ErrEmptyGrid)
	_, err = grammar.AsGrid(3, 0)
	require.ErrorIs(t, err, grammar.ErrEmptyGrid)
}

// TestNewSlider enforces min <= value <= max.
func TestNewSlider(t *testing.T) {
	s, err := grammar.NewSlider(5, 0, 10)
	require.NoError(t, err)
	require.Equal(t, grammar.Slider{Value: 5, Min: 0, Max: 10}, s)

	_, err = grammar.NewSlider(11, 0, 10)
	require.ErrorIs(t, err, grammar.ErrSliderRange)
	_, err = grammar.NewSlider(5, 10, 0)
	require.ErrorIs(t, err, grammar.ErrSliderRange)
}

// TestCSS_Grid pins the grid-template-areas emission: sorted (row, col),
// one quoted string per row, and the wrapper's own grid-area.
func TestCSS_Grid(t *testing.T) {
	g, err := grammar.AsGrid(2, 2)
	require.NoError(t, err)
	// Scramble the sub-coordinates; emission must sort them back.
	grid := g.Kind.(grammar.Grid)
	grid.SubCoords[0], grid.SubCoords[3] = grid.SubCoords[3], grid.SubCoords[0]
	g.Kind = grid

	css := g.CSS(coord.MustParse("root-A1"))
	require.Contains(t, css, "display: grid;")
	require.Contains(t, css, "grid-area: cell-root-A1;")
	require.Contains(t, css,
		"grid-template-areas: \n\"cell-root-A1-A1 cell-root-A1-B1\"\n\"cell-root-A1-A2 cell-root-A1-B2\";")
}

// TestCSS_Leaf verifies non-grid kinds emit the plain style plus grid-area.
func TestCSS_Leaf(t *testing.T) {
	g := grammar.NewText("label", "hello")
	css := g.CSS(coord.MustParse("root-B2"))
	require.Contains(t, css, "font-weight: 400;")
	require.Contains(t, css, "color: black;")
	require.Contains(t, css, "grid-area: cell-root-B2;")
	require.NotContains(t, css, "grid-template-areas")
}

// TestClone verifies Grid sub-coordinate slices are not shared with clones.
func TestClone(t *testing.T) {
	g, err := grammar.AsGrid(1, 2)
	require.NoError(t, err)
	c := g.Clone()
	cGrid := c.Kind.(grammar.Grid)
	cGrid.SubCoords[0] = coord.Fragment{Row: 9, Col: 9}
	require.Equal(t, coord.Fragment{Row: 1, Col: 1}, g.Kind.(grammar.Grid).SubCoords[0])
}

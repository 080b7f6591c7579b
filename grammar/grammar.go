package grammar

import (
	"errors"

	"github.com/Korede-TA/ise/coord"
)

// Sentinel errors for grammar construction.
var (
	// ErrSliderRange indicates a slider whose value lies outside [min, max].
	ErrSliderRange = errors.New("grammar: slider value outside [min, max]")
	// ErrEmptyGrid indicates a grid constructed with zero rows or columns.
	ErrEmptyGrid = errors.New("grammar: grid must have at least one row and one column")
)

// Grammar is the content of one cell: a semantic name (also used as the
// display label), a presentation style, and a tagged kind.
type Grammar struct {
	Name  string
	Style Style
	Kind  Kind
}

// Kind is the closed sum of cell payloads. Implementations are Text, Input,
// Interactive, and Grid; no other type satisfies it.
type Kind interface{ isKind() }

// Text is a read-only text payload.
type Text struct{ Value string }

// Input is an editable text payload.
type Input struct{ Value string }

// Interactive is a named interactive control.
type Interactive struct {
	Name    string
	Control Control
}

// Grid nests a grid of child grammars. SubCoords lists the local fragments of
// the children that exist, kept sorted row-major; the grammar map is the
// authoritative record, SubCoords is its derived ordering index.
type Grid struct{ SubCoords []coord.Fragment }

func (Text) isKind()        {}
func (Input) isKind()       {}
func (Interactive) isKind() {}
func (Grid) isKind()        {}

// Control is the closed sum of interactive controls.
type Control interface{ isControl() }

// Button is a momentary push control.
type Button struct{}

// Slider is a bounded numeric control with Min <= Value <= Max.
type Slider struct{ Value, Min, Max float64 }

// Toggle is a boolean switch control.
type Toggle struct{ On bool }

func (Button) isControl() {}
func (Slider) isControl() {}
func (Toggle) isControl() {}

// Default returns the grammar every fresh cell starts with:
// an unnamed, default-styled, empty Input.
func Default() Grammar {
	return Grammar{Style: DefaultStyle(), Kind: Input{}}
}

// NewText builds a read-only text grammar.
func NewText(name, value string) Grammar {
	return Grammar{Name: name, Style: DefaultStyle(), Kind: Text{Value: value}}
}

// NewInput builds an editable text grammar.
func NewInput(name, value string) Grammar {
	return Grammar{Name: name, Style: DefaultStyle(), Kind: Input{Value: value}}
}

// Suggestion builds the read-only grammar a completion list displays:
// the alias names it, the value is shown as text.
func Suggestion(alias, value string) Grammar {
	return NewText(alias, value)
}

// NewSlider validates the slider bounds and builds its control.
func NewSlider(value, min, max float64) (Slider, error) {
	if value < min || value > max || min > max {
		return Slider{}, ErrSliderRange
	}
	return Slider{Value: value, Min: min, Max: max}, nil
}

// DefaultButton returns the button template grammar.
func DefaultButton() Grammar {
	return Grammar{Name: "button", Style: DefaultStyle(), Kind: Interactive{Control: Button{}}}
}

// DefaultSlider returns the slider template grammar, spanning [0, 100] at 0.
func DefaultSlider() Grammar {
	return Grammar{Name: "slider", Style: DefaultStyle(), Kind: Interactive{Control: Slider{Min: 0, Max: 100}}}
}

// DefaultToggle returns the toggle template grammar, initially off.
func DefaultToggle() Grammar {
	return Grammar{Name: "toggle", Style: DefaultStyle(), Kind: Interactive{Control: Toggle{}}}
}

// AsGrid builds an unnamed Grid grammar whose sub-coordinates enumerate
// {(r,c) | 1<=r<=rows, 1<=c<=cols} in row-major order.
// Returns ErrEmptyGrid when either dimension is zero.
func AsGrid(rows, cols uint32) (Grammar, error) {
	if rows == 0 || cols == 0 {
		return Grammar{}, ErrEmptyGrid
	}
	subs := make([]coord.Fragment, 0, rows*cols)
	for r := uint32(1); r <= rows; r++ {
		for c := uint32(1); c <= cols; c++ {
			subs = append(subs, coord.Fragment{Row: r, Col: c})
		}
	}
	return Grammar{Style: DefaultStyle(), Kind: Grid{SubCoords: subs}}, nil
}

// IsGrid reports the Grid payload of g, if any.
func (g Grammar) IsGrid() (Grid, bool) {
	grid, ok := g.Kind.(Grid)
	return grid, ok
}

// Clone deep-copies the grammar; Grid sub-coordinate slices are not shared.
func (g Grammar) Clone() Grammar {
	if grid, ok := g.Kind.(Grid); ok {
		subs := make([]coord.Fragment, len(grid.SubCoords))
		copy(subs, grid.SubCoords)
		g.Kind = Grid{SubCoords: subs}
	}
	return g
}

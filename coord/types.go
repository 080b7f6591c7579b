package coord

import (
	"errors"
	"strconv"
)

// Sentinel errors for coordinate operations.
var (
	// ErrZeroIndex indicates a row or column index of zero; indices are 1-based.
	ErrZeroIndex = errors.New("coord: row and column indices must be >= 1")
	// ErrParse indicates a string that does not match the printed coordinate form.
	ErrParse = errors.New("coord: malformed coordinate string")
	// ErrTruncate indicates a requested prefix longer than the coordinate itself.
	ErrTruncate = errors.New("coord: truncation length exceeds coordinate depth")
)

// Fragment is a single (row, column) step of a coordinate path.
// Both indices are strictly positive; the zero Fragment is invalid.
type Fragment struct {
	Row uint32
	Col uint32
}

// NewFragment validates and builds a Fragment. Returns ErrZeroIndex unless
// both indices are >= 1, so no downstream code needs to defend against zero.
func NewFragment(row, col uint32) (Fragment, error) {
	if row == 0 || col == 0 {
		return Fragment{}, ErrZeroIndex
	}
	return Fragment{Row: row, Col: col}, nil
}

// MustFragment builds a Fragment and panics on a zero index.
// Intended for literals in tests and static tables only.
func MustFragment(row, col uint32) Fragment {
	f, err := NewFragment(row, col)
	if err != nil {
		panic(err)
	}
	return f
}

// Compare orders fragments by row, then column.
func (f Fragment) Compare(other Fragment) int {
	if f.Row != other.Row {
		if f.Row < other.Row {
			return -1
		}
		return 1
	}
	if f.Col != other.Col {
		if f.Col < other.Col {
			return -1
		}
		return 1
	}
	return 0
}

// Row identifies a row band: all cells sharing a parent grid and a row index.
type Row struct {
	Parent Coordinate
	Index  uint32
}

// Key renders the band identifier used as a layout-table key,
// e.g. "root-A1-B2-3" for row 3 inside the grid at root-A1-B2.
func (r Row) Key() string {
	return r.Parent.String() + "-" + strconv.FormatUint(uint64(r.Index), 10)
}

// Col identifies a column band: all cells sharing a parent grid and a column index.
type Col struct {
	Parent Coordinate
	Index  uint32
}

// Key renders the band identifier used as a layout-table key,
// e.g. "root-A1-B2-C" for column 3 inside the grid at root-A1-B2.
func (c Col) Key() string {
	return c.Parent.String() + "-" + colLetters(c.Index)
}

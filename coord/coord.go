package coord

// Coordinate is an immutable, non-empty path of fragments addressing a cell
// at any nesting depth. The zero Coordinate is invalid; construct via Root,
// Meta, ChildOf, or Parse.
type Coordinate struct {
	frags []Fragment
}

// Root returns the coordinate of the root tree, fragment path [(1,1)].
func Root() Coordinate {
	return Coordinate{frags: []Fragment{{Row: 1, Col: 1}}}
}

// Meta returns the coordinate of the meta tree, fragment path [(1,2)].
func Meta() Coordinate {
	return Coordinate{frags: []Fragment{{Row: 1, Col: 2}}}
}

// ChildOf returns the coordinate of the child cell addressed by frag inside
// the grid at parent. The parent path is copied; neither value is mutated.
func ChildOf(parent Coordinate, frag Fragment) Coordinate {
	fs := make([]Fragment, len(parent.frags)+1)
	copy(fs, parent.frags)
	fs[len(parent.frags)] = frag
	return Coordinate{frags: fs}
}

// Depth reports the number of fragments in the path.
func (c Coordinate) Depth() int { return len(c.frags) }

// IsZero reports whether c was never constructed.
func (c Coordinate) IsZero() bool { return len(c.frags) == 0 }

// Fragments returns a copy of the fragment path.
func (c Coordinate) Fragments() []Fragment {
	fs := make([]Fragment, len(c.frags))
	copy(fs, c.frags)
	return fs
}

// Last returns the final fragment of the path.
func (c Coordinate) Last() Fragment { return c.frags[len(c.frags)-1] }

// Parent drops the last fragment. ok is false on a length-1 coordinate
// (root and meta have no parent).
func (c Coordinate) Parent() (Coordinate, bool) {
	if len(c.frags) <= 1 {
		return Coordinate{}, false
	}
	return Coordinate{frags: c.frags[:len(c.frags)-1]}, true
}

// Truncate returns the prefix of length n.
// Returns ErrTruncate when n exceeds the coordinate depth or is zero.
func (c Coordinate) Truncate(n int) (Coordinate, error) {
	if n < 1 || n > len(c.frags) {
		return Coordinate{}, ErrTruncate
	}
	return Coordinate{frags: c.frags[:n]}, nil
}

// Row returns the row index of the last fragment.
func (c Coordinate) Row() uint32 { return c.Last().Row }

// Col returns the column index of the last fragment.
func (c Coordinate) Col() uint32 { return c.Last().Col }

// FullRow identifies the row band this cell belongs to.
// ok is false on root/meta, which sit in no band.
func (c Coordinate) FullRow() (Row, bool) {
	p, ok := c.Parent()
	if !ok {
		return Row{}, false
	}
	return Row{Parent: p, Index: c.Row()}, true
}

// FullCol identifies the column band this cell belongs to.
// ok is false on root/meta.
func (c Coordinate) FullCol() (Col, bool) {
	p, ok := c.Parent()
	if !ok {
		return Col{}, false
	}
	return Col{Parent: p, Index: c.Col()}, true
}

// Above returns the coordinate one row up within the same grid.
// ok is false when the row index is already 1.
func (c Coordinate) Above() (Coordinate, bool) {
	if c.Row() <= 1 {
		return Coordinate{}, false
	}
	return c.withLast(Fragment{Row: c.Row() - 1, Col: c.Col()}), true
}

// Below returns the coordinate one row down within the same grid.
// It always succeeds; the result need not exist in any grammar map.
func (c Coordinate) Below() Coordinate {
	return c.withLast(Fragment{Row: c.Row() + 1, Col: c.Col()})
}

// Left returns the coordinate one column left within the same grid.
// ok is false when the column index is already 1.
func (c Coordinate) Left() (Coordinate, bool) {
	if c.Col() <= 1 {
		return Coordinate{}, false
	}
	return c.withLast(Fragment{Row: c.Row(), Col: c.Col() - 1}), true
}

// Right returns the coordinate one column right within the same grid.
// It always succeeds; the result need not exist in any grammar map.
func (c Coordinate) Right() Coordinate {
	return c.withLast(Fragment{Row: c.Row(), Col: c.Col() + 1})
}

// withLast copies the path with the final fragment replaced.
func (c Coordinate) withLast(f Fragment) Coordinate {
	fs := make([]Fragment, len(c.frags))
	copy(fs, c.frags)
	fs[len(fs)-1] = f
	return Coordinate{frags: fs}
}

// IsNParent reports whether c is an ancestor-or-self of other, i.e. whether
// c's fragment path is a prefix of other's. On success n is the generation
// distance: 0 when the coordinates are equal, 1 for a direct child, and so on.
func (c Coordinate) IsNParent(other Coordinate) (n int, ok bool) {
	if len(c.frags) > len(other.frags) {
		return 0, false
	}
	for i, f := range c.frags {
		if f != other.frags[i] {
			return 0, false
		}
	}
	return len(other.frags) - len(c.frags), true
}

// Equal reports element-wise equality of the fragment paths.
func (c Coordinate) Equal(other Coordinate) bool {
	if len(c.frags) != len(other.frags) {
		return false
	}
	for i, f := range c.frags {
		if f != other.frags[i] {
			return false
		}
	}
	return true
}

// Compare orders coordinates lexicographically on fragments; a strict prefix
// sorts before its extensions.
func (c Coordinate) Compare(other Coordinate) int {
	for i := 0; i < len(c.frags) && i < len(other.frags); i++ {
		if d := c.frags[i].Compare(other.frags[i]); d != 0 {
			return d
		}
	}
	switch {
	case len(c.frags) < len(other.frags):
		return -1
	case len(c.frags) > len(other.frags):
		return 1
	default:
		return 0
	}
}

package coord

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	rootToken = "root"
	metaToken = "meta"
)

// String renders the canonical printed form, e.g. "root-A1-B2-B3".
// The head fragment prints as "root" or "meta"; every further fragment as
// "-<ColLetters><RowNumber>".
func (c Coordinate) String() string {
	var b strings.Builder
	switch c.frags[0] {
	case Fragment{Row: 1, Col: 1}:
		b.WriteString(rootToken)
	case Fragment{Row: 1, Col: 2}:
		b.WriteString(metaToken)
	default:
		// Unreachable for coordinates built through this package.
		b.WriteString(fmt.Sprintf("?%d,%d", c.frags[0].Row, c.frags[0].Col))
	}
	for _, f := range c.frags[1:] {
		b.WriteByte('-')
		b.WriteString(colLetters(f.Col))
		b.WriteString(strconv.FormatUint(uint64(f.Row), 10))
	}
	return b.String()
}

// RowString renders the printed row band of this cell,
// e.g. "root-A1-B2-3" for root-A1-B2-B3, or "1" for root/meta themselves.
func (c Coordinate) RowString() string {
	if p, ok := c.Parent(); ok {
		return p.String() + "-" + strconv.FormatUint(uint64(c.Row()), 10)
	}
	return strconv.FormatUint(uint64(c.Row()), 10)
}

// ColString renders the printed column band of this cell,
// e.g. "root-A1-B2-B" for root-A1-B2-B3, or "A" for root.
func (c Coordinate) ColString() string {
	if p, ok := c.Parent(); ok {
		return p.String() + "-" + colLetters(c.Col())
	}
	return colLetters(c.Col())
}

// colLetters converts a 1-based column index to bijective base-26 letters:
// 1→A, 26→Z, 27→AA, 28→AB.
func colLetters(n uint32) string {
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}

// parseColLetters is the inverse of colLetters. ok is false on an empty
// string or any non-uppercase-letter rune.
func parseColLetters(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	var n uint32
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < 'A' || ch > 'Z' {
			return 0, false
		}
		n = n*26 + uint32(ch-'A'+1)
	}
	return n, true
}

// Parse recovers a Coordinate from its printed form. It is total on
// well-formed strings and the exact inverse of String; anything else fails
// with an error wrapping ErrParse.
func Parse(s string) (Coordinate, error) {
	parts := strings.Split(s, "-")
	var c Coordinate
	switch parts[0] {
	case rootToken:
		c = Root()
	case metaToken:
		c = Meta()
	default:
		return Coordinate{}, fmt.Errorf("%w: %q must begin with %q or %q", ErrParse, s, rootToken, metaToken)
	}
	for _, part := range parts[1:] {
		f, err := parseFragment(part)
		if err != nil {
			return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
		}
		c = ChildOf(c, f)
	}
	return c, nil
}

// MustParse parses a coordinate literal and panics on malformed input.
// Intended for static tables and tests.
func MustParse(s string) Coordinate {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseFragment decodes one "<ColLetters><RowNumber>" token.
func parseFragment(s string) (Fragment, error) {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	col, ok := parseColLetters(s[:i])
	if !ok {
		return Fragment{}, fmt.Errorf("fragment %q has no column letters", s)
	}
	row64, err := strconv.ParseUint(s[i:], 10, 32)
	if err != nil {
		return Fragment{}, fmt.Errorf("fragment %q has no row number", s)
	}
	return NewFragment(uint32(row64), col)
}

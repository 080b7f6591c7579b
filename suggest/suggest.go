package suggest

import (
	"github.com/Korede-TA/ise/coord"
	"github.com/Korede-TA/ise/grammar"
	"github.com/Korede-TA/ise/session"
)

// Reserved grammar names recognised in the meta tree.
const (
	// DefnName labels the cell holding a definition's own name.
	DefnName = "defn_name"
	// DefnSubruleName labels the name side of a defn row.
	DefnSubruleName = "defn_subrule_name"
	// DefnSubruleGrammar labels the body side of a defn row.
	DefnSubruleGrammar = "defn_subrule_grammar"
)

// VariantCoord and RepetitionCoord fix where the structural primitives live
// in the meta tree.
var (
	VariantCoord    = coord.MustParse("meta-A4")
	RepetitionCoord = coord.MustParse("meta-A5")
)

// Suggestion is one completion candidate: a source coordinate in the meta
// tree (or a sibling) and the grammar stored there.
type Suggestion struct {
	Coord   coord.Coordinate
	Grammar grammar.Grammar
}

// For computes the ordered completion candidates for the cell at c.
//
// Name and rule-body cells get special handling as described in the package
// comment; cells below the body column of a defn grid are offered the
// grid's rule names; everything else is offered column A of the meta tree.
// A coordinate with no stored grammar gets nothing.
func For(m session.Map, c coord.Coordinate) []Suggestion {
	g, ok := m.Get(c)
	if !ok {
		return nil
	}
	switch {
	case g.Name == DefnName || g.Name == DefnSubruleName:
		return nil
	case g.Name == DefnSubruleGrammar || isRuleBody(c):
		var out []Suggestion
		for _, p := range []coord.Coordinate{VariantCoord, RepetitionCoord} {
			if pg, ok := m.Get(p); ok {
				out = append(out, Suggestion{Coord: p, Grammar: pg})
			}
		}
		if left, ok := c.Left(); ok {
			if band, ok := left.FullCol(); ok {
				for _, sib := range m.QueryCol(band) {
					if sib.Equal(c) {
						continue
					}
					sg, _ := m.Get(sib)
					out = append(out, Suggestion{Coord: sib, Grammar: sg})
				}
			}
		}
		return out
	default:
		if inDefnBody(c) {
			if subs := SubruleSuggestions(m, c); len(subs) > 0 {
				return subs
			}
		}
		var out []Suggestion
		for _, child := range m.QueryParent(coord.Meta()) {
			if child.Col() != 1 {
				continue
			}
			cg, _ := m.Get(child)
			out = append(out, Suggestion{Coord: child, Grammar: cg})
		}
		return out
	}
}

// inDefnBody reports whether c lies below the body column of a defn grid:
// four or more fragments deep with its 3-prefix in column 2. It holds both
// for meta originals and for their completed copies in the root tree.
func inDefnBody(c coord.Coordinate) bool {
	if c.Depth() < 4 {
		return false
	}
	prefix, err := c.Truncate(3)
	if err != nil {
		return false
	}
	return prefix.Col() == 2
}

// isRuleBody reports whether c sits exactly two levels below the meta root.
func isRuleBody(c coord.Coordinate) bool {
	n, ok := coord.Meta().IsNParent(c)
	return ok && n == 2
}

// ShouldTransform reports whether a grammar copied from src during completion
// is inside the body side of a defn row: three or more levels below the meta
// root, with its 3-prefix in column 2. Such grammars are rewritten to an
// empty Input on copy, and their suggestions come from SubruleSuggestions.
func ShouldTransform(src coord.Coordinate) bool {
	n, ok := coord.Meta().IsNParent(src)
	if !ok || n < 3 {
		return false
	}
	prefix, err := src.Truncate(3)
	if err != nil {
		return false
	}
	return prefix.Col() == 2
}

// SubruleSuggestions lists the rule-name cells of the defn grid enclosing c:
// the column-1 children of c's 2-prefix carrying the DefnSubruleName label.
// A transformed body cell offers these instead of its ordinary suggestions.
func SubruleSuggestions(m session.Map, c coord.Coordinate) []Suggestion {
	defnRoot, err := c.Truncate(2)
	if err != nil {
		return nil
	}
	var out []Suggestion
	for _, sib := range m.QueryCol(coord.Col{Parent: defnRoot, Index: 1}) {
		sg, _ := m.Get(sib)
		if sg.Name == DefnSubruleName {
			out = append(out, Suggestion{Coord: sib, Grammar: sg})
		}
	}
	return out
}

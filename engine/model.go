package engine

import (
	"fmt"
	"strings"

	"github.com/Korede-TA/ise/coord"
	"github.com/Korede-TA/ise/grammar"
	"github.com/Korede-TA/ise/session"
	"github.com/Korede-TA/ise/suggest"
)

// Model is the top-level editor state: the session, the layout tables, and
// the transient UI state actions manipulate. It is owned by a single event
// loop; Apply must not be called concurrently.
type Model struct {
	Session     session.Session
	Layout      Layout
	ActiveCell  coord.Coordinate
	Suggestions []suggest.Suggestion
	SideMenu    *int
	CurrentTab  int
	LastAlert   string

	alertFn func(string)
	saveFn  func([]byte) error
}

// Option configures a Model at construction.
type Option func(*Model)

// WithSession starts the model from an existing session instead of the
// default one.
func WithSession(s session.Session) Option {
	return func(m *Model) { m.Session = s }
}

// WithAlertFunc routes alert messages to fn in addition to LastAlert.
func WithAlertFunc(fn func(string)) Option {
	return func(m *Model) { m.alertFn = fn }
}

// WithSaveFunc supplies the sink SaveSession writes the encoded session to.
func WithSaveFunc(fn func([]byte) error) Option {
	return func(m *Model) { m.saveFn = fn }
}

// New builds a model around the default session, layout tables seeded for
// every cell, with the first root cell active.
func New(opts ...Option) *Model {
	m := &Model{
		Session: session.Default(),
		Layout:  NewLayout(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Layout.Seed(m.Session.Grammars)
	m.ActiveCell = coord.ChildOf(coord.Root(), coord.Fragment{Row: 1, Col: 1})
	return m
}

// Apply processes one action atomically and reports whether the model
// changed in a way observers should re-render. Actions whose precondition
// fails are silent no-ops.
func (m *Model) Apply(a Action) bool {
	switch v := a.(type) {
	case Noop:
		return false
	case Alert:
		m.alert(v.Msg)
		return true
	case ChangeInput:
		return m.changeInput(v.Coord, v.Value)
	case ShowSuggestions:
		return m.showSuggestions(v.Coord, v.Query)
	case SetActiveCell:
		return m.setActiveCell(v.Coord)
	case DoCompletion:
		return m.doCompletion(v.Source, v.Dest)
	case SetActiveMenu:
		m.SideMenu = v.Menu
		return true
	case SetSessionTitle:
		m.Session.Title = v.Title
		return true
	case LoadSession:
		return m.loadSession(v.Data)
	case SaveSession:
		return m.saveSession()
	case AddNestedGrid:
		return m.addNestedGrid(v.Coord, v.Rows, v.Cols)
	case InsertRow:
		return m.insertRow()
	case InsertCol:
		return m.insertCol()
	default:
		return false
	}
}

func (m *Model) alert(msg string) {
	m.LastAlert = msg
	if m.alertFn != nil {
		m.alertFn(msg)
	}
}

// changeInput rewrites the textual value of a Text or Input cell in kind.
// Other kinds, and absent coordinates, are untouched.
func (m *Model) changeInput(c coord.Coordinate, value string) bool {
	g, ok := m.Session.Grammars.Get(c)
	if !ok {
		return false
	}
	switch g.Kind.(type) {
	case grammar.Text:
		g.Kind = grammar.Text{Value: value}
	case grammar.Input:
		g.Kind = grammar.Input{Value: value}
	default:
		return false
	}
	m.Session.Grammars.Set(c, g)
	m.Session.Sync()
	return true
}

// showSuggestions rebuilds the suggestion list for c, keeping candidates
// whose name starts with query (case-insensitive).
func (m *Model) showSuggestions(c coord.Coordinate, query string) bool {
	all := suggest.For(m.Session.Grammars, c)
	if query == "" {
		m.Suggestions = all
		return true
	}
	q := strings.ToLower(query)
	kept := all[:0]
	for _, s := range all {
		if strings.HasPrefix(strings.ToLower(s.Grammar.Name), q) {
			kept = append(kept, s)
		}
	}
	m.Suggestions = kept
	return true
}

func (m *Model) setActiveCell(c coord.Coordinate) bool {
	if !m.Session.Grammars.Has(c) {
		return false
	}
	m.ActiveCell = c
	m.Suggestions = suggest.For(m.Session.Grammars, c)
	return true
}

// addNestedGrid replaces the cell at c with a rows x cols grid of default
// cells, seeds layout entries for the new bands, and focuses the first
// child.
func (m *Model) addNestedGrid(c coord.Coordinate, rows, cols uint32) bool {
	old, ok := m.Session.Grammars.Get(c)
	if !ok {
		return false
	}
	g, err := grammar.AsGrid(rows, cols)
	if err != nil {
		return false
	}
	g.Name = old.Name
	g.Style = old.Style
	g.Style.Width = float64(cols) * grammar.DefaultWidth
	g.Style.Height = float64(rows) * grammar.DefaultHeight
	m.Session.Grammars.Set(c, g)

	grid, _ := g.IsGrid()
	for _, f := range grid.SubCoords {
		child := coord.ChildOf(c, f)
		m.Session.Grammars.Set(child, grammar.Default())
		m.Layout.Ensure(child)
	}
	if p, ok := c.Parent(); ok {
		m.Session.Grammars.Reconcile(p)
	}
	m.Layout.Resize(c, float64(rows)*grammar.DefaultHeight, float64(cols)*grammar.DefaultWidth)
	m.ActiveCell = coord.ChildOf(c, coord.Fragment{Row: 1, Col: 1})
	m.Session.Sync()
	return true
}

// insertRow appends one row of default cells below the bottom-most stored
// row of the active cell's grid.
func (m *Model) insertRow() bool {
	a := m.ActiveCell
	parent, ok := a.Parent()
	if !ok || !m.Session.Grammars.Has(a) {
		return false
	}
	bottom := a
	for m.Session.Grammars.Has(bottom.Below()) {
		bottom = bottom.Below()
	}
	band, _ := bottom.FullRow()
	newRow := bottom.Row() + 1
	for _, k := range m.Session.Grammars.QueryRow(band) {
		nc := coord.ChildOf(parent, coord.Fragment{Row: newRow, Col: k.Col()})
		m.Session.Grammars.Set(nc, grammar.Default())
		m.Layout.Ensure(nc)
	}
	m.Session.Grammars.Reconcile(parent)
	m.Session.Sync()
	return true
}

// insertCol appends one column of default cells right of the right-most
// stored column of the active cell's grid.
func (m *Model) insertCol() bool {
	a := m.ActiveCell
	parent, ok := a.Parent()
	if !ok || !m.Session.Grammars.Has(a) {
		return false
	}
	rightmost := a
	for m.Session.Grammars.Has(rightmost.Right()) {
		rightmost = rightmost.Right()
	}
	band, _ := rightmost.FullCol()
	newCol := rightmost.Col() + 1
	for _, k := range m.Session.Grammars.QueryCol(band) {
		nc := coord.ChildOf(parent, coord.Fragment{Row: k.Row(), Col: newCol})
		m.Session.Grammars.Set(nc, grammar.Default())
		m.Layout.Ensure(nc)
	}
	m.Session.Grammars.Reconcile(parent)
	m.Session.Sync()
	return true
}

// doCompletion copies the subtree at src onto dst, transforming defn body
// grammars to empty inputs, then reflows the layout under dst.
func (m *Model) doCompletion(src, dst coord.Coordinate) bool {
	if !m.Session.Grammars.Has(src) || !m.Session.Grammars.Has(dst) {
		return false
	}
	m.copySubtree(src, dst)
	m.resizeCells(dst)
	m.Session.Sync()
	return true
}

func (m *Model) copySubtree(src, dst coord.Coordinate) {
	g, ok := m.Session.Grammars.Get(src)
	if !ok {
		return
	}
	g = g.Clone()
	if suggest.ShouldTransform(src) {
		g.Kind = grammar.Input{}
	}
	m.Session.Grammars.Set(dst, g)
	if grid, ok := g.IsGrid(); ok {
		for _, f := range grid.SubCoords {
			m.copySubtree(coord.ChildOf(src, f), coord.ChildOf(dst, f))
		}
	}
}

// resizeCells recomputes band sizes for c and its descendants bottom-up
// from the grammar subtree just materialised.
func (m *Model) resizeCells(c coord.Coordinate) {
	children := m.Session.Grammars.QueryParent(c)
	if len(children) == 0 {
		g, _ := m.Session.Grammars.Get(c)
		m.Layout.Resize(c, g.Style.Height, g.Style.Width)
		return
	}
	for _, ch := range children {
		m.resizeCells(ch)
	}
	seenRows := make(map[uint32]bool)
	seenCols := make(map[uint32]bool)
	var height, width float64
	for _, ch := range children {
		if !seenRows[ch.Row()] {
			seenRows[ch.Row()] = true
			height += m.Layout.RowHeight(ch)
		}
		if !seenCols[ch.Col()] {
			seenCols[ch.Col()] = true
			width += m.Layout.ColWidth(ch)
		}
	}
	m.Layout.Resize(c, height, width)
}

// loadSession replaces the session wholesale, reseeding layout and focus.
// Decode failures leave the model untouched and raise an alert.
func (m *Model) loadSession(data []byte) bool {
	s, err := session.Decode(data)
	if err != nil {
		m.alert(fmt.Sprintf("could not load session: %v", err))
		return false
	}
	m.Session = s
	m.Layout = NewLayout()
	m.Layout.Seed(m.Session.Grammars)
	m.ActiveCell = coord.ChildOf(coord.Root(), coord.Fragment{Row: 1, Col: 1})
	m.Suggestions = nil
	return true
}

// saveSession encodes the session into the configured save sink. The model
// itself never changes.
func (m *Model) saveSession() bool {
	if m.saveFn == nil {
		return false
	}
	data, err := m.Session.Encode()
	if err != nil {
		m.alert(fmt.Sprintf("could not save session: %v", err))
		return false
	}
	if err := m.saveFn(data); err != nil {
		m.alert(fmt.Sprintf("could not save session: %v", err))
	}
	return false
}
package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Korede-TA/ise/coord"
	"github.com/Korede-TA/ise/engine"
	"github.com/Korede-TA/ise/grammar"
	"github.com/Korede-TA/ise/session"
)

// EngineSuite drives the mutation engine through the editing flows a user
// performs, checking map and layout invariants after each one.
type EngineSuite struct {
	suite.Suite
	m *engine.Model
}

func (s *EngineSuite) SetupTest() {
	s.m = engine.New()
}

// requireConsistent asserts the structural invariants plus layout coverage:
// every nested coordinate has row and column band entries.
func (s *EngineSuite) requireConsistent() {
	s.Require().NoError(s.m.Session.Grammars.CheckConsistency())
	for _, c := range s.m.Session.Grammars.Coords() {
		r, ok := c.FullRow()
		if !ok {
			continue
		}
		s.Require().Contains(s.m.Layout.RowHeights, r.Key(), c.String())
		col, _ := c.FullCol()
		s.Require().Contains(s.m.Layout.ColWidths, col.Key(), c.String())
	}
}

//---// nested grids //---//

// TestAddNestedGrid nests a 2x2 grid into root-B2 and checks the grid kind,
// the default children, the focus move, and the inflated bands.
func (s *EngineSuite) TestAddNestedGrid() {
	target := coord.MustParse("root-B2")
	s.Require().True(s.m.Apply(engine.SetActiveCell{Coord: target}))
	s.Require().True(s.m.Apply(engine.AddNestedGrid{Coord: target, Rows: 2, Cols: 2}))

	g, ok := s.m.Session.Grammars.Get(target)
	s.Require().True(ok)
	grid, ok := g.IsGrid()
	s.Require().True(ok)
	s.Require().Equal([]coord.Fragment{
		{Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 1}, {Row: 2, Col: 2},
	}, grid.SubCoords)

	for _, child := range []string{"root-B2-A1", "root-B2-B1", "root-B2-A2", "root-B2-B2"} {
		cg, ok := s.m.Session.Grammars.Get(coord.MustParse(child))
		s.Require().True(ok, child)
		s.Require().Equal(grammar.Default(), cg)
	}
	s.Require().Equal("root-B2-A1", s.m.ActiveCell.String())

	row, _ := target.FullRow()
	col, _ := target.FullCol()
	s.Require().GreaterOrEqual(s.m.Layout.RowHeights[row.Key()], 60.0)
	s.Require().GreaterOrEqual(s.m.Layout.ColWidths[col.Key()], 180.0)
	s.requireConsistent()
}

// TestAddNestedGrid_Preconditions verifies absent targets and degenerate
// dimensions are silent no-ops.
func (s *EngineSuite) TestAddNestedGrid_Preconditions() {
	s.Require().False(s.m.Apply(engine.AddNestedGrid{Coord: coord.MustParse("root-D9"), Rows: 2, Cols: 2}))
	s.Require().False(s.m.Apply(engine.AddNestedGrid{Coord: coord.MustParse("root-A1"), Rows: 0, Cols: 2}))
	s.requireConsistent()
}

//---// row and column insertion //---//

// TestInsertRow appends a fourth row to the root grid from the default
// active cell.
func (s *EngineSuite) TestInsertRow() {
	s.Require().True(s.m.Apply(engine.InsertRow{}))

	for _, c := range []string{"root-A4", "root-B4"} {
		g, ok := s.m.Session.Grammars.Get(coord.MustParse(c))
		s.Require().True(ok, c)
		s.Require().Equal(grammar.Default(), g)
	}
	root, _ := s.m.Session.Grammars.Get(coord.Root())
	grid, _ := root.IsGrid()
	s.Require().Contains(grid.SubCoords, coord.Fragment{Row: 4, Col: 1})
	s.Require().Contains(grid.SubCoords, coord.Fragment{Row: 4, Col: 2})
	s.requireConsistent()
}

// TestInsertCol appends a third column to the root grid.
func (s *EngineSuite) TestInsertCol() {
	s.Require().True(s.m.Apply(engine.InsertCol{}))

	for _, c := range []string{"root-C1", "root-C2", "root-C3"} {
		s.Require().True(s.m.Session.Grammars.Has(coord.MustParse(c)), c)
	}
	s.requireConsistent()
}

// TestInsertRow_TopLevelActive verifies inserting with the root itself
// active is a no-op.
func (s *EngineSuite) TestInsertRow_TopLevelActive() {
	s.m.ActiveCell = coord.Root()
	s.Require().False(s.m.Apply(engine.InsertRow{}))
	s.Require().False(s.m.Apply(engine.InsertCol{}))
	s.requireConsistent()
}

//---// completion //---//

// TestDoCompletion copies a meta grid of two text cells onto root-A1 and
// expects the subtree reproduced shape-for-shape.
func (s *EngineSuite) TestDoCompletion() {
	m := s.m.Session.Grammars
	g, err := grammar.AsGrid(1, 2)
	s.Require().NoError(err)
	m.Set(coord.MustParse("meta-A1"), g)
	m.Set(coord.MustParse("meta-A1-A1"), grammar.NewText("", "hello"))
	m.Set(coord.MustParse("meta-A1-B1"), grammar.NewText("", "world"))
	s.m.Layout.Seed(m)

	s.Require().True(s.m.Apply(engine.DoCompletion{
		Source: coord.MustParse("meta-A1"),
		Dest:   coord.MustParse("root-A1"),
	}))

	got, _ := m.Get(coord.MustParse("root-A1"))
	grid, ok := got.IsGrid()
	s.Require().True(ok)
	s.Require().Equal([]coord.Fragment{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, grid.SubCoords)

	a1, _ := m.Get(coord.MustParse("root-A1-A1"))
	s.Require().Equal(grammar.Text{Value: "hello"}, a1.Kind)
	b1, _ := m.Get(coord.MustParse("root-A1-B1"))
	s.Require().Equal(grammar.Text{Value: "world"}, b1.Kind)
	s.requireConsistent()
}

// TestDoCompletion_TransformsDefnBody verifies grammars three levels below
// meta in the body column are copied as empty inputs.
func (s *EngineSuite) TestDoCompletion_TransformsDefnBody() {
	m := s.m.Session.Grammars
	outer, err := grammar.AsGrid(2, 2)
	s.Require().NoError(err)
	m.Set(coord.MustParse("meta-A1"), outer)
	m.Set(coord.MustParse("meta-A1-A1"), grammar.NewInput("defn_name", "lambda"))
	m.Set(coord.MustParse("meta-A1-B1"), grammar.NewText("", "rules"))
	m.Set(coord.MustParse("meta-A1-A2"), grammar.NewInput("defn_subrule_name", "expr"))
	body, err := grammar.AsGrid(1, 1)
	s.Require().NoError(err)
	m.Set(coord.MustParse("meta-A1-B2"), body)
	m.Set(coord.MustParse("meta-A1-B2-A1"), grammar.NewText("", "expr | expr expr"))
	s.m.Layout.Seed(m)

	s.Require().True(s.m.Apply(engine.DoCompletion{
		Source: coord.MustParse("meta-A1"),
		Dest:   coord.MustParse("root-A1"),
	}))

	transformed, ok := s.m.Session.Grammars.Get(coord.MustParse("root-A1-B2-A1"))
	s.Require().True(ok)
	s.Require().Equal(grammar.Input{}, transformed.Kind)

	kept, _ := s.m.Session.Grammars.Get(coord.MustParse("root-A1-B1"))
	s.Require().Equal(grammar.Text{Value: "rules"}, kept.Kind)

	// focusing the transformed cell offers the copied rule names, not the
	// general meta templates
	s.Require().True(s.m.Apply(engine.SetActiveCell{Coord: coord.MustParse("root-A1-B2-A1")}))
	s.Require().Len(s.m.Suggestions, 1)
	s.Require().Equal("root-A1-A2", s.m.Suggestions[0].Coord.String())
	s.requireConsistent()
}

// TestDoCompletion_Preconditions verifies absent endpoints no-op.
func (s *EngineSuite) TestDoCompletion_Preconditions() {
	s.Require().False(s.m.Apply(engine.DoCompletion{
		Source: coord.MustParse("meta-B9"),
		Dest:   coord.MustParse("root-A1"),
	}))
	s.Require().False(s.m.Apply(engine.DoCompletion{
		Source: coord.MustParse("meta-A1"),
		Dest:   coord.MustParse("root-D9"),
	}))
	s.requireConsistent()
}

//---// input, focus, suggestions //---//

// TestChangeInput rewrites editable kinds in kind and refuses the rest.
func (s *EngineSuite) TestChangeInput() {
	c := coord.MustParse("root-A1")
	s.Require().True(s.m.Apply(engine.ChangeInput{Coord: c, Value: "hi"}))
	g, _ := s.m.Session.Grammars.Get(c)
	s.Require().Equal(grammar.Input{Value: "hi"}, g.Kind)

	s.Require().True(s.m.Apply(engine.ChangeInput{Coord: coord.MustParse("meta-A1"), Value: "new"}))
	g, _ = s.m.Session.Grammars.Get(coord.MustParse("meta-A1"))
	s.Require().Equal(grammar.Text{Value: "new"}, g.Kind)

	s.Require().False(s.m.Apply(engine.ChangeInput{Coord: coord.Root(), Value: "x"}))
	s.Require().False(s.m.Apply(engine.ChangeInput{Coord: coord.MustParse("root-D9"), Value: "x"}))
}

// TestSetActiveCell moves focus only onto stored coordinates and refreshes
// the suggestion list.
func (s *EngineSuite) TestSetActiveCell() {
	s.Require().True(s.m.Apply(engine.SetActiveCell{Coord: coord.MustParse("root-B3")}))
	s.Require().Equal("root-B3", s.m.ActiveCell.String())
	s.Require().Len(s.m.Suggestions, 2)

	s.Require().False(s.m.Apply(engine.SetActiveCell{Coord: coord.MustParse("root-D9")}))
	s.Require().Equal("root-B3", s.m.ActiveCell.String())
}

// TestShowSuggestions filters candidates by name prefix.
func (s *EngineSuite) TestShowSuggestions() {
	c := coord.MustParse("root-B1")
	s.Require().True(s.m.Apply(engine.ShowSuggestions{Coord: c}))
	s.Require().Len(s.m.Suggestions, 2)

	s.Require().True(s.m.Apply(engine.ShowSuggestions{Coord: c, Query: "js"}))
	s.Require().Len(s.m.Suggestions, 1)
	s.Require().Equal("js_grammar", s.m.Suggestions[0].Grammar.Name)

	s.Require().True(s.m.Apply(engine.ShowSuggestions{Coord: c, Query: "zzz"}))
	s.Require().Empty(s.m.Suggestions)

	s.Require().True(s.m.Apply(engine.ShowSuggestions{Coord: coord.MustParse("root-D9")}))
	s.Require().Empty(s.m.Suggestions)
}

// TestSetSessionTitle renames the session.
func (s *EngineSuite) TestSetSessionTitle() {
	s.Require().True(s.m.Apply(engine.SetSessionTitle{Title: "ledger"}))
	s.Require().Equal("ledger", s.m.Session.Title)
}

// TestSetActiveMenu toggles the side menu pointer.
func (s *EngineSuite) TestSetActiveMenu() {
	menu := 1
	s.Require().True(s.m.Apply(engine.SetActiveMenu{Menu: &menu}))
	s.Require().Equal(&menu, s.m.SideMenu)
	s.Require().True(s.m.Apply(engine.SetActiveMenu{}))
	s.Require().Nil(s.m.SideMenu)
}

//---// persistence //---//

// TestSaveLoad round-trips the session through the save sink and LoadSession.
func (s *EngineSuite) TestSaveLoad() {
	var saved []byte
	s.m = engine.New(engine.WithSaveFunc(func(data []byte) error {
		saved = data
		return nil
	}))
	s.Require().True(s.m.Apply(engine.ChangeInput{Coord: coord.MustParse("root-A1"), Value: "kept"}))
	s.Require().False(s.m.Apply(engine.SaveSession{}))
	s.Require().NotEmpty(saved)

	s.m = engine.New()
	s.Require().True(s.m.Apply(engine.LoadSession{Data: saved}))
	g, _ := s.m.Session.Grammars.Get(coord.MustParse("root-A1"))
	s.Require().Equal(grammar.Input{Value: "kept"}, g.Kind)
	s.Require().Equal("root-A1", s.m.ActiveCell.String())
	s.requireConsistent()
}

// TestLoadSession_BadData verifies malformed bytes leave the model untouched
// and raise an alert.
func (s *EngineSuite) TestLoadSession_BadData() {
	before := s.m.Session
	s.Require().False(s.m.Apply(engine.LoadSession{Data: []byte("{not json")}))
	s.Require().Equal(before, s.m.Session)
	s.Require().NotEmpty(s.m.LastAlert)
}

// TestAlertFunc routes alerts to the configured sink.
func (s *EngineSuite) TestAlertFunc() {
	var got string
	s.m = engine.New(engine.WithAlertFunc(func(msg string) { got = msg }))
	s.Require().True(s.m.Apply(engine.Alert{Msg: "saved"}))
	s.Require().Equal("saved", got)
	s.Require().Equal("saved", s.m.LastAlert)
}

// TestNoop reports no change.
func (s *EngineSuite) TestNoop() {
	s.Require().False(s.m.Apply(engine.Noop{}))
}

// TestWithSession starts from a caller-provided session.
func (s *EngineSuite) TestWithSession() {
	custom := session.Default()
	custom.Title = "budget"
	m := engine.New(engine.WithSession(custom))
	s.Require().Equal("budget", m.Session.Title)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

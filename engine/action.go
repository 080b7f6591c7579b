package engine

import "github.com/Korede-TA/ise/coord"

// Action is the closed sum of events the engine processes. Each Apply call
// handles exactly one action; actions are totally ordered by arrival.
type Action interface{ isAction() }

// Noop does nothing and reports no change.
type Noop struct{}

// Alert surfaces an informational message to the user.
type Alert struct{ Msg string }

// ChangeInput overwrites the textual value of the cell at Coord.
type ChangeInput struct {
	Coord coord.Coordinate
	Value string
}

// ShowSuggestions recomputes the suggestion list for Coord, keeping only
// candidates whose name starts with Query.
type ShowSuggestions struct {
	Coord coord.Coordinate
	Query string
}

// SetActiveCell records Coord as the active cell.
type SetActiveCell struct{ Coord coord.Coordinate }

// DoCompletion copies the subtree at Source onto Dest and reflows layout.
type DoCompletion struct{ Source, Dest coord.Coordinate }

// SetActiveMenu opens the side menu at the given index, or closes it on nil.
type SetActiveMenu struct{ Menu *int }

// SetSessionTitle renames the session.
type SetSessionTitle struct{ Title string }

// LoadSession replaces the session with the decoded file contents.
type LoadSession struct{ Data []byte }

// SaveSession snapshots the session through the model's save function.
type SaveSession struct{}

// AddNestedGrid replaces the cell at Coord with a Rows x Cols grid of
// default cells.
type AddNestedGrid struct {
	Coord      coord.Coordinate
	Rows, Cols uint32
}

// InsertRow appends a row below the bottom-most existing row of the active
// cell's grid.
type InsertRow struct{}

// InsertCol appends a column right of the right-most existing column of the
// active cell's grid.
type InsertCol struct{}

func (Noop) isAction()            {}
func (Alert) isAction()           {}
func (ChangeInput) isAction()     {}
func (ShowSuggestions) isAction() {}
func (SetActiveCell) isAction()   {}
func (DoCompletion) isAction()    {}
func (SetActiveMenu) isAction()   {}
func (SetSessionTitle) isAction() {}
func (LoadSession) isAction()     {}
func (SaveSession) isAction()     {}
func (AddNestedGrid) isAction()   {}
func (InsertRow) isAction()       {}
func (InsertCol) isAction()       {}

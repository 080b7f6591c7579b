// Package tui is the terminal front end: a bubbletea program that renders
// the nested grid, routes keystrokes to engine actions, and shows the
// suggestion panel and alert line.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Korede-TA/ise/engine"
	"github.com/Korede-TA/ise/grammar"
)

type mode int

const (
	modeNormal mode = iota
	modeEdit
	modeTitle
)

// Model adapts an engine.Model to the bubbletea update/view cycle. All
// mutations flow through engine actions so the invariants checked there
// hold for every keystroke.
type Model struct {
	eng  *engine.Model
	path string

	width   int
	height  int
	mode    mode
	editBuf string
	sugIdx  int
	err     error
}

// New builds the program model. path names the session file used by load
// on startup and ctrl+s; an empty path disables persistence.
func New(path string) Model {
	eng := engine.New(engine.WithSaveFunc(func(data []byte) error {
		if path == "" {
			return fmt.Errorf("no session file configured")
		}
		return os.WriteFile(path, data, 0o644)
	}))
	return Model{eng: eng, path: path}
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(path string) error {
	_, err := tea.NewProgram(New(path), tea.WithAltScreen()).Run()
	return err
}

type sessionReadMsg struct {
	data []byte
	err  error
}

// readSession loads the session file off the update loop.
func readSession(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return sessionReadMsg{data: data, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	if _, err := os.Stat(m.path); err != nil {
		return nil
	}
	return readSession(m.path)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case sessionReadMsg:
		if msg.err != nil {
			m.eng.Apply(engine.Alert{Msg: fmt.Sprintf("could not read %s: %v", m.path, msg.err)})
			return m, nil
		}
		m.eng.Apply(engine.LoadSession{Data: msg.data})
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.updateEdit(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	eng := m.eng
	active := eng.ActiveCell
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if c, ok := active.Above(); ok {
			eng.Apply(engine.SetActiveCell{Coord: c})
		}
	case "down", "j":
		eng.Apply(engine.SetActiveCell{Coord: active.Below()})
	case "left", "h":
		if c, ok := active.Left(); ok {
			eng.Apply(engine.SetActiveCell{Coord: c})
		}
	case "right", "l":
		eng.Apply(engine.SetActiveCell{Coord: active.Right()})
	case "esc":
		if p, ok := active.Parent(); ok {
			eng.Apply(engine.SetActiveCell{Coord: p})
		}
	case "enter":
		g, ok := eng.Session.Grammars.Get(active)
		if !ok {
			break
		}
		if grid, isGrid := g.IsGrid(); isGrid && len(grid.SubCoords) > 0 {
			// descend into the nested grid
			eng.Apply(engine.SetActiveCell{Coord: firstChild(active, grid)})
			break
		}
		m.mode = modeEdit
		m.editBuf = cellValue(g)
	case "ctrl+g":
		eng.Apply(engine.AddNestedGrid{Coord: active, Rows: 3, Cols: 3})
	case "o":
		eng.Apply(engine.InsertRow{})
	case "O":
		eng.Apply(engine.InsertCol{})
	case "ctrl+n":
		if n := len(eng.Suggestions); n > 0 {
			m.sugIdx = (m.sugIdx + 1) % n
		}
	case "ctrl+p":
		if n := len(eng.Suggestions); n > 0 {
			m.sugIdx = (m.sugIdx + n - 1) % n
		}
	case "tab":
		if m.sugIdx < len(eng.Suggestions) {
			sel := eng.Suggestions[m.sugIdx]
			eng.Apply(engine.DoCompletion{Source: sel.Coord, Dest: active})
			m.sugIdx = 0
		}
	case "ctrl+s":
		eng.Apply(engine.SaveSession{})
	case "T":
		m.mode = modeTitle
		m.editBuf = eng.Session.Title
	case "0":
		eng.Apply(engine.SetActiveMenu{})
	case "1", "2", "3":
		n := int(msg.String()[0] - '0')
		eng.Apply(engine.SetActiveMenu{Menu: &n})
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.editBuf = ""
	case "enter":
		if m.mode == modeTitle {
			m.eng.Apply(engine.SetSessionTitle{Title: m.editBuf})
		} else {
			m.eng.Apply(engine.ChangeInput{Coord: m.eng.ActiveCell, Value: m.editBuf})
			m.eng.Apply(engine.ShowSuggestions{Coord: m.eng.ActiveCell, Query: m.editBuf})
		}
		m.mode = modeNormal
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if msg.Type == tea.KeyRunes || msg.String() == " " {
			m.editBuf += string(msg.Runes)
		}
	}
	return m, nil
}

// cellValue extracts the editable text of a grammar, or a placeholder for
// non-text kinds.
func cellValue(g grammar.Grammar) string {
	switch k := g.Kind.(type) {
	case grammar.Text:
		return k.Value
	case grammar.Input:
		return k.Value
	default:
		return ""
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Korede-TA/ise/coord"
	"github.com/Korede-TA/ise/grammar"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
	cellStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	sugStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

const cellWidth = 12

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.eng.Session.Title))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(m.eng.ActiveCell.String()))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid(coord.Root()))
	b.WriteString("\n")

	if len(m.eng.Suggestions) > 0 {
		b.WriteString(m.renderSuggestions())
		b.WriteString("\n")
	}
	switch m.mode {
	case modeEdit:
		b.WriteString(fmt.Sprintf("edit %s: %s█\n", m.eng.ActiveCell, m.editBuf))
	case modeTitle:
		b.WriteString(fmt.Sprintf("title: %s█\n", m.editBuf))
	}
	if m.eng.SideMenu != nil {
		b.WriteString(dimStyle.Render(fmt.Sprintf("menu %d open", *m.eng.SideMenu)))
		b.WriteString("\n")
	}
	if m.eng.LastAlert != "" {
		b.WriteString(alertStyle.Render(m.eng.LastAlert))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(
		"hjkl move · enter edit/descend · esc ascend · ctrl+g nest 3x3 · o/O insert row/col · tab complete · T title · 1-3/0 menu · ctrl+s save · q quit"))
	return b.String()
}

// renderGrid draws the grid at c by joining each row of child cells
// horizontally, then stacking the rows. Grid children recurse.
func (m Model) renderGrid(c coord.Coordinate) string {
	children := m.eng.Session.Grammars.QueryParent(c)
	if len(children) == 0 {
		return m.renderCell(c)
	}
	var rows []string
	var current []string
	prevRow := uint32(0)
	for _, child := range children {
		if prevRow != 0 && child.Row() != prevRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
		g, _ := m.eng.Session.Grammars.Get(child)
		if _, isGrid := g.IsGrid(); isGrid {
			current = append(current, cellStyle.Render(m.renderGrid(child)))
		} else {
			current = append(current, m.renderCell(child))
		}
		prevRow = child.Row()
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCell draws one leaf cell, highlighted when active.
func (m Model) renderCell(c coord.Coordinate) string {
	g, _ := m.eng.Session.Grammars.Get(c)
	label := cellLabel(g)
	if len(label) > cellWidth {
		label = label[:cellWidth]
	}
	label = fmt.Sprintf("%-*s", cellWidth, label)
	if c.Equal(m.eng.ActiveCell) {
		return cellStyle.Render(cursorStyle.Render(label))
	}
	return cellStyle.Render(label)
}

// cellLabel picks the text shown inside a cell.
func cellLabel(g grammar.Grammar) string {
	switch k := g.Kind.(type) {
	case grammar.Text:
		return k.Value
	case grammar.Input:
		return k.Value
	case grammar.Interactive:
		switch ctrl := k.Control.(type) {
		case grammar.Button:
			return "[ " + g.Name + " ]"
		case grammar.Slider:
			return fmt.Sprintf("%s %.0f", g.Name, ctrl.Value)
		case grammar.Toggle:
			if ctrl.On {
				return g.Name + " (on)"
			}
			return g.Name + " (off)"
		}
	}
	return g.Name
}

// renderSuggestions lists the completion candidates, marking the selected one.
func (m Model) renderSuggestions() string {
	var b strings.Builder
	b.WriteString(sugStyle.Render("suggestions:"))
	for i, s := range m.eng.Suggestions {
		b.WriteString(" ")
		name := s.Grammar.Name
		if name == "" {
			name = s.Coord.String()
		}
		if i == m.sugIdx {
			b.WriteString(cursorStyle.Render(name))
		} else {
			b.WriteString(name)
		}
	}
	return b.String()
}

// firstChild returns the row-major first child of a grid cell.
func firstChild(c coord.Coordinate, grid grammar.Grid) coord.Coordinate {
	first := grid.SubCoords[0]
	for _, f := range grid.SubCoords[1:] {
		if f.Compare(first) < 0 {
			first = f
		}
	}
	return coord.ChildOf(c, first)
}

package session

import (
	"encoding/json"

	"github.com/Korede-TA/ise/coord"
	"github.com/Korede-TA/ise/grammar"
)

// DefaultTitle names a freshly created session.
const DefaultTitle = "Untitled"

// Session is the unit of persistence: a title, the two top-level tree
// grammars, and the full grammar map.
type Session struct {
	Title    string          `json:"title"`
	Root     grammar.Grammar `json:"root"`
	Meta     grammar.Grammar `json:"meta"`
	Grammars Map             `json:"grammars"`
}

// Default builds the startup session: a 3x2 grid of empty inputs under root
// and a 2x1 meta column holding two named suggestion templates.
func Default() Session {
	m := make(Map)

	rows := make([][]Entry, 3)
	for r := range rows {
		rows[r] = []Entry{Cell{G: grammar.Default()}, Cell{G: grammar.Default()}}
	}
	_ = Build(m, coord.Root(), Table{Rows: rows})

	_ = Build(m, coord.Meta(), Table{Rows: [][]Entry{
		{Cell{G: grammar.Suggestion("js_grammar", "This is javascript")}},
		{Cell{G: grammar.Suggestion("java_grammar", "This is java")}},
	}})

	root, _ := m.Get(coord.Root())
	root.Name = "root"
	m.Set(coord.Root(), root)
	meta, _ := m.Get(coord.Meta())
	meta.Name = "meta"
	m.Set(coord.Meta(), meta)

	return Session{Title: DefaultTitle, Root: root, Meta: meta, Grammars: m}
}

// Sync refreshes the cached Root and Meta grammars from the map after the
// map has been mutated.
func (s *Session) Sync() {
	if g, ok := s.Grammars.Get(coord.Root()); ok {
		s.Root = g
	}
	if g, ok := s.Grammars.Get(coord.Meta()); ok {
		s.Meta = g
	}
}

// Encode serializes the session to its JSON file form.
func (s Session) Encode() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Decode restores a session from its JSON file form and verifies the grammar
// map's structural invariants.
func Decode(data []byte) (Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, err
	}
	if err := s.Grammars.CheckConsistency(); err != nil {
		return Session{}, err
	}
	return s, nil
}

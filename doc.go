// Package ise is an integrated spreadsheet environment: a grid editor in
// which every cell is a typed, styled, possibly-nested grammar.
//
// 🚀 What is ise?
//
//	A terminal spreadsheet whose cells nest recursively:
//		• Coordinates: nested (row, col) paths printed as root-AB3
//		• Grammars: text, input, interactive controls, or whole sub-grids
//		• Meta tree: user-defined templates completed into the working sheet
//		• Mutation engine: nest grids, insert rows/columns, complete, save
//		• Layout tables: pixel bands that propagate resizes to ancestors
//
// ✨ Why choose ise?
//
//   - Invariant-first – every mutation keeps the grammar map consistent
//   - Single-threaded core – one event loop, no mid-mutation observation
//   - Plain JSON sessions – {title, root, meta, grammars}, diff-friendly
//
// Everything is organized under six subpackages:
//
//	coord/   — nested coordinate paths: parse, print, neighbors, bands
//	grammar/ — cell payloads, styles, CSS emission, tagged JSON
//	session/ — the grammar map, bulk builder, session persistence
//	engine/  — the mutation engine, layout propagation, action union
//	suggest/ — completion candidates drawn from the meta tree
//	tui/     — the bubbletea front end
//
// Quick ASCII example:
//
//	┌──────┬──────┐
//	│ A1   │┌──┬──┐
//	│      ││A1│B1│
//	│      │└──┴──┘
//	└──────┴──────┘
//
//	a sheet whose B1 cell contains a nested 1×2 grid.
//
//	go get github.com/Korede-TA/ise
package ise

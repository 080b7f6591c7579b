// Package grammar defines the typed cell payload of the spreadsheet
// environment: a Grammar couples a name, a presentation Style, and a Kind.
//
// Kind is a closed sum — exactly one of:
//
//   - Text: read-only text.
//   - Input: readable and writable text.
//   - Interactive: a named control (Button, Slider, or Toggle).
//   - Grid: a nested grid of child grammars, carrying the local (row, col)
//     fragments of the children that exist. The full coordinate of each child
//     is the parent coordinate extended by that fragment.
//
// Dispatch is by type switch over the sealed Kind and Control interfaces;
// there is no subclassing.
//
// CSS emission: CSS renders a grammar's style for a given coordinate. Grid
// kinds produce a grid-template-areas block of "cell-<coordinate>" tokens,
// one quoted string per row, sub-coordinates sorted by (row, col); every kind
// ends with its own "grid-area: cell-<coordinate>" assignment.
//
// JSON: Kind and Control serialize as single-key tagged objects
// ({"Text": s}, {"Grid": [[r,c],…]}, {"Slider": [v,min,max]}, …) matching the
// session file format.
package grammar

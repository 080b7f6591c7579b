// Package suggest computes completion candidates for a cell by consulting
// the meta tree of a grammar map.
//
// The meta tree reserves a small vocabulary of grammar names that switch the
// suggestion mode:
//
//   - "defn_name" and "defn_subrule_name" cells are free-form; no
//     suggestions are offered.
//   - "defn_subrule_grammar" cells (and any cell two levels below meta) are
//     rule bodies: the structural primitives variant and repetition come
//     first, followed by the named siblings in the column to the left.
//   - Cells nested below a body cell are offered the enclosing grid's rule
//     names, the column-1 cells labelled "defn_subrule_name". This covers
//     both the meta originals and their completed copies in the root tree.
//   - Every other cell is offered the templates in column A of the meta tree.
//
// The vocabulary and the fixed primitive coordinates live here and nowhere
// else; the mutation engine and the UI consult this package rather than
// re-encoding meta layout knowledge.
//
// Results are ordered: primitives first where applicable, then map scan
// order (ascending coordinates).
package suggest

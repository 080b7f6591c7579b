// Package coord implements the nested coordinate system that addresses cells
// in an integrated spreadsheet environment, where any cell may itself contain
// a whole grid.
//
// What:
//
//   - Fragment is one (row, column) step; both indices are strictly positive.
//   - Coordinate is a non-empty path of fragments. The first fragment selects
//     one of the two top-level trees: (1,1) is "root", (1,2) is "meta"; every
//     further fragment addresses a child inside the grid at the previous level.
//   - Row and Col identify a row or column band inside one particular grid:
//     (parent coordinate, local index).
//
// Printed form:
//
//   - The head fragment prints as the literal token "root" or "meta".
//   - Each further fragment prints as "-<ColLetters><RowNumber>" with columns
//     in bijective base-26 letters (1→A … 26→Z, 27→AA, 28→AB, …).
//   - Parse is the exact inverse of String on every well-formed input.
//
// Neighbors reference only the last fragment; they never cross grid
// boundaries. Above/Left fail at index 1; Below/Right always produce a
// coordinate, which need not exist in any map — callers test membership.
//
// Complexity: all operations are O(depth) time and memory; depth is the
// number of fragments, typically small.
//
// Errors:
//
//   - ErrZeroIndex: a fragment index of zero was supplied.
//   - ErrParse: a coordinate string does not match the printed form.
//   - ErrTruncate: a prefix longer than the coordinate was requested.
package coord

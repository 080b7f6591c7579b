// Package session holds the persistable state of a spreadsheet: the grammar
// map — the single source of truth mapping coordinates to grammars — and the
// Session bundle that serializes it together with a title and the two
// top-level tree grammars.
//
// Map invariants (checked by CheckConsistency, preserved by the mutation
// engine):
//
//   - The root and meta coordinates are always present.
//   - Grid consistency: a Grid grammar's sub-coordinates all exist as
//     children in the map, and every non-top-level cell's parent is a Grid
//     that lists the cell's last fragment.
//   - No orphans: every non-root, non-meta coordinate has its parent in the
//     map.
//
// The map is authoritative; a Grid's sub-coordinate list is a derived,
// row-major ordering index, and Reconcile recomputes it from the map.
//
// Bulk construction mirrors nested table literals: an Entry is either a
// single Cell grammar or a rectangular Table of entries, and Build recurses
// row-major, inserting a synthetic Grid grammar above each table.
//
// The session file is JSON: {title, root, meta, grammars}, with grammars
// keyed by printed coordinate strings.
//
// Errors:
//
//   - ErrEmptyTable: a table literal with no rows or no columns.
//   - ErrRaggedTable: table rows of differing lengths.
package session

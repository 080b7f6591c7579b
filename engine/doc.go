// Package engine applies user actions to a spreadsheet model while
// preserving the grammar-map and layout invariants.
//
// What: Model bundles the Session with transient editing state (active
// cell, suggestion list, side menu, tab) and the layout tables mapping row
// and column bands to pixel sizes. Apply dispatches one Action atomically
// and reports whether observers should re-render.
//
// Failure policy: operations whose precondition fails (the target grammar
// does not exist) are silent no-ops. Parse and I/O failures during session
// load or save leave the model untouched and surface through the alert
// channel. Apply never panics on well-formed actions.
//
// Layout propagation: resizing a cell sets its row and column bands to the
// new size plus a 2px border, then grows every ancestor band by the same
// delta plus one border per level, so nested grid templates keep matching
// their pixel dimensions.
//
// Complexity: actions touch O(k) map entries where k is the affected
// subtree or band size; nothing scans the whole map except consistency
// checks in tests.
package engine

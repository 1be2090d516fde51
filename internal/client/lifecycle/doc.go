// Package lifecycle maps "start an async call" onto three deterministic
// state transitions: pending, then fulfilled or rejected.
//
// A slice keeps its state in a Cell. Run issues the call described by an
// Operation and folds each phase into the cell through pure reducers, so a
// reader of the cell only ever sees whole transitions.
//
// Ordering: by default every resolution is applied, so with two in-flight
// calls for the same key the one that resolves last wins. A cell created
// WithFencing(true) instead drops any resolution whose sequence number is
// no longer the newest issued for its key.
//
// Cancellation is carried by ctx. A cancelled call resolves as a rejection.
package lifecycle

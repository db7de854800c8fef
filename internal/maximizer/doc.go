// Package maximizer searches every border entry of a grid for the one that
// energizes the most cells.
//
// Each candidate entry is an independent simulation with its own session, so
// candidates can be traced in any order and on any number of goroutines. The
// grid is shared read-only; only the final reduction to a maximum needs
// coordination.
package maximizer

// Package session provides the trace session: the mutable, trace-scoped
// bookkeeping for one beam trace.
//
// # Purpose
//
// A Session records which beam states (position + direction) a trace has
// already processed and which positions have been energized. The grid
// itself stays untouched, so any number of sessions can trace the same grid
// concurrently.
//
// # Characteristics
//
//   - **Ephemeral:** Created fresh for every trace and discarded once its
//     counts have been read. There is no Reset; reusing a session would
//     merge two unrelated traces.
//   - **Not thread-safe:** A session is owned by exactly one goroutine.
//   - **Dense:** State is a flat, row-major slice of direction bitmasks
//     mirroring the grid layout, so lookups are O(1) without hashing.
package session

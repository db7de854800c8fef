// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package grid is the immutable terrain model of a contraption: a dense,
// rectangular matrix of optical elements plus the small value types used to
// address it (Position, Direction, BeamState).
//
// Why keep the grid immutable?
//
// A single parsed grid is traced many times, once per candidate entry, and
// the maximizer does that from several goroutines at once. Nothing that a
// trace learns (which cells are energized, which beam states were already
// processed) is stored here; that bookkeeping belongs to a trace-scoped
// session. The grid can therefore be shared freely without locks.
package grid

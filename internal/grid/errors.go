// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is the sentinel matched by every grid parse failure.
var ErrMalformedGrid = errors.New("malformed grid")

// ParseError describes why grid text was rejected. Line and Column are
// one-based; Column is zero when the problem concerns a whole line.
type ParseError struct {
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("%s: %s", ErrMalformedGrid, e.Reason)
	case e.Column == 0:
		return fmt.Sprintf("%s: line %d: %s", ErrMalformedGrid, e.Line, e.Reason)
	default:
		return fmt.Sprintf("%s: line %d, column %d: %s", ErrMalformedGrid, e.Line, e.Column, e.Reason)
	}
}

// Unwrap lets errors.Is(err, ErrMalformedGrid) match.
func (e *ParseError) Unwrap() error {
	return ErrMalformedGrid
}

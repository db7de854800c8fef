// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Grid structure and the text parser that builds it.
//
// Cells are stored in a single row-major slice rather than a slice of rows:
// every lookup is one multiplication and one index, and sessions can mirror
// the same flat indexing for their own per-cell bookkeeping.
package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Grid is an immutable rows x columns matrix of elements.
type Grid struct {
	rows    int
	columns int
	cells   []Element
}

// Parse builds a Grid from grid text: equal-length lines of ". / \ | -".
// Trailing blank lines are ignored and "\r\n" line endings are accepted.
func Parse(text string) (*Grid, error) {
	return FromLines(strings.Split(text, "\n"))
}

// FromLines builds a Grid from already split lines.
func FromLines(lines []string) (*Grid, error) {
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimSuffix(l, "\r")
	}
	for len(trimmed) > 0 && strings.TrimSpace(trimmed[len(trimmed)-1]) == "" {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if len(trimmed) == 0 {
		return nil, &ParseError{Reason: "input contains no rows"}
	}

	columns := utf8.RuneCountInString(trimmed[0])
	g := &Grid{
		rows:    len(trimmed),
		columns: columns,
		cells:   make([]Element, 0, len(trimmed)*columns),
	}

	for y, line := range trimmed {
		if line == "" {
			return nil, &ParseError{Line: y + 1, Reason: "row is empty"}
		}
		if n := utf8.RuneCountInString(line); n != columns {
			return nil, &ParseError{
				Line:   y + 1,
				Reason: fmt.Sprintf("row has %d columns, expected %d", n, columns),
			}
		}
		x := 0
		for _, r := range line {
			e, ok := ElementFromSymbol(r)
			if !ok {
				return nil, &ParseError{
					Line:   y + 1,
					Column: x + 1,
					Reason: fmt.Sprintf("unrecognized element symbol %q", r),
				}
			}
			g.cells = append(g.cells, e)
			x++
		}
	}

	return g, nil
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, columns int) {
	return g.rows, g.columns
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.columns && p.Y < g.rows
}

// Index returns the row-major index of p. p must be in bounds.
func (g *Grid) Index(p Position) int {
	return p.Y*g.columns + p.X
}

// ElementAt returns the element at p. Callers must check InBounds first;
// an out-of-bounds lookup is a programming error and panics.
func (g *Grid) ElementAt(p Position) Element {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: element lookup at %s outside %dx%d grid", p, g.rows, g.columns))
	}
	return g.cells[g.Index(p)]
}

// String renders the grid back to its text form, rows joined by "\n".
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.columns + 1))
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, e := range g.cells[y*g.columns : (y+1)*g.columns] {
			b.WriteRune(e.Symbol())
		}
	}
	return b.String()
}

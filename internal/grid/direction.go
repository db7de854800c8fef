// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal headings a beam can travel in.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// DirectionCount is the number of distinct directions.
const DirectionCount = 4

// Directions lists every direction, in declaration order.
var Directions = [DirectionCount]Direction{North, East, South, West}

// Unit vectors indexed by Direction. Y grows downwards (row index).
var dirDeltas = [DirectionCount][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

var dirNames = [DirectionCount]string{"north", "east", "south", "west"}

// Delta returns the column and row offsets of a single step in d.
func (d Direction) Delta() (dx, dy int) {
	v := dirDeltas[d]
	return v[0], v[1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % DirectionCount
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d < DirectionCount
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return dirNames[d]
}

// ParseDirection accepts a direction name ("east") or its initial ("e"),
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range dirNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q: must be one of north, east, south, west", s)
}

// Position addresses a cell. X is the column, Y the row, both zero-based.
type Position struct {
	X int
	Y int
}

// Move returns the neighbouring position one step away in d. The result may
// lie outside any grid; callers check InBounds.
func (p Position) Move(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// BeamState identifies one beam: the cell it occupies and the direction it is
// travelling in. It is the node type of the traversal graph.
type BeamState struct {
	Pos Position
	Dir Direction
}

// Next returns the state a beam reaches by leaving s.Pos heading out.
func (s BeamState) Next(out Direction) BeamState {
	return BeamState{Pos: s.Pos.Move(out), Dir: out}
}

func (s BeamState) String() string {
	return s.Pos.String() + " " + s.Dir.String()
}

// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package grid

import "fmt"

// Element is the optical element occupying a cell.
type Element uint8

const (
	// EmptySpace '.' lets any beam pass unchanged.
	EmptySpace Element = iota
	// ForwardMirror '/' reflects North<->East and South<->West.
	ForwardMirror
	// BackwardMirror '\' reflects North<->West and South<->East.
	BackwardMirror
	// VerticalSplitter '|' splits East/West beams into North and South.
	VerticalSplitter
	// HorizontalSplitter '-' splits North/South beams into East and West.
	HorizontalSplitter
)

// ElementCount is the number of element kinds.
const ElementCount = 5

var elementSymbols = [ElementCount]rune{'.', '/', '\\', '|', '-'}

var elementNames = [ElementCount]string{
	"EmptySpace", "ForwardMirror", "BackwardMirror", "VerticalSplitter", "HorizontalSplitter",
}

// Symbol returns the character used for e in grid text.
func (e Element) Symbol() rune {
	if e >= ElementCount {
		return '?'
	}
	return elementSymbols[e]
}

func (e Element) String() string {
	if e >= ElementCount {
		return fmt.Sprintf("Element(%d)", uint8(e))
	}
	return elementNames[e]
}

// IsSplitter reports whether e can turn one beam into two.
func (e Element) IsSplitter() bool {
	return e == VerticalSplitter || e == HorizontalSplitter
}

// ElementFromSymbol maps a grid character to its element.
func ElementFromSymbol(r rune) (Element, bool) {
	for i, s := range elementSymbols {
		if s == r {
			return Element(i), true
		}
	}
	return 0, false
}

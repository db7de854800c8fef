// Package testutil holds grid fixtures and helpers shared by tests.
package testutil

// ExampleGrid is the 10x10 sample contraption. Entering at (0,0) heading east
// energizes 46 cells; the best border entry energizes 51.
const ExampleGrid = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

// Known answers for ExampleGrid.
const (
	ExampleSingleEntry = 46
	ExampleBestEntry   = 51
)

// ExampleEnergyMap is the energy map of ExampleGrid for the (0,0) east entry.
const ExampleEnergyMap = `######....
.#...#....
.#...#####
.#...##...
.#...##...
.#...##...
.#..####..
########..
.#######..
.#...#.#..`

// MirrorLoopGrid routes a beam entering at (0,0) east around a closed loop of
// mirrors, so the same beam states are reached again and again.
const MirrorLoopGrid = `.-..\
.....
.\../
`

// MirrorLoopEnergized is the energized count of MirrorLoopGrid from (0,0) east.
const MirrorLoopEnergized = 11

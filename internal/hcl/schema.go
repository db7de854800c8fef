package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode all top-level blocks of a run file.
type fileRoot struct {
	Contraptions []*contraptionBlock `hcl:"contraption,block"`
	Remain       hcl.Body            `hcl:",remain"`
}

// contraptionBlock represents a `contraption "name" { ... }` block.
type contraptionBlock struct {
	Name    string        `hcl:"name,label"`
	Grid    string        `hcl:"grid"`
	Best    *bool         `hcl:"best,optional"`
	Entries []*entryBlock `hcl:"entry,block"`
	Expect  *expectBlock  `hcl:"expect,block"`
}

// entryBlock represents an `entry { ... }` block. Direction is kept as an
// expression so it can be written either as a string or as a bare keyword.
type entryBlock struct {
	X         int            `hcl:"x,optional"`
	Y         int            `hcl:"y,optional"`
	Direction hcl.Expression `hcl:"direction,optional"`
}

// expectBlock represents an `expect { ... }` block.
type expectBlock struct {
	Single *int `hcl:"single,optional"`
	Best   *int `hcl:"best,optional"`
}

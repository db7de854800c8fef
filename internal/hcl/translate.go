package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/beamgridgo/internal/config"
	"github.com/vk/beamgridgo/internal/grid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// directionContext lets run files name directions as bare keywords
// (direction = east) as well as strings (direction = "east").
var directionContext = func() *hcl.EvalContext {
	vars := make(map[string]cty.Value, grid.DirectionCount)
	for _, d := range grid.Directions {
		vars[d.String()] = cty.StringVal(d.String())
	}
	return &hcl.EvalContext{Variables: vars}
}()

// translateContraption converts the HCL-specific contraption block into the
// agnostic model.
func translateContraption(b *contraptionBlock, baseDir string) (*config.Contraption, hcl.Diagnostics) {
	c := &config.Contraption{
		Name:     b.Name,
		GridPath: resolveGridPath(baseDir, b.Grid),
		Best:     true,
	}
	if b.Best != nil {
		c.Best = *b.Best
	}
	if b.Expect != nil {
		c.Expect = &config.Expectation{Single: b.Expect.Single, Best: b.Expect.Best}
	}

	var diags hcl.Diagnostics
	for _, e := range b.Entries {
		dir, dDiags := translateDirection(e.Direction)
		diags = append(diags, dDiags...)
		c.Entries = append(c.Entries, config.Entry{X: e.X, Y: e.Y, Direction: dir})
	}
	return c, diags
}

// translateDirection evaluates a direction expression. A missing attribute
// means east.
func translateDirection(expr hcl.Expression) (grid.Direction, hcl.Diagnostics) {
	if expr == nil {
		return grid.East, nil
	}
	val, diags := expr.Value(directionContext)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return grid.East, nil
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil || !str.IsKnown() {
		return 0, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid direction",
			Detail:   "The direction must be a string such as \"east\".",
			Subject:  expr.Range().Ptr(),
		}}
	}

	dir, err := grid.ParseDirection(str.AsString())
	if err != nil {
		return 0, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid direction",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return dir, nil
}

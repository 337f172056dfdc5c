package dump

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/akashmaji946/skyfront/ast"
)

// spewConfig departs from spew's defaults with a two-space indent, no
// pointer addresses (noise in a tree that's rebuilt fresh on every run),
// no slice capacities, and sorted map keys.
var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Spew renders u's raw Go struct graph, for compiler-developer debugging
// when the DOT graph is too coarse to see a field's exact value.
func Spew(u *ast.Unit) string {
	return spewConfig.Sdump(u)
}

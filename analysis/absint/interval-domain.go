package absint

import (
	"go/token"

	"github.com/cs-au-dk/absdom/analysis/absint/ops"
	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
)

// IntervalDomain tracks integer identifiers as ranges.
type IntervalDomain = NonRelational[L.Interval]

type intervalTransfer struct {
	*L.IntervalLattice
}

func (intervalTransfer) Constant(c symbolic.Constant) (L.Interval, bool) {
	if v, ok := c.Int64(); ok {
		return Elements().IntervalSingleton(v), true
	}
	return Lattices().Interval().Top(), false
}

func (intervalTransfer) UnOp(op token.Token, v L.Interval) (L.Interval, bool) {
	return ops.IntervalUnOp(op, v)
}

func (intervalTransfer) BinOp(op token.Token, v1, v2 L.Interval) (L.Interval, bool) {
	return ops.IntervalBinOp(op, v1, v2)
}

func (intervalTransfer) Compare(op token.Token, v1, v2 L.Interval) L.Satisfiability {
	return ops.IntervalCompare(op, v1, v2)
}

func (intervalTransfer) Refine(op token.Token, x, v L.Interval) L.Interval {
	return ops.IntervalRefine(op, x, v)
}

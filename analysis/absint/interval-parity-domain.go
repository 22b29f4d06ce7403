package absint

import (
	"go/token"
	"math"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
)

// IntervalParityDomain is the reduced product of intervals and parities.
type IntervalParityDomain = ProductDomain[L.Interval, L.Parity]

// intervalParityRem refines remainders, which neither component models
// precisely on its own:
//   - an even divisor preserves the parity of the dividend,
//   - a divisor of [0, 0] makes the remainder ⊥,
//   - a finite divisor k excluding 0 bounds the magnitude of the
//     remainder by max|k| - 1, and a non-negative dividend makes it
//     non-negative.
func intervalParityRem(
	d *IntervalParityDomain,
	expr symbolic.Expression,
	env L.Environment[L.IntervalParity],
	pp symbolic.ProgramPoint,
	i L.Interval,
	p L.Parity,
) (L.Interval, L.Parity, error) {
	rem, ok := expr.(symbolic.BinaryExpression)
	if !ok || rem.Op != token.REM {
		return i, p, nil
	}

	x, err := d.Eval(rem.Left, env, pp)
	if err != nil {
		return i, p, err
	}
	y, err := d.Eval(rem.Right, env, pp)
	if err != nil {
		return i, p, err
	}
	if x.IsBot() || y.IsBot() {
		return Lattices().Interval().Bot(), L.ParityBot, nil
	}
	if v, ok := y.Left().Singleton(); ok && v == 0 {
		return Lattices().Interval().Bot(), L.ParityBot, nil
	}

	if y.Right().IsEven() {
		p = p.MonoMeet(x.Right())
	}
	if l, h, ok := y.Left().Finite(); ok && !y.Left().Contains(0) && l != math.MinInt64 {
		m := max(abs(l), abs(h)) - 1
		low := -m
		if x.Left().Low().Geq(L.FiniteBound(0)) {
			low = 0
		}
		i = i.MonoMeet(Elements().IntervalFinite(low, m))
	}
	return i, p, nil
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// intervalParitySatisfies decides `(e % 2) == c` and `(e % 2) != c` from
// the parity component alone.
func intervalParitySatisfies(
	d *IntervalParityDomain,
	expr symbolic.Expression,
	env L.Environment[L.IntervalParity],
	pp symbolic.ProgramPoint,
) (L.Satisfiability, bool, error) {
	if _, _, ok := modTwoGuard(expr); !ok {
		return L.Unknown, false, nil
	}
	_, re := d.Split(env)
	s, err := d.RightDomain().Satisfies(expr, re, pp)
	return s, true, err
}

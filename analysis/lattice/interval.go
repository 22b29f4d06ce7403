package lattice

import (
	"golang.org/x/exp/slices"
)

// Interval is an interval and a member of the interval lattice.
// Any interval consists two interval bounds, `low` and `high`.
// Empty ranges are always represented by ⊥ = [∞, -∞].
type Interval struct {
	low  IntervalBound
	high IntervalBound
}

var (
	intervalBot = Interval{low: PlusInfinity{}, high: MinusInfinity{}}
	intervalTop = Interval{low: MinusInfinity{}, high: PlusInfinity{}}
)

// newInterval normalizes an empty range to ⊥.
func newInterval(low, high IntervalBound) Interval {
	if low.Gt(high) || low.Eq(PlusInfinity{}) || high.Eq(MinusInfinity{}) {
		return intervalBot
	}
	return Interval{low: low, high: high}
}

// Interval creates an interval with possibly infinite bounds.
func (elementFactory) Interval(low IntervalBound, high IntervalBound) Interval {
	return newInterval(low, high)
}

// IntervalFinite creates an interval with finite bounds.
func (elementFactory) IntervalFinite(low int64, high int64) Interval {
	return newInterval(FiniteBound(low), FiniteBound(high))
}

// IntervalSingleton creates the interval [v, v].
func (elementFactory) IntervalSingleton(v int64) Interval {
	return Interval{low: FiniteBound(v), high: FiniteBound(v)}
}

// Lattice retrieves the interval lattice for any interval.
func (Interval) Lattice() *IntervalLattice {
	return intervalLattice
}

func (e Interval) String() string {
	if e.IsBot() {
		return "⊥"
	}
	return "[" + e.low.String() + ", " + e.high.String() + "]"
}

// IsBot checks that the interval is equal to ⊥ = [∞, -∞].
func (e Interval) IsBot() bool {
	return e == intervalBot
}

// IsTop checks that the interval is equal to ⊤ = [-∞, ∞].
func (e Interval) IsTop() bool {
	return e == intervalTop
}

func (e Interval) Low() IntervalBound {
	return e.low
}

func (e Interval) High() IntervalBound {
	return e.high
}

// Singleton unpacks the value of an interval [c, c].
func (e Interval) Singleton() (int64, bool) {
	l, ok := e.low.(FiniteBound)
	if !ok || !e.high.Eq(l) {
		return 0, false
	}
	return int64(l), true
}

// Finite unpacks both bounds if they are finite.
func (e Interval) Finite() (int64, int64, bool) {
	l, lok := e.low.(FiniteBound)
	h, hok := e.high.(FiniteBound)
	return int64(l), int64(h), lok && hok
}

// Contains checks whether c ∈ e.
func (e Interval) Contains(c int64) bool {
	return e.low.Leq(FiniteBound(c)) && e.high.Geq(FiniteBound(c))
}

// Eq computes m = o.
func (e1 Interval) Eq(e2 Interval) bool {
	return e1.low.Eq(e2.low) && e1.high.Eq(e2.high)
}

// Leq computes m ⊑ o.
func (e1 Interval) Leq(e2 Interval) (bool, error) {
	return e1.MonoLeq(e2), nil
}

// MonoLeq computes m ⊑ o.
func (e1 Interval) MonoLeq(e2 Interval) bool {
	return e1.low.Geq(e2.low) && e1.high.Leq(e2.high)
}

// Join computes m ⊔ o.
func (e1 Interval) Join(e2 Interval) (Interval, error) {
	return e1.MonoJoin(e2), nil
}

// MonoJoin computes m ⊔ o.
// The resulting interval takes the lowest of the lower bounds,
// and the highest of the upper bounds.
func (e1 Interval) MonoJoin(e2 Interval) Interval {
	switch {
	case e1.IsBot():
		return e2
	case e2.IsBot():
		return e1
	}
	return Interval{low: e1.low.Min(e2.low), high: e1.high.Max(e2.high)}
}

// Meet computes m ⊓ o.
func (e1 Interval) Meet(e2 Interval) (Interval, error) {
	return e1.MonoMeet(e2), nil
}

// MonoMeet computes m ⊓ o.
// The highest of the lower bounds and the lowest of the upper bounds
// form the result, which is ⊥ when they do not overlap.
func (e1 Interval) MonoMeet(e2 Interval) Interval {
	return newInterval(e1.low.Max(e2.low), e1.high.Min(e2.high))
}

// Widen computes m ∇ o.
func (e1 Interval) Widen(e2 Interval) (Interval, error) {
	return e1.MonoWiden(e2), nil
}

// MonoWiden computes m ∇ o. A bound of m is kept if o does not exceed it,
// and is otherwise pushed to infinity:
//
//	[l1, h1] ∇ [l2, h2] = [l1 ≤ l2 ? l1 : -∞, h1 ≥ h2 ? h1 : ∞]
func (e1 Interval) MonoWiden(e2 Interval) Interval {
	switch {
	case e1.IsBot():
		return e2
	case e2.IsBot():
		return e1
	}

	low, high := e1.low, e1.high
	if e2.low.Lt(low) {
		low = MinusInfinity{}
	}
	if e2.high.Gt(high) {
		high = PlusInfinity{}
	}
	return Interval{low: low, high: high}
}

// Neg computes -[l, h] = [-h, -l].
func (e Interval) Neg() Interval {
	if e.IsBot() {
		return e
	}
	zero := FiniteBound(0)
	return Interval{low: zero.Minus(e.high), high: zero.Minus(e.low)}
}

// Plus computes [l1, h1] + [l2, h2] = [l1 + l2, h1 + h2].
func (e1 Interval) Plus(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalBot
	}
	return newInterval(e1.low.Plus(e2.low), e1.high.Plus(e2.high))
}

// Minus computes [l1, h1] - [l2, h2] = [l1 - h2, h1 - l2].
func (e1 Interval) Minus(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalBot
	}
	return newInterval(e1.low.Minus(e2.high), e1.high.Minus(e2.low))
}

// Mult computes [l1, h1] * [l2, h2] from the products of the four corners.
func (e1 Interval) Mult(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalBot
	}

	var c corners
	for _, a := range []IntervalBound{e1.low, e1.high} {
		for _, b := range []IntervalBound{e2.low, e2.high} {
			c = c.with(a.Mult(b))
		}
	}
	return c.interval()
}

// Div computes [l1, h1] / [l2, h2] under integer division.
// Division by [0, 0] is ⊥, and otherwise [0, 0] / e = [0, 0].
// A divisor containing 0 is split into its negative and positive
// parts, each of which is divided separately.
func (e1 Interval) Div(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalBot
	}
	if v, ok := e2.Singleton(); ok && v == 0 {
		return intervalBot
	}
	if v, ok := e1.Singleton(); ok && v == 0 {
		return e1
	}

	res := intervalBot
	if neg := e2.MonoMeet(Interval{low: MinusInfinity{}, high: FiniteBound(-1)}); !neg.IsBot() {
		res = res.MonoJoin(e1.divNonZero(neg))
	}
	if pos := e2.MonoMeet(Interval{low: FiniteBound(1), high: PlusInfinity{}}); !pos.IsBot() {
		res = res.MonoJoin(e1.divNonZero(pos))
	}
	return res
}

// divNonZero divides by an interval not containing 0. Quotients of
// finite corners are rounded outward.
func (e1 Interval) divNonZero(e2 Interval) Interval {
	var c corners
	for _, a := range []IntervalBound{e1.low, e1.high} {
		for _, b := range []IntervalBound{e2.low, e2.high} {
			x, xok := a.(FiniteBound)
			y, yok := b.(FiniteBound)
			switch {
			case xok && yok:
				c = c.with(floorDiv(x, y)).with(ceilDiv(x, y))
			case a.IsInfinite() && b.IsInfinite():
				// Unbounded dividends and divisors may approach any
				// quotient between 0 and the signed infinity.
				c = c.with(FiniteBound(0)).with(infinity(a.sign() * b.sign()))
			default:
				c = c.with(a.Div(b))
			}
		}
	}
	return c.interval()
}

func floorDiv(x, y FiniteBound) IntervalBound {
	q := x.Div(y)
	if q, ok := q.(FiniteBound); ok && x%y != 0 && (x < 0) != (y < 0) {
		return q - 1
	}
	return q
}

func ceilDiv(x, y FiniteBound) IntervalBound {
	q := x.Div(y)
	if q, ok := q.(FiniteBound); ok && x%y != 0 && (x < 0) == (y < 0) {
		return q + 1
	}
	return q
}

// corners collects candidate bounds of an arithmetic result. Infinite
// candidates are recorded as flags and finite ones kept for sorting.
type corners struct {
	lowUnbounded, highUnbounded bool
	candidates                  []int64
}

func (c corners) with(b IntervalBound) corners {
	switch b := b.(type) {
	case FiniteBound:
		c.candidates = append(slices.Clip(c.candidates), int64(b))
	case MinusInfinity:
		c.lowUnbounded = true
	case PlusInfinity:
		c.highUnbounded = true
	}
	return c
}

func (c corners) interval() Interval {
	if len(c.candidates) == 0 {
		return intervalTop
	}
	sorted := slices.Clone(c.candidates)
	slices.Sort(sorted)

	var low, high IntervalBound = FiniteBound(sorted[0]), FiniteBound(sorted[len(sorted)-1])
	if c.lowUnbounded {
		low = MinusInfinity{}
	}
	if c.highUnbounded {
		high = PlusInfinity{}
	}
	return newInterval(low, high)
}

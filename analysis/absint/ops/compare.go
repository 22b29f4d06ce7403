package ops

import (
	"go/token"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
)

var elements = L.Create().Element()

// IntervalCompare decides `v1 op v2` from the bounds of both intervals.
func IntervalCompare(op token.Token, v1, v2 L.Interval) L.Satisfiability {
	switch op {
	case token.LSS:
		switch {
		case v1.High().Lt(v2.Low()):
			return L.Satisfied
		case v1.Low().Geq(v2.High()):
			return L.NotSatisfied
		}
	case token.LEQ:
		switch {
		case v1.High().Leq(v2.Low()):
			return L.Satisfied
		case v1.Low().Gt(v2.High()):
			return L.NotSatisfied
		}
	case token.GTR:
		return IntervalCompare(token.LSS, v2, v1)
	case token.GEQ:
		return IntervalCompare(token.LEQ, v2, v1)
	case token.EQL:
		c1, ok1 := v1.Singleton()
		c2, ok2 := v2.Singleton()
		switch {
		case ok1 && ok2 && c1 == c2:
			return L.Satisfied
		case v1.MonoMeet(v2).IsBot():
			return L.NotSatisfied
		}
	case token.NEQ:
		return IntervalCompare(token.EQL, v1, v2).Negate()
	}
	return L.Unknown
}

// IntervalRefine narrows x under the assumption that `x op v` holds.
func IntervalRefine(op token.Token, x, v L.Interval) L.Interval {
	one := L.FiniteBound(1)

	switch op {
	case token.EQL:
		return x.MonoMeet(v)
	case token.NEQ:
		c, ok := v.Singleton()
		if !ok {
			return x
		}
		low, high := x.Low(), x.High()
		if low.Eq(L.FiniteBound(c)) {
			low = low.Plus(one)
		}
		if high.Eq(L.FiniteBound(c)) {
			high = high.Minus(one)
		}
		return elements.Interval(low, high)
	case token.LSS:
		return x.MonoMeet(elements.Interval(L.MinusInfinity{}, v.High().Minus(one)))
	case token.LEQ:
		return x.MonoMeet(elements.Interval(L.MinusInfinity{}, v.High()))
	case token.GTR:
		return x.MonoMeet(elements.Interval(v.Low().Plus(one), L.PlusInfinity{}))
	case token.GEQ:
		return x.MonoMeet(elements.Interval(v.Low(), L.PlusInfinity{}))
	}
	return x
}

// ParityCompare decides `v1 op v2`. Only disequalities between distinct
// parities are decided.
func ParityCompare(op token.Token, v1, v2 L.Parity) L.Satisfiability {
	if v1.IsBot() || v2.IsBot() || !v1.MonoMeet(v2).IsBot() {
		return L.Unknown
	}
	switch op {
	case token.EQL:
		return L.NotSatisfied
	case token.NEQ:
		return L.Satisfied
	}
	return L.Unknown
}

// ParityRefine narrows x under the assumption that `x op v` holds.
func ParityRefine(op token.Token, x, v L.Parity) L.Parity {
	if op == token.EQL {
		return x.MonoMeet(v)
	}
	return x
}

package ops

import (
	"go/token"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
)

// IntervalUnOp encodes the semantics of arithmetic unary operations over
// intervals. Unsupported operations yield ⊤ and false.
func IntervalUnOp(op token.Token, v L.Interval) (L.Interval, bool) {
	switch op {
	case token.ADD:
		return v, true
	case token.SUB:
		return v.Neg(), true
	}
	return L.Create().Lattice().Interval().Top(), false
}

// ParityUnOp encodes the semantics of arithmetic unary operations over
// parities. Negation preserves parity.
func ParityUnOp(op token.Token, v L.Parity) (L.Parity, bool) {
	switch op {
	case token.ADD:
		return v, true
	case token.SUB:
		return v.Neg(), true
	}
	return L.ParityTop, false
}

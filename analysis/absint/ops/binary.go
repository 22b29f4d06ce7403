package ops

import (
	"go/token"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
)

// IntervalBinOp encodes the semantics of arithmetic binary operations over
// intervals. It returns the resulting interval, and true if the operation
// is supported, or ⊤ and false otherwise.
func IntervalBinOp(op token.Token, v1, v2 L.Interval) (result L.Interval, supported bool) {
	supported = true
	switch op {
	case token.ADD:
		result = v1.Plus(v2)
	case token.SUB:
		result = v1.Minus(v2)
	case token.MUL:
		result = v1.Mult(v2)
	case token.QUO:
		result = v1.Div(v2)
	case token.REM:
		// Remainders are only refined by a product with parities.
		result = L.Create().Lattice().Interval().Top()
	default:
		return L.Create().Lattice().Interval().Top(), false
	}
	return
}

// ParityBinOp encodes the semantics of arithmetic binary operations over
// parities. It returns the resulting parity, and true if the operation is
// supported, or ⊤ and false otherwise.
func ParityBinOp(op token.Token, v1, v2 L.Parity) (result L.Parity, supported bool) {
	supported = true
	switch op {
	case token.ADD:
		result = v1.Plus(v2)
	case token.SUB:
		result = v1.Minus(v2)
	case token.MUL:
		result = v1.Mult(v2)
	case token.QUO:
		result = v1.Div(v2)
	case token.REM:
		result = v1.Rem(v2)
	default:
		return L.ParityTop, false
	}
	return
}

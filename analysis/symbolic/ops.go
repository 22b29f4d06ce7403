package symbolic

import "go/token"

// IsArithmetic holds for the integer operators modelled by numeric domains.
func IsArithmetic(op token.Token) bool {
	switch op {
	case token.ADD, token.SUB, token.MUL, token.QUO, token.REM:
		return true
	}
	return false
}

// IsComparison holds for ==, !=, <, <=, > and >=.
func IsComparison(op token.Token) bool {
	switch op {
	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
		return true
	}
	return false
}

// IsLogical holds for &&, || and !.
func IsLogical(op token.Token) bool {
	switch op {
	case token.LAND, token.LOR, token.NOT:
		return true
	}
	return false
}

// Mirror yields the comparison obtained by swapping the operands, e.g.
// `a < b` iff `b > a`.
func Mirror(op token.Token) token.Token {
	switch op {
	case token.LSS:
		return token.GTR
	case token.LEQ:
		return token.GEQ
	case token.GTR:
		return token.LSS
	case token.GEQ:
		return token.LEQ
	}
	return op
}

// Complement yields the comparison holding exactly when op does not, e.g.
// `!(a < b)` iff `a >= b`.
func Complement(op token.Token) token.Token {
	switch op {
	case token.EQL:
		return token.NEQ
	case token.NEQ:
		return token.EQL
	case token.LSS:
		return token.GEQ
	case token.LEQ:
		return token.GTR
	case token.GTR:
		return token.LEQ
	case token.GEQ:
		return token.LSS
	}
	return token.ILLEGAL
}

// Negate pushes a logical negation through an expression using De Morgan's
// laws and comparison complements. Expressions that cannot be negated
// structurally are wrapped in a `!` node.
func Negate(e Expression) Expression {
	switch e := e.(type) {
	case Constant:
		if b, ok := e.Bool(); ok {
			return Bool(!b)
		}
	case UnaryExpression:
		if e.Op == token.NOT {
			return e.Arg
		}
	case BinaryExpression:
		switch {
		case e.Op == token.LAND:
			return Binary(token.LOR, Negate(e.Left), Negate(e.Right))
		case e.Op == token.LOR:
			return Binary(token.LAND, Negate(e.Left), Negate(e.Right))
		case IsComparison(e.Op):
			return Binary(Complement(e.Op), e.Left, e.Right)
		}
	}
	return Unary(token.NOT, e)
}

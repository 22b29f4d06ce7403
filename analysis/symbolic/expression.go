package symbolic

import (
	"go/constant"
	"go/token"
	"strings"
)

// Expression is a symbolic expression over program identifiers.
// The set of expression nodes is closed: Constant, Identifier,
// UnaryExpression and BinaryExpression.
type Expression interface {
	String() string
	expression()
}

type (
	// Constant is a literal value. A Constant with a nil value
	// is the null constant.
	Constant struct {
		Value constant.Value
	}

	// Identifier names a program variable.
	Identifier string

	// UnaryExpression applies Op to Arg.
	UnaryExpression struct {
		Op  token.Token
		Arg Expression
	}

	// BinaryExpression applies Op to Left and Right.
	BinaryExpression struct {
		Op          token.Token
		Left, Right Expression
	}
)

func (Constant) expression()         {}
func (Identifier) expression()       {}
func (UnaryExpression) expression()  {}
func (BinaryExpression) expression() {}

// Int creates an integer constant.
func Int(v int64) Constant {
	return Constant{constant.MakeInt64(v)}
}

// Bool creates a boolean constant.
func Bool(b bool) Constant {
	return Constant{constant.MakeBool(b)}
}

// Null is the constant without a value.
var Null = Constant{}

// Unary creates the expression `op arg`.
func Unary(op token.Token, arg Expression) UnaryExpression {
	return UnaryExpression{Op: op, Arg: arg}
}

// Binary creates the expression `left op right`.
func Binary(op token.Token, left, right Expression) BinaryExpression {
	return BinaryExpression{Op: op, Left: left, Right: right}
}

// Int64 extracts the value of an integer constant that fits in 64 bits.
func (c Constant) Int64() (int64, bool) {
	if c.Value == nil || c.Value.Kind() != constant.Int {
		return 0, false
	}
	return constant.Int64Val(c.Value)
}

// Bool extracts the value of a boolean constant.
func (c Constant) Bool() (bool, bool) {
	if c.Value == nil || c.Value.Kind() != constant.Bool {
		return false, false
	}
	return constant.BoolVal(c.Value), true
}

// IsNull checks whether the constant carries no value.
func (c Constant) IsNull() bool {
	return c.Value == nil
}

func (c Constant) String() string {
	if c.Value == nil {
		return "nil"
	}
	return c.Value.ExactString()
}

func (id Identifier) String() string {
	return string(id)
}

func (e UnaryExpression) String() string {
	arg := "<nil>"
	if e.Arg != nil {
		arg = e.Arg.String()
	}
	if _, ok := e.Arg.(BinaryExpression); ok {
		arg = "(" + arg + ")"
	}
	return e.Op.String() + arg
}

func (e BinaryExpression) String() string {
	operand := func(x Expression) string {
		switch x := x.(type) {
		case nil:
			return "<nil>"
		case BinaryExpression:
			return "(" + x.String() + ")"
		default:
			return x.String()
		}
	}
	return strings.Join([]string{operand(e.Left), e.Op.String(), operand(e.Right)}, " ")
}

// Identifiers collects the identifiers occurring in an expression, in
// order of first occurrence.
func Identifiers(e Expression) (ids []Identifier) {
	seen := map[Identifier]bool{}
	var visit func(Expression)
	visit = func(e Expression) {
		switch e := e.(type) {
		case Identifier:
			if !seen[e] {
				seen[e] = true
				ids = append(ids, e)
			}
		case UnaryExpression:
			visit(e.Arg)
		case BinaryExpression:
			visit(e.Left)
			visit(e.Right)
		}
	}
	visit(e)
	return
}

package script

import (
	"go/token"

	"github.com/cs-au-dk/absdom/analysis/symbolic"
)

// Kind distinguishes the statements of a script.
type Kind int

const (
	// Assign binds Target to the value of Expr.
	Assign Kind = iota
	// Assume narrows the state with the guard Expr.
	Assume
	// Check decides whether the state satisfies Expr.
	Check
	// Eval computes the value of Expr.
	Eval
)

// Statement is a single step of a straight-line program. Statements are
// program points, located at Position.
type Statement struct {
	Kind     Kind
	Target   symbolic.Identifier
	Expr     symbolic.Expression
	Line     int
	Position token.Pos
}

func (s Statement) Pos() token.Pos {
	return s.Position
}

func (s Statement) String() string {
	switch s.Kind {
	case Assign:
		return string(s.Target) + " = " + s.Expr.String()
	case Assume:
		return "assume(" + s.Expr.String() + ")"
	case Check:
		return "check(" + s.Expr.String() + ")"
	}
	return "eval(" + s.Expr.String() + ")"
}

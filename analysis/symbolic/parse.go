package symbolic

import (
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"

	"github.com/pkg/errors"
)

// ParseExpr parses a Go expression into a symbolic expression.
func ParseExpr(src string) (Expression, error) {
	e, err := parser.ParseExpr(src)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", src)
	}
	return FromAST(e)
}

// FromAST translates a Go syntax tree expression. Only integer and boolean
// literals, identifiers, and the arithmetic, comparison and logical
// operators are supported.
func FromAST(e ast.Expr) (Expression, error) {
	switch e := e.(type) {
	case *ast.ParenExpr:
		return FromAST(e.X)

	case *ast.BasicLit:
		if e.Kind != token.INT {
			return nil, errors.Wrapf(ErrUnsupportedSyntax, "literal %s", e.Value)
		}
		v := constant.MakeFromLiteral(e.Value, e.Kind, 0)
		if v.Kind() == constant.Unknown {
			return nil, errors.Wrapf(ErrUnsupportedSyntax, "malformed literal %s", e.Value)
		}
		return Constant{v}, nil

	case *ast.Ident:
		switch e.Name {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		case "nil":
			return Null, nil
		}
		return Identifier(e.Name), nil

	case *ast.UnaryExpr:
		switch e.Op {
		case token.ADD, token.SUB, token.NOT:
		default:
			return nil, errors.Wrapf(ErrUnsupportedSyntax, "unary operator %s", e.Op)
		}
		arg, err := FromAST(e.X)
		if err != nil {
			return nil, err
		}
		return Unary(e.Op, arg), nil

	case *ast.BinaryExpr:
		if !IsArithmetic(e.Op) && !IsComparison(e.Op) && !IsLogical(e.Op) {
			return nil, errors.Wrapf(ErrUnsupportedSyntax, "binary operator %s", e.Op)
		}
		left, err := FromAST(e.X)
		if err != nil {
			return nil, err
		}
		right, err := FromAST(e.Y)
		if err != nil {
			return nil, err
		}
		return Binary(e.Op, left, right), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedSyntax, "expression of type %T", e)
}

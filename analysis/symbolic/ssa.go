package symbolic

import (
	"go/token"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/ssa"
)

// FromSSA translates the definition of an SSA value into a symbolic
// expression. Constants and arithmetic or comparison instructions are
// translated one level deep, with operands named after their SSA registers.
// Any other value is opaque and becomes the identifier of its register.
// The types of all identifiers produced are recorded in the registry.
func FromSSA(v ssa.Value, reg *Registry) (Expression, error) {
	switch v := v.(type) {
	case *ssa.BinOp:
		if !IsArithmetic(v.Op) && !IsComparison(v.Op) {
			break
		}
		left, err := operand(v.X, reg)
		if err != nil {
			return nil, err
		}
		right, err := operand(v.Y, reg)
		if err != nil {
			return nil, err
		}
		return Binary(v.Op, left, right), nil

	case *ssa.UnOp:
		if v.Op != token.SUB && v.Op != token.NOT {
			break
		}
		arg, err := operand(v.X, reg)
		if err != nil {
			return nil, err
		}
		return Unary(v.Op, arg), nil
	}
	return operand(v, reg)
}

// operand yields the constant or register named by an SSA value.
func operand(v ssa.Value, reg *Registry) (Expression, error) {
	switch v := v.(type) {
	case nil:
		return nil, errors.Wrap(ErrUnsupportedSyntax, "nil SSA value")
	case *ssa.Const:
		if v.Value == nil {
			return Null, nil
		}
		return Constant{v.Value}, nil
	}

	id := Identifier(v.Name())
	if reg != nil {
		if err := reg.Register(id, v.Type()); err != nil {
			return nil, err
		}
	}
	return id, nil
}

package symbolic

import (
	"go/token"

	"github.com/pkg/errors"
)

var (
	ErrUnsupportedSyntax = errors.New("unsupported syntax")
	ErrFrozenRegistry    = errors.New("registry is frozen")
)

// ProgramPoint identifies the location at which an expression is evaluated.
// Every SSA instruction and value with a position satisfies it.
type ProgramPoint interface {
	Pos() token.Pos
}

// Point is a program point given by a bare source position.
type Point token.Pos

// NoPoint is used when an expression is not tied to any location.
const NoPoint = Point(token.NoPos)

func (p Point) Pos() token.Pos {
	return token.Pos(p)
}

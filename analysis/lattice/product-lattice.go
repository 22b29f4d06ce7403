package lattice

import (
	"github.com/cs-au-dk/absdom/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = utils.Logger()

// Reduction exchanges information between the components of a product.
// RhoLeft sharpens the left component using the right one, and RhoRight
// does the converse. Both must be reductive: their results are below
// their respective arguments.
type Reduction[A Element[A], B Element[B]] interface {
	RhoLeft(a A, b B) A
	RhoRight(a A, b B) B
}

// ProductLattice is the reduced cartesian product of two lattices.
// Every product element it creates is reduced, i.e. a fixpoint of
// its Granger reduction.
type ProductLattice[A Element[A], B Element[B]] struct {
	left      Lattice[A]
	right     Lattice[B]
	reduction Reduction[A, B]
}

// MakeProduct creates the product of two lattices. A nil reduction gives
// the plain cartesian product.
func MakeProduct[A Element[A], B Element[B]](left Lattice[A], right Lattice[B], reduction Reduction[A, B]) *ProductLattice[A, B] {
	return &ProductLattice[A, B]{left: left, right: right, reduction: reduction}
}

func (l *ProductLattice[A, B]) Left() Lattice[A] {
	return l.left
}

func (l *ProductLattice[A, B]) Right() Lattice[B] {
	return l.right
}

// Top yields (⊤, ⊤).
func (l *ProductLattice[A, B]) Top() Product[A, B] {
	return Product[A, B]{lattice: l, left: l.left.Top(), right: l.right.Top()}
}

// Bot yields (⊥, ⊥).
func (l *ProductLattice[A, B]) Bot() Product[A, B] {
	return Product[A, B]{lattice: l, left: l.left.Bot(), right: l.right.Bot()}
}

func (l *ProductLattice[A, B]) String() string {
	return l.left.String() + " × " + l.right.String()
}

// Make creates the reduced product element of a and b.
func (l *ProductLattice[A, B]) Make(a A, b B) (Product[A, B], error) {
	a, b, err := l.Reduce(a, b)
	if err != nil {
		return l.Bot(), err
	}
	return Product[A, B]{lattice: l, left: a, right: b}, nil
}

// Reduce runs Granger's reduction until neither component changes:
//
//	a' = ρL(a, b), b' = ρR(a, b), until (a', b') = (a, b)
//
// A bottom component makes both components bottom. The number of rounds is
// bounded by the max-reduction-rounds option, and exceeding it is reported
// as ErrReductionDiverged.
func (l *ProductLattice[A, B]) Reduce(a A, b B) (A, B, error) {
	limit := opts.MaxReductionRounds()
	for round := 0; ; round++ {
		if a.IsBot() || b.IsBot() {
			return l.left.Bot(), l.right.Bot(), nil
		}
		if l.reduction == nil {
			return a, b, nil
		}
		if round >= limit {
			return a, b, errors.Wrapf(ErrReductionDiverged, "(%s, %s) after %d rounds", a, b, round)
		}

		a1 := l.reduction.RhoLeft(a, b)
		b1 := l.reduction.RhoRight(a, b)
		if logger.IsLevelEnabled(logrus.TraceLevel) {
			logger.Tracef("reduction round %d: (%s, %s) → (%s, %s)", round, a, b, a1, b1)
		}
		if a1.Eq(a) && b1.Eq(b) {
			return a, b, nil
		}
		a, b = a1, b1
	}
}

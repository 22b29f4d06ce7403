package lattice

import (
	"fmt"

	"github.com/cs-au-dk/absdom/utils"
	"github.com/pkg/errors"
)

var opts = utils.Opts()

var (
	// ErrDomainMismatch is raised when the operands of a binary lattice
	// operation were built over incompatible configurations.
	ErrDomainMismatch = errors.New("domain mismatch")
	// ErrReductionDiverged is raised when a reduced product does not reach
	// a fixpoint within the configured number of rounds.
	ErrReductionDiverged = errors.New("reduction diverged")
)

// SemanticError reports an expression the evaluator cannot traverse.
type SemanticError struct {
	Expr   fmt.Stringer
	Reason string
}

func (e *SemanticError) Error() string {
	if e.Expr == nil {
		return "malformed expression: " + e.Reason
	}
	return fmt.Sprintf("malformed expression %s: %s", e.Expr, e.Reason)
}

// Element is implemented by every member of a lattice. E is the concrete
// element type, so operations return values of the same domain.
type Element[E any] interface {
	// Join computes the least upper bound e ⊔ o.
	Join(E) (E, error)
	// Meet computes the greatest lower bound e ⊓ o.
	Meet(E) (E, error)
	// Widen computes e ∇ o, an upper bound of both operands such that
	// any chain built by repeated widening stabilizes.
	Widen(E) (E, error)
	// Leq computes e ⊑ o.
	Leq(E) (bool, error)
	// Eq checks for equality. Elements of mismatched domains are never equal.
	Eq(E) bool

	IsTop() bool
	IsBot() bool

	String() string
}

// Lattice gives access to the extremal elements of a lattice.
type Lattice[E Element[E]] interface {
	Top() E
	Bot() E
	String() string
}

// mismatch builds a domain mismatch error for the given operation.
func mismatch(op string, a, b fmt.Stringer) error {
	return errors.Wrapf(ErrDomainMismatch, "%s %s %s", a, op, b)
}

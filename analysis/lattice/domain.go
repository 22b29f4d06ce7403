package lattice

import "github.com/cs-au-dk/absdom/analysis/symbolic"

// ValueDomain gives the semantics of expressions over a non-relational
// abstraction E. Implementations are read-only after construction and may
// be shared between goroutines.
type ValueDomain[E Element[E]] interface {
	Lattice[E]

	// Eval computes the abstract value of an expression. Operators and
	// operands the domain does not model evaluate to top. Only malformed
	// expressions produce an error.
	Eval(expr symbolic.Expression, env Environment[E], pp symbolic.ProgramPoint) (E, error)

	// Assume narrows env under the assumption that expr holds.
	// Unrecognized guards leave env unchanged.
	Assume(env Environment[E], expr symbolic.Expression, pp symbolic.ProgramPoint) (Environment[E], error)

	// Satisfies decides whether env entails or refutes expr.
	Satisfies(expr symbolic.Expression, env Environment[E], pp symbolic.ProgramPoint) (Satisfiability, error)
}

package absint

import (
	"fmt"
	"go/token"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
	"github.com/sirupsen/logrus"
)

// Transfer is the per-operator semantics of a non-relational domain.
// Operations returning false are not modeled, and their result is
// replaced by ⊤. Operands are never ⊥.
type Transfer[E L.Element[E]] interface {
	L.Lattice[E]

	Constant(symbolic.Constant) (E, bool)
	UnOp(token.Token, E) (E, bool)
	BinOp(token.Token, E, E) (E, bool)
	// Compare decides the comparison `v1 op v2`.
	Compare(op token.Token, v1, v2 E) L.Satisfiability
	// Refine narrows x under the assumption that `x op v` holds.
	Refine(op token.Token, x, v E) E
}

// GuardHook is implemented by transfer functions that recognize guards of
// a shape the generic comparison handling does not see. The boolean result
// reports whether the guard was recognized.
type GuardHook[E L.Element[E]] interface {
	AssumeGuard(d *NonRelational[E], env L.Environment[E], guard symbolic.BinaryExpression, pp symbolic.ProgramPoint) (L.Environment[E], bool, error)
	SatisfiesGuard(d *NonRelational[E], guard symbolic.BinaryExpression, env L.Environment[E], pp symbolic.ProgramPoint) (L.Satisfiability, bool, error)
}

// NonRelational lifts a Transfer to a value domain tracking every numeric
// identifier independently. Identifiers the registry knows to be
// non-numeric are always ⊤.
type NonRelational[E L.Element[E]] struct {
	Transfer[E]
	name     string
	registry *symbolic.Registry
}

func (d *NonRelational[E]) String() string {
	return d.name
}

// Registry retrieves the registry consulted for identifier types.
func (d *NonRelational[E]) Registry() *symbolic.Registry {
	return d.registry
}

func (d *NonRelational[E]) tracks(id symbolic.Identifier) bool {
	return d.registry.IsNumeric(id)
}

func (d *NonRelational[E]) unmodeled(expr symbolic.Expression, pp symbolic.ProgramPoint) {
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.Debugf("%s: %s at %d is not modeled, using ⊤", d.name, expr, position(pp))
	}
}

func malformed(expr symbolic.Expression) error {
	if expr == nil {
		return &L.SemanticError{Reason: "missing expression"}
	}
	return &L.SemanticError{Expr: expr, Reason: fmt.Sprintf("unknown expression node %T", expr)}
}

// Eval computes the abstract value of an expression by structural recursion.
func (d *NonRelational[E]) Eval(expr symbolic.Expression, env L.Environment[E], pp symbolic.ProgramPoint) (E, error) {
	switch expr := expr.(type) {
	case symbolic.Constant:
		if v, ok := d.Constant(expr); ok {
			return v, nil
		}
	case symbolic.Identifier:
		if !d.tracks(expr) {
			return d.Top(), nil
		}
		return env.Get(expr), nil
	case symbolic.UnaryExpression:
		arg, err := d.Eval(expr.Arg, env, pp)
		if err != nil || arg.IsBot() {
			return arg, err
		}
		if v, ok := d.UnOp(expr.Op, arg); ok {
			return v, nil
		}
	case symbolic.BinaryExpression:
		left, err := d.Eval(expr.Left, env, pp)
		if err != nil {
			return left, err
		}
		right, err := d.Eval(expr.Right, env, pp)
		if err != nil {
			return right, err
		}
		if left.IsBot() || right.IsBot() {
			return d.Bot(), nil
		}
		if v, ok := d.BinOp(expr.Op, left, right); ok {
			return v, nil
		}
	default:
		return d.Bot(), malformed(expr)
	}

	d.unmodeled(expr, pp)
	return d.Top(), nil
}

// Satisfies decides a boolean expression. Comparisons are decided by the
// transfer functions, and logical connectives are combined.
func (d *NonRelational[E]) Satisfies(expr symbolic.Expression, env L.Environment[E], pp symbolic.ProgramPoint) (L.Satisfiability, error) {
	if env.IsBot() {
		return L.Unknown, nil
	}

	switch expr := expr.(type) {
	case symbolic.Constant:
		if b, ok := expr.Bool(); ok {
			if b {
				return L.Satisfied, nil
			}
			return L.NotSatisfied, nil
		}
	case symbolic.Identifier:
	case symbolic.UnaryExpression:
		if expr.Op == token.NOT {
			s, err := d.Satisfies(expr.Arg, env, pp)
			return s.Negate(), err
		}
	case symbolic.BinaryExpression:
		switch {
		case expr.Op == token.LAND || expr.Op == token.LOR:
			left, err := d.Satisfies(expr.Left, env, pp)
			if err != nil {
				return L.Unknown, err
			}
			right, err := d.Satisfies(expr.Right, env, pp)
			if err != nil {
				return L.Unknown, err
			}
			if expr.Op == token.LAND {
				return left.And(right), nil
			}
			return left.Or(right), nil
		case symbolic.IsComparison(expr.Op):
			if hook, ok := d.Transfer.(GuardHook[E]); ok {
				if s, recognized, err := hook.SatisfiesGuard(d, expr, env, pp); err != nil || recognized {
					return s, err
				}
			}
			left, err := d.Eval(expr.Left, env, pp)
			if err != nil {
				return L.Unknown, err
			}
			right, err := d.Eval(expr.Right, env, pp)
			if err != nil {
				return L.Unknown, err
			}
			if left.IsBot() || right.IsBot() {
				return L.Unknown, nil
			}
			return d.Compare(expr.Op, left, right), nil
		}
	default:
		return L.Unknown, malformed(expr)
	}
	return L.Unknown, nil
}

// Assume narrows env under the assumption that expr holds. Conjunctions
// are assumed in sequence, and disjunctions are assumed separately and
// joined. A refuted guard yields the ⊥ environment.
func (d *NonRelational[E]) Assume(env L.Environment[E], expr symbolic.Expression, pp symbolic.ProgramPoint) (L.Environment[E], error) {
	if env.IsBot() {
		return env, nil
	}

	switch expr := expr.(type) {
	case symbolic.Constant:
		if b, ok := expr.Bool(); ok && !b {
			return L.BotEnvironment[E](d), nil
		}
	case symbolic.Identifier:
	case symbolic.UnaryExpression:
		if expr.Op != token.NOT {
			break
		}
		// Push the negation inwards. Negations that cannot be pushed
		// are not recognized.
		neg := symbolic.Negate(expr.Arg)
		if u, ok := neg.(symbolic.UnaryExpression); !ok || u.Op != token.NOT {
			return d.Assume(env, neg, pp)
		}
	case symbolic.BinaryExpression:
		switch {
		case expr.Op == token.LAND:
			env, err := d.Assume(env, expr.Left, pp)
			if err != nil {
				return env, err
			}
			return d.Assume(env, expr.Right, pp)
		case expr.Op == token.LOR:
			left, err := d.Assume(env, expr.Left, pp)
			if err != nil {
				return env, err
			}
			right, err := d.Assume(env, expr.Right, pp)
			if err != nil {
				return env, err
			}
			return left.Join(right)
		case symbolic.IsComparison(expr.Op):
			return d.assumeComparison(env, expr, pp)
		}
	default:
		return env, malformed(expr)
	}
	return env, nil
}

func (d *NonRelational[E]) assumeComparison(env L.Environment[E], cmp symbolic.BinaryExpression, pp symbolic.ProgramPoint) (L.Environment[E], error) {
	if hook, ok := d.Transfer.(GuardHook[E]); ok {
		if res, recognized, err := hook.AssumeGuard(d, env, cmp, pp); err != nil || recognized {
			return res, err
		}
	}

	switch s, err := d.Satisfies(cmp, env, pp); {
	case err != nil:
		return env, err
	case s == L.NotSatisfied:
		return L.BotEnvironment[E](d), nil
	case s == L.Satisfied:
		return env, nil
	}

	// Identifier operands are narrowed by the value of the other side.
	if id, ok := cmp.Left.(symbolic.Identifier); ok && d.tracks(id) {
		v, err := d.Eval(cmp.Right, env, pp)
		if err != nil {
			return env, err
		}
		env = env.Update(id, d.Refine(cmp.Op, env.Get(id), v))
	}
	if id, ok := cmp.Right.(symbolic.Identifier); ok && d.tracks(id) {
		v, err := d.Eval(cmp.Left, env, pp)
		if err != nil {
			return env, err
		}
		env = env.Update(id, d.Refine(symbolic.Mirror(cmp.Op), env.Get(id), v))
	}
	return env, nil
}

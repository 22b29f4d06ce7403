package absint

import (
	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
	"github.com/pkg/errors"
)

// ProductDomain is the reduced product of two value domains. Expressions
// are evaluated by both components, after which the results are refined
// by PostEval and reduced.
type ProductDomain[A L.Element[A], B L.Element[B]] struct {
	*L.ProductLattice[A, B]
	left  L.ValueDomain[A]
	right L.ValueDomain[B]

	// PostEval refines the component values a and b of expr with facts
	// neither component can derive alone. It may be nil.
	PostEval func(d *ProductDomain[A, B], expr symbolic.Expression, env L.Environment[L.Product[A, B]], pp symbolic.ProgramPoint, a A, b B) (A, B, error)
	// SatisfiesHook decides guards for which a single component is
	// precise enough. It reports false for guards it does not recognize.
	// It may be nil.
	SatisfiesHook func(d *ProductDomain[A, B], expr symbolic.Expression, env L.Environment[L.Product[A, B]], pp symbolic.ProgramPoint) (L.Satisfiability, bool, error)
}

// MakeProductDomain combines two value domains over the given product lattice.
func MakeProductDomain[A L.Element[A], B L.Element[B]](
	lattice *L.ProductLattice[A, B],
	left L.ValueDomain[A],
	right L.ValueDomain[B],
) *ProductDomain[A, B] {
	return &ProductDomain[A, B]{ProductLattice: lattice, left: left, right: right}
}

func (d *ProductDomain[A, B]) LeftDomain() L.ValueDomain[A] {
	return d.left
}

func (d *ProductDomain[A, B]) RightDomain() L.ValueDomain[B] {
	return d.right
}

// Split separates an environment of products into the environments of
// its components.
func (d *ProductDomain[A, B]) Split(env L.Environment[L.Product[A, B]]) (L.Environment[A], L.Environment[B]) {
	if env.IsBot() {
		return L.BotEnvironment(d.left), L.BotEnvironment(d.right)
	}

	a, b := L.NewEnvironment(d.left), L.NewEnvironment(d.right)
	env.ForEach(func(id symbolic.Identifier, p L.Product[A, B]) {
		a = a.Update(id, p.Left())
		b = b.Update(id, p.Right())
	})
	return a, b
}

// Zip pairs the bindings of two component environments, reducing every
// pair. Identifiers bound in only one of them are paired with ⊤.
func (d *ProductDomain[A, B]) Zip(a L.Environment[A], b L.Environment[B]) (L.Environment[L.Product[A, B]], error) {
	if a.IsBot() || b.IsBot() {
		return L.BotEnvironment[L.Product[A, B]](d), nil
	}

	res := L.NewEnvironment[L.Product[A, B]](d)
	for _, id := range append(a.Keys(), b.Keys()...) {
		p, err := d.Make(a.Get(id), b.Get(id))
		if err != nil {
			return res, errors.WithMessagef(err, "binding of %s", id)
		}
		res = res.Update(id, p)
	}
	return res, nil
}

// Eval evaluates expr in both components, then applies PostEval and
// reduction until neither changes the result.
func (d *ProductDomain[A, B]) Eval(expr symbolic.Expression, env L.Environment[L.Product[A, B]], pp symbolic.ProgramPoint) (L.Product[A, B], error) {
	le, re := d.Split(env)
	a, err := d.left.Eval(expr, le, pp)
	if err != nil {
		return d.Bot(), err
	}
	b, err := d.right.Eval(expr, re, pp)
	if err != nil {
		return d.Bot(), err
	}
	if d.PostEval == nil {
		return d.Make(a, b)
	}

	for round, limit := 0, opts.MaxReductionRounds(); round < limit; round++ {
		a1, b1, err := d.PostEval(d, expr, env, pp, a, b)
		if err != nil {
			return d.Bot(), err
		}
		if a1, b1, err = d.Reduce(a1, b1); err != nil {
			return d.Bot(), err
		}
		if a1.Eq(a) && b1.Eq(b) {
			break
		}
		a, b = a1, b1
		if round == limit-1 {
			return d.Bot(), errors.Wrapf(L.ErrReductionDiverged, "evaluating %s", expr)
		}
	}
	return d.Make(a, b)
}

// Assume assumes expr in both components and merges the results.
func (d *ProductDomain[A, B]) Assume(env L.Environment[L.Product[A, B]], expr symbolic.Expression, pp symbolic.ProgramPoint) (L.Environment[L.Product[A, B]], error) {
	if env.IsBot() {
		return env, nil
	}

	le, re := d.Split(env)
	la, err := d.left.Assume(le, expr, pp)
	if err != nil {
		return env, err
	}
	rb, err := d.right.Assume(re, expr, pp)
	if err != nil {
		return env, err
	}
	return d.Zip(la, rb)
}

// Satisfies is the conjunction of the component satisfiabilities, unless
// SatisfiesHook decides expr.
func (d *ProductDomain[A, B]) Satisfies(expr symbolic.Expression, env L.Environment[L.Product[A, B]], pp symbolic.ProgramPoint) (L.Satisfiability, error) {
	if env.IsBot() {
		return L.Unknown, nil
	}
	if d.SatisfiesHook != nil {
		if s, decided, err := d.SatisfiesHook(d, expr, env, pp); err != nil || decided {
			return s, err
		}
	}

	le, re := d.Split(env)
	sl, err := d.left.Satisfies(expr, le, pp)
	if err != nil {
		return L.Unknown, err
	}
	sr, err := d.right.Satisfies(expr, re, pp)
	if err != nil {
		return L.Unknown, err
	}
	return sl.And(sr), nil
}

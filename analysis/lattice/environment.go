package lattice

import (
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
)

type identifierComparer struct{}

func (identifierComparer) Compare(a, b symbolic.Identifier) int {
	return strings.Compare(string(a), string(b))
}

// Environment is an abstract program state mapping identifiers to elements
// of a value domain. It is a lattice under the pointwise order.
//
// Identifiers without a binding are mapped to top, so bindings equal to top
// are never stored. Binding an identifier to bottom makes the whole
// environment bottom, denoting an unreachable state.
type Environment[E Element[E]] struct {
	domain ValueDomain[E]
	bot    bool
	mp     *immutable.SortedMap[symbolic.Identifier, E]
}

// NewEnvironment creates the top environment over a domain.
func NewEnvironment[E Element[E]](domain ValueDomain[E]) Environment[E] {
	return Environment[E]{
		domain: domain,
		mp:     immutable.NewSortedMap[symbolic.Identifier, E](identifierComparer{}),
	}
}

// BotEnvironment creates the bottom environment over a domain.
func BotEnvironment[E Element[E]](domain ValueDomain[E]) Environment[E] {
	env := NewEnvironment(domain)
	env.bot = true
	return env
}

func (env Environment[E]) Domain() ValueDomain[E] {
	return env.domain
}

func (env Environment[E]) IsBot() bool {
	return env.bot
}

func (env Environment[E]) IsTop() bool {
	return !env.bot && env.mp.Len() == 0
}

// Len is the number of identifiers bound to a value other than top.
func (env Environment[E]) Len() int {
	return env.mp.Len()
}

// Get retrieves the value bound to an identifier.
func (env Environment[E]) Get(id symbolic.Identifier) E {
	if env.bot {
		return env.domain.Bot()
	}
	if v, ok := env.mp.Get(id); ok {
		return v
	}
	return env.domain.Top()
}

// Update binds an identifier to a value. This is a strong update.
func (env Environment[E]) Update(id symbolic.Identifier, v E) Environment[E] {
	switch {
	case env.bot:
		return env
	case v.IsBot():
		return BotEnvironment(env.domain)
	case v.IsTop():
		env.mp = env.mp.Delete(id)
	default:
		env.mp = env.mp.Set(id, v)
	}
	return env
}

// Remove forgets everything known about an identifier.
func (env Environment[E]) Remove(id symbolic.Identifier) Environment[E] {
	env.mp = env.mp.Delete(id)
	return env
}

// ForEach visits the bindings in the order of their identifiers.
func (env Environment[E]) ForEach(do func(symbolic.Identifier, E)) {
	for iter := env.mp.Iterator(); !iter.Done(); {
		id, v, _ := iter.Next()
		do(id, v)
	}
}

// Keys lists the bound identifiers in order.
func (env Environment[E]) Keys() []symbolic.Identifier {
	keys := make([]symbolic.Identifier, 0, env.mp.Len())
	env.ForEach(func(id symbolic.Identifier, _ E) {
		keys = append(keys, id)
	})
	return keys
}

func (env Environment[E]) check(op string, o Environment[E]) error {
	if env.domain != o.domain {
		return mismatch(op, env.domain, o.domain)
	}
	return nil
}

// Join computes the pointwise least upper bound. Identifiers bound in only
// one of the environments are top in the result.
func (env Environment[E]) Join(o Environment[E]) (Environment[E], error) {
	return env.upper("⊔", o, func(a, b E) (E, error) { return a.Join(b) })
}

// Widen computes the pointwise widening.
func (env Environment[E]) Widen(o Environment[E]) (Environment[E], error) {
	return env.upper("∇", o, func(a, b E) (E, error) { return a.Widen(b) })
}

func (env Environment[E]) upper(op string, o Environment[E], f func(a, b E) (E, error)) (Environment[E], error) {
	if err := env.check(op, o); err != nil {
		return env, err
	}
	switch {
	case env.bot:
		return o, nil
	case o.bot:
		return env, nil
	}

	res := NewEnvironment(env.domain)
	for iter := env.mp.Iterator(); !iter.Done(); {
		id, a, _ := iter.Next()
		b, ok := o.mp.Get(id)
		if !ok {
			continue
		}
		v, err := f(a, b)
		if err != nil {
			return env, err
		}
		res = res.Update(id, v)
	}
	return res, nil
}

// Meet computes the pointwise greatest lower bound.
func (env Environment[E]) Meet(o Environment[E]) (Environment[E], error) {
	if err := env.check("⊓", o); err != nil {
		return env, err
	}
	if env.bot || o.bot {
		return BotEnvironment(env.domain), nil
	}

	res := env
	for iter := o.mp.Iterator(); !iter.Done() && !res.bot; {
		id, b, _ := iter.Next()
		a, ok := env.mp.Get(id)
		if !ok {
			res = res.Update(id, b)
			continue
		}
		v, err := a.Meet(b)
		if err != nil {
			return env, err
		}
		res = res.Update(id, v)
	}
	return res, nil
}

// Leq computes env ⊑ o pointwise.
func (env Environment[E]) Leq(o Environment[E]) (bool, error) {
	if err := env.check("⊑", o); err != nil {
		return false, err
	}
	switch {
	case env.bot:
		return true, nil
	case o.bot:
		return false, nil
	}

	for iter := o.mp.Iterator(); !iter.Done(); {
		id, b, _ := iter.Next()
		leq, err := env.Get(id).Leq(b)
		if err != nil || !leq {
			return false, err
		}
	}
	return true, nil
}

// Eq checks whether both environments bind the same identifiers to equal values.
func (env Environment[E]) Eq(o Environment[E]) bool {
	if env.domain != o.domain || env.bot != o.bot {
		return false
	}
	if env.bot {
		return true
	}
	if env.mp.Len() != o.mp.Len() {
		return false
	}
	for iter := env.mp.Iterator(); !iter.Done(); {
		id, a, _ := iter.Next()
		b, ok := o.mp.Get(id)
		if !ok || !a.Eq(b) {
			return false
		}
	}
	return true
}

// Eval computes the abstract value of an expression in this state.
func (env Environment[E]) Eval(expr symbolic.Expression, pp symbolic.ProgramPoint) (E, error) {
	if env.bot {
		return env.domain.Bot(), nil
	}
	return env.domain.Eval(expr, env, pp)
}

// Assign binds id to the value of expr.
func (env Environment[E]) Assign(id symbolic.Identifier, expr symbolic.Expression, pp symbolic.ProgramPoint) (Environment[E], error) {
	if env.bot {
		return env, nil
	}
	v, err := env.domain.Eval(expr, env, pp)
	if err != nil {
		return env, err
	}
	return env.Update(id, v), nil
}

// Assume narrows the state under the assumption that expr holds.
func (env Environment[E]) Assume(expr symbolic.Expression, pp symbolic.ProgramPoint) (Environment[E], error) {
	if env.bot {
		return env, nil
	}
	return env.domain.Assume(env, expr, pp)
}

// Satisfies decides expr in this state. Nothing is decided about unreachable states.
func (env Environment[E]) Satisfies(expr symbolic.Expression, pp symbolic.ProgramPoint) (Satisfiability, error) {
	if env.bot {
		return Unknown, nil
	}
	return env.domain.Satisfies(expr, env, pp)
}

// String lists one `id: value` line per binding.
func (env Environment[E]) String() string {
	switch {
	case env.bot:
		return "⊥"
	case env.mp.Len() == 0:
		return "⊤"
	}

	lines := make([]string, 0, env.mp.Len())
	env.ForEach(func(id symbolic.Identifier, v E) {
		lines = append(lines, string(id)+": "+v.String())
	})
	return strings.Join(lines, "\n")
}

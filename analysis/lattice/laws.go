package lattice

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CheckLaws verifies the lattice laws over a set of sample elements,
// together with the lattice's extremal elements. Every violation is
// reported in the returned error.
func CheckLaws[E Element[E]](lat Lattice[E], samples []E) error {
	var result *multierror.Error
	fail := func(format string, args ...interface{}) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}
	leq := func(a, b E) bool {
		res, err := a.Leq(b)
		if err != nil {
			fail("%s ⊑ %s: %v", a, b, err)
		}
		return res
	}
	apply := func(op string, f func(E, E) (E, error), a, b E) (E, bool) {
		res, err := f(a, b)
		if err != nil {
			fail("%s %s %s: %v", a, op, b, err)
			return res, false
		}
		return res, true
	}
	join := func(a, b E) (E, error) { return a.Join(b) }
	meet := func(a, b E) (E, error) { return a.Meet(b) }
	widen := func(a, b E) (E, error) { return a.Widen(b) }

	top, bot := lat.Top(), lat.Bot()
	if !top.IsTop() {
		fail("%s is not top", top)
	}
	if !bot.IsBot() {
		fail("%s is not bottom", bot)
	}

	elements := append([]E{top, bot}, samples...)
	for _, a := range elements {
		if !leq(a, a) {
			fail("%s ⋢ %s", a, a)
		}
		if !leq(bot, a) {
			fail("%s ⋢ %s", bot, a)
		}
		if !leq(a, top) {
			fail("%s ⋢ %s", a, top)
		}
	}

	for _, a := range elements {
		for _, b := range elements {
			ab, jok := apply("⊔", join, a, b)
			ba, ok := apply("⊔", join, b, a)
			if jok && ok && !ab.Eq(ba) {
				fail("%s ⊔ %s = %s, but %s ⊔ %s = %s", a, b, ab, b, a, ba)
			}
			if jok && !(leq(a, ab) && leq(b, ab)) {
				fail("%s ⊔ %s = %s is not an upper bound", a, b, ab)
			}

			mab, mok := apply("⊓", meet, a, b)
			mba, ok := apply("⊓", meet, b, a)
			if mok && ok && !mab.Eq(mba) {
				fail("%s ⊓ %s = %s, but %s ⊓ %s = %s", a, b, mab, b, a, mba)
			}
			if mok && !(leq(mab, a) && leq(mab, b)) {
				fail("%s ⊓ %s = %s is not a lower bound", a, b, mab)
			}

			if wab, ok := apply("∇", widen, a, b); ok && !(leq(a, wab) && leq(b, wab)) {
				fail("%s ∇ %s = %s is not an upper bound", a, b, wab)
			}

			if jok && mok {
				below := leq(a, b)
				if below != ab.Eq(b) || below != mab.Eq(a) {
					fail("order disagrees with ⊔/⊓ on %s and %s: %s ⊑ %s is %v, %s ⊔ %s = %s, %s ⊓ %s = %s",
						a, b, a, b, below, a, b, ab, a, b, mab)
				}
			}
		}
	}

	return result.ErrorOrNil()
}

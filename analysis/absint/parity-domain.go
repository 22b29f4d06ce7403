package absint

import (
	"go/token"

	"github.com/cs-au-dk/absdom/analysis/absint/ops"
	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
)

// ParityDomain tracks whether integer identifiers are even or odd.
type ParityDomain = NonRelational[L.Parity]

type parityTransfer struct {
	*L.ParityLattice
}

func (parityTransfer) Constant(c symbolic.Constant) (L.Parity, bool) {
	if v, ok := c.Int64(); ok {
		return L.ParityOf(v), true
	}
	return L.ParityTop, false
}

func (parityTransfer) UnOp(op token.Token, v L.Parity) (L.Parity, bool) {
	return ops.ParityUnOp(op, v)
}

func (parityTransfer) BinOp(op token.Token, v1, v2 L.Parity) (L.Parity, bool) {
	return ops.ParityBinOp(op, v1, v2)
}

func (parityTransfer) Compare(op token.Token, v1, v2 L.Parity) L.Satisfiability {
	return ops.ParityCompare(op, v1, v2)
}

func (parityTransfer) Refine(op token.Token, x, v L.Parity) L.Parity {
	return ops.ParityRefine(op, x, v)
}

// The remainder modulo 2 is 0 or 1, so the guards `x % 2 == c` and
// `x % 2 != c` determine the parity of x.

func (parityTransfer) AssumeGuard(
	d *ParityDomain,
	env L.Environment[L.Parity],
	guard symbolic.BinaryExpression,
	pp symbolic.ProgramPoint,
) (L.Environment[L.Parity], bool, error) {
	rem, c, ok := modTwoGuard(guard)
	if !ok {
		return env, false, nil
	}
	id, ok := rem.Left.(symbolic.Identifier)
	if !ok || !d.tracks(id) {
		// Other dividends are only checked for satisfiability.
		return env, false, nil
	}

	var p L.Parity
	switch c {
	case 0:
		p = L.Even
	case 1:
		p = L.Odd
	default:
		if guard.Op == token.EQL {
			return L.BotEnvironment[L.Parity](d), true, nil
		}
		return env, true, nil
	}
	if guard.Op == token.NEQ {
		p ^= L.ParityTop
	}
	return env.Update(id, env.Get(id).MonoMeet(p)), true, nil
}

func (parityTransfer) SatisfiesGuard(
	d *ParityDomain,
	guard symbolic.BinaryExpression,
	env L.Environment[L.Parity],
	pp symbolic.ProgramPoint,
) (L.Satisfiability, bool, error) {
	rem, c, ok := modTwoGuard(guard)
	if !ok {
		return L.Unknown, false, nil
	}
	p, err := d.Eval(rem.Left, env, pp)
	if err != nil {
		return L.Unknown, true, err
	}

	var s L.Satisfiability
	switch {
	case c != 0 && c != 1:
		s = L.NotSatisfied
	case p.IsBot() || p.IsTop():
		return L.Unknown, true, nil
	case p == L.ParityOf(c):
		s = L.Satisfied
	default:
		s = L.NotSatisfied
	}
	if guard.Op == token.NEQ {
		s = s.Negate()
	}
	return s, true, nil
}

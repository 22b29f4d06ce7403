package lattice

// Parity is a member of the four-valued parity lattice:
//
//	    ⊤
//	   / \
//	Even  Odd
//	   \ /
//	    ⊥
//
// The encoding makes ⊔ bitwise or, and ⊓ bitwise and.
type Parity uint8

const (
	ParityBot Parity = 0b00
	Even      Parity = 0b01
	Odd       Parity = 0b10
	ParityTop Parity = 0b11
)

// ParityOf abstracts a concrete integer.
func ParityOf(v int64) Parity {
	if v%2 == 0 {
		return Even
	}
	return Odd
}

// Parity creates the parity of a concrete integer.
func (elementFactory) Parity(v int64) Parity {
	return ParityOf(v)
}

// Lattice retrieves the parity lattice for any parity.
func (Parity) Lattice() *ParityLattice {
	return parityLattice
}

func (p Parity) String() string {
	switch p {
	case ParityBot:
		return "⊥"
	case Even:
		return "Even"
	case Odd:
		return "Odd"
	}
	return "⊤"
}

func (p Parity) IsBot() bool {
	return p == ParityBot
}

func (p Parity) IsTop() bool {
	return p == ParityTop
}

// IsEven and IsOdd hold only for the proper elements.
func (p Parity) IsEven() bool {
	return p == Even
}

func (p Parity) IsOdd() bool {
	return p == Odd
}

// Matches checks whether the concrete integer v is described by p.
func (p Parity) Matches(v int64) bool {
	return ParityOf(v)&p != 0
}

func (p1 Parity) Eq(p2 Parity) bool {
	return p1 == p2
}

func (p1 Parity) Leq(p2 Parity) (bool, error) {
	return p1.MonoLeq(p2), nil
}

func (p1 Parity) MonoLeq(p2 Parity) bool {
	return p1&p2 == p1
}

func (p1 Parity) Join(p2 Parity) (Parity, error) {
	return p1.MonoJoin(p2), nil
}

// MonoJoin computes p1 ⊔ p2. Distinct proper values join to ⊤.
func (p1 Parity) MonoJoin(p2 Parity) Parity {
	return p1 | p2
}

func (p1 Parity) Meet(p2 Parity) (Parity, error) {
	return p1.MonoMeet(p2), nil
}

// MonoMeet computes p1 ⊓ p2. Distinct proper values meet at ⊥.
func (p1 Parity) MonoMeet(p2 Parity) Parity {
	return p1 & p2
}

// Widen is the join, as the lattice has finite height.
func (p1 Parity) Widen(p2 Parity) (Parity, error) {
	return p1.MonoJoin(p2), nil
}

func (p1 Parity) MonoWiden(p2 Parity) Parity {
	return p1.MonoJoin(p2)
}

// Neg preserves parity.
func (p Parity) Neg() Parity {
	return p
}

// Plus computes p1 + p2. Equal parities sum to Even, and distinct ones to Odd.
func (p1 Parity) Plus(p2 Parity) Parity {
	switch {
	case p1.IsBot() || p2.IsBot():
		return ParityBot
	case p1.IsTop() || p2.IsTop():
		return ParityTop
	case p1 == p2:
		return Even
	}
	return Odd
}

// Minus computes p1 - p2, which agrees with p1 + p2.
func (p1 Parity) Minus(p2 Parity) Parity {
	return p1.Plus(p2)
}

// Mult computes p1 * p2. Any Even factor makes the product Even.
func (p1 Parity) Mult(p2 Parity) Parity {
	switch {
	case p1.IsBot() || p2.IsBot():
		return ParityBot
	case p1 == Even || p2 == Even:
		return Even
	case p1.IsTop() || p2.IsTop():
		return ParityTop
	}
	return Odd
}

// Div computes p1 / p2 for exact division: an Odd divisor preserves the
// parity of the dividend. Any other divisor yields ⊤.
func (p1 Parity) Div(p2 Parity) Parity {
	switch {
	case p1.IsBot() || p2.IsBot():
		return ParityBot
	case p2 == Odd:
		return p1
	}
	return ParityTop
}

// Rem computes p1 % p2. The remainder of an Even divisor has the parity of
// the dividend, since p1 = q * p2 + r. Otherwise it is ⊤, e.g.
// 3 % 3 = 0 while 1 % 3 = 1.
func (p1 Parity) Rem(p2 Parity) Parity {
	switch {
	case p1.IsBot() || p2.IsBot():
		return ParityBot
	case p2 == Even:
		return p1
	}
	return ParityTop
}

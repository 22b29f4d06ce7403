package lattice

// Product is a member of a reduced product lattice. Products are only
// created by their lattice, and are always reduced.
type Product[A Element[A], B Element[B]] struct {
	lattice *ProductLattice[A, B]
	left    A
	right   B
}

func (p Product[A, B]) Lattice() *ProductLattice[A, B] {
	return p.lattice
}

func (p Product[A, B]) Left() A {
	return p.left
}

func (p Product[A, B]) Right() B {
	return p.right
}

func (p Product[A, B]) String() string {
	return "(" + p.left.String() + ", " + p.right.String() + ")"
}

// IsBot holds for (⊥, ⊥), the only product with a bottom component.
func (p Product[A, B]) IsBot() bool {
	return p.left.IsBot()
}

func (p Product[A, B]) IsTop() bool {
	return p.left.IsTop() && p.right.IsTop()
}

// Eq holds for products of the same lattice with equal components.
func (p1 Product[A, B]) Eq(p2 Product[A, B]) bool {
	return p1.lattice == p2.lattice && p1.left.Eq(p2.left) && p1.right.Eq(p2.right)
}

// Leq computes the componentwise order.
func (p1 Product[A, B]) Leq(p2 Product[A, B]) (bool, error) {
	if p1.lattice != p2.lattice {
		return false, mismatch("⊑", p1, p2)
	}
	leq, err := p1.left.Leq(p2.left)
	if err != nil || !leq {
		return false, err
	}
	return p1.right.Leq(p2.right)
}

// Join computes the componentwise join, followed by reduction.
func (p1 Product[A, B]) Join(p2 Product[A, B]) (Product[A, B], error) {
	return p1.combine("⊔", p2,
		func(x, y A) (A, error) { return x.Join(y) },
		func(x, y B) (B, error) { return x.Join(y) })
}

// Meet computes the componentwise meet, followed by reduction.
func (p1 Product[A, B]) Meet(p2 Product[A, B]) (Product[A, B], error) {
	return p1.combine("⊓", p2,
		func(x, y A) (A, error) { return x.Meet(y) },
		func(x, y B) (B, error) { return x.Meet(y) })
}

// Widen computes the componentwise widening, followed by reduction.
func (p1 Product[A, B]) Widen(p2 Product[A, B]) (Product[A, B], error) {
	return p1.combine("∇", p2,
		func(x, y A) (A, error) { return x.Widen(y) },
		func(x, y B) (B, error) { return x.Widen(y) })
}

func (p1 Product[A, B]) combine(
	op string,
	p2 Product[A, B],
	fa func(A, A) (A, error),
	fb func(B, B) (B, error),
) (Product[A, B], error) {
	if p1.lattice != p2.lattice {
		return p1, mismatch(op, p1, p2)
	}
	a, err := fa(p1.left, p2.left)
	if err != nil {
		return p1, err
	}
	b, err := fb(p1.right, p2.right)
	if err != nil {
		return p1, err
	}
	return p1.lattice.Make(a, b)
}

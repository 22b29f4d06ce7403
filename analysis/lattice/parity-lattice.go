package lattice

// ParityLattice represents the parity lattice.
type ParityLattice struct{}

// parityLattice is a singleton instantiation of the parity lattice.
var parityLattice = &ParityLattice{}

// Parity yields the parity lattice.
func (latticeFactory) Parity() *ParityLattice {
	return parityLattice
}

func (*ParityLattice) Top() Parity {
	return ParityTop
}

func (*ParityLattice) Bot() Parity {
	return ParityBot
}

func (*ParityLattice) String() string {
	return "{Even, Odd}"
}

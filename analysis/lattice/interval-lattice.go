package lattice

// IntervalLattice represents the interval lattice.
type IntervalLattice struct{}

// intervalLattice is a singleton instantiation of the interval lattice.
var intervalLattice = &IntervalLattice{}

// Interval yields the interval lattice.
func (latticeFactory) Interval() *IntervalLattice {
	return intervalLattice
}

// Top yields [-∞, +∞].
func (*IntervalLattice) Top() Interval {
	return intervalTop
}

// Bot yields [+∞, -∞].
func (*IntervalLattice) Bot() Interval {
	return intervalBot
}

func (*IntervalLattice) String() string {
	return "[ℤ, ℤ]"
}

package lattice

// IntervalParity is an element of the reduced product of intervals and parities.
type IntervalParity = Product[Interval, Parity]

// IntervalParityReduction exchanges information between an interval and a
// parity describing the same integer.
type IntervalParityReduction struct{}

var intervalParityLattice = MakeProduct[Interval, Parity](intervalLattice, parityLattice, IntervalParityReduction{})

// IntervalParity yields the reduced product of the interval and parity lattices.
func (latticeFactory) IntervalParity() *ProductLattice[Interval, Parity] {
	return intervalParityLattice
}

// RhoLeft narrows the interval to bounds of the right parity. A finite bound
// of the wrong parity moves one step inwards, and a singleton of the wrong
// parity is ⊥. The narrowed bounds cannot cross, since two adjacent integers
// never share a parity.
func (IntervalParityReduction) RhoLeft(i Interval, p Parity) Interval {
	switch {
	case i.IsBot() || p.IsBot():
		return intervalBot
	case p.IsTop():
		return i
	}
	if v, ok := i.Singleton(); ok {
		if !p.Matches(v) {
			return intervalBot
		}
		return i
	}

	low, high := i.low, i.high
	if l, ok := low.(FiniteBound); ok && !p.Matches(int64(l)) {
		low = l.Plus(FiniteBound(1))
	}
	if h, ok := high.(FiniteBound); ok && !p.Matches(int64(h)) {
		high = h.Minus(FiniteBound(1))
	}
	return newInterval(low, high)
}

// RhoRight fixes the parity of a singleton interval.
func (IntervalParityReduction) RhoRight(i Interval, p Parity) Parity {
	if i.IsBot() {
		return ParityBot
	}
	if v, ok := i.Singleton(); ok {
		return p.MonoMeet(ParityOf(v))
	}
	return p
}

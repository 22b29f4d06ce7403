package lattice

type (
	// factory groups the lattice and element factories.
	factory struct{}

	// latticeFactory hands out the shared lattice instances.
	latticeFactory struct{}

	// elementFactory builds proper elements of the numeric lattices.
	elementFactory struct{}
)

var (
	latFact = latticeFactory{}
	elFact  = elementFactory{}
)

// Lattice gives access to the lattices of the numeric domains.
func (factory) Lattice() latticeFactory {
	return latFact
}

// Element gives access to element constructors.
func (factory) Element() elementFactory {
	return elFact
}

// Create is the entry point for obtaining lattices and elements:
//
//	Create().Lattice().Interval()
//	Create().Element().IntervalFinite(1, 2)
func Create() factory {
	return factory{}
}

// Elements is a shorthand for Create().Element().
func Elements() elementFactory {
	return elFact
}

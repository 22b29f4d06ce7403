package absint

import (
	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
)

// factory exposes an API for creating value domains.
type factory struct{}

// Create retrieves a factory for value domains.
func Create() factory {
	return factory{}
}

// Interval creates the interval domain. Identifiers are looked up in reg,
// which may be nil if every identifier is numeric.
func (factory) Interval(reg *symbolic.Registry) *IntervalDomain {
	return &IntervalDomain{
		Transfer: intervalTransfer{Lattices().Interval()},
		name:     "interval",
		registry: reg,
	}
}

// Parity creates the parity domain.
func (factory) Parity(reg *symbolic.Registry) *ParityDomain {
	return &ParityDomain{
		Transfer: parityTransfer{Lattices().Parity()},
		name:     "parity",
		registry: reg,
	}
}

// IntervalParity creates the reduced product of the interval and parity domains.
func (f factory) IntervalParity(reg *symbolic.Registry) *IntervalParityDomain {
	d := MakeProductDomain[L.Interval, L.Parity](Lattices().IntervalParity(), f.Interval(reg), f.Parity(reg))
	d.PostEval = intervalParityRem
	d.SatisfiesHook = intervalParitySatisfies
	return d
}

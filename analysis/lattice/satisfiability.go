package lattice

// Satisfiability is the outcome of deciding a guard in an abstract state.
type Satisfiability uint8

const (
	// Unknown is the safe answer when the state neither entails nor refutes the guard.
	Unknown Satisfiability = iota
	Satisfied
	NotSatisfied
)

// And combines satisfiabilities of conjuncts. NotSatisfied dominates.
func (s Satisfiability) And(o Satisfiability) Satisfiability {
	switch {
	case s == NotSatisfied || o == NotSatisfied:
		return NotSatisfied
	case s == Satisfied && o == Satisfied:
		return Satisfied
	}
	return Unknown
}

// Or combines satisfiabilities of disjuncts. Satisfied dominates.
func (s Satisfiability) Or(o Satisfiability) Satisfiability {
	switch {
	case s == Satisfied || o == Satisfied:
		return Satisfied
	case s == NotSatisfied && o == NotSatisfied:
		return NotSatisfied
	}
	return Unknown
}

func (s Satisfiability) Negate() Satisfiability {
	switch s {
	case Satisfied:
		return NotSatisfied
	case NotSatisfied:
		return Satisfied
	}
	return Unknown
}

// Lub joins the satisfiability of two alternative states.
func (s Satisfiability) Lub(o Satisfiability) Satisfiability {
	if s == o {
		return s
	}
	return Unknown
}

func (s Satisfiability) String() string {
	switch s {
	case Satisfied:
		return "SATISFIED"
	case NotSatisfied:
		return "NOT_SATISFIED"
	}
	return "UNKNOWN"
}

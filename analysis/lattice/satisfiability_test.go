package lattice

import "testing"

func TestSatisfiability(t *testing.T) {
	all := []Satisfiability{Unknown, Satisfied, NotSatisfied}
	for _, s := range all {
		if s.Negate().Negate() != s {
			t.Errorf("¬¬%s = %s", s, s.Negate().Negate())
		}
		if s.And(Satisfied) != s || s.Or(NotSatisfied) != s {
			t.Errorf("Satisfied/NotSatisfied are not neutral for %s", s)
		}
		if s.And(NotSatisfied) != NotSatisfied || s.Or(Satisfied) != Satisfied {
			t.Errorf("NotSatisfied/Satisfied are not absorbing for %s", s)
		}
		for _, o := range all {
			if s.And(o) != o.And(s) || s.Or(o) != o.Or(s) || s.Lub(o) != o.Lub(s) {
				t.Errorf("%s and %s do not commute", s, o)
			}
			if lub := s.Lub(o); s != o && lub != Unknown {
				t.Errorf("%s ⊔ %s = %s, expected UNKNOWN", s, o, lub)
			}
		}
	}
	if s := Unknown.String(); s != "UNKNOWN" {
		t.Errorf("Expected UNKNOWN, got %s", s)
	}
}

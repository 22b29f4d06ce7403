package lattice

import (
	"testing"
)

var parities = []Parity{ParityBot, Even, Odd, ParityTop}

// parityTable lists expected results indexed by [left][right], in the
// order ⊥, Even, Odd, ⊤.
type parityTable [4][4]Parity

func index(p Parity) int {
	switch p {
	case ParityBot:
		return 0
	case Even:
		return 1
	case Odd:
		return 2
	}
	return 3
}

func checkParityTable(t *testing.T, name string, f func(Parity, Parity) Parity, table parityTable) {
	for _, p1 := range parities {
		for _, p2 := range parities {
			expected := table[index(p1)][index(p2)]
			if res := f(p1, p2); res != expected {
				t.Errorf("%s %s %s = %s, expected %s", p1, name, p2, res, expected)
			}
		}
	}
}

const (
	B = ParityBot
	E = Even
	O = Odd
	T = ParityTop
)

func TestParityArithmetic(t *testing.T) {
	checkParityTable(t, "+", Parity.Plus, parityTable{
		{B, B, B, B},
		{B, E, O, T},
		{B, O, E, T},
		{B, T, T, T},
	})
	checkParityTable(t, "-", Parity.Minus, parityTable{
		{B, B, B, B},
		{B, E, O, T},
		{B, O, E, T},
		{B, T, T, T},
	})
	checkParityTable(t, "*", Parity.Mult, parityTable{
		{B, B, B, B},
		{B, E, E, E},
		{B, E, O, T},
		{B, E, T, T},
	})
	checkParityTable(t, "/", Parity.Div, parityTable{
		{B, B, B, B},
		{B, T, E, T},
		{B, T, O, T},
		{B, T, T, T},
	})
	checkParityTable(t, "%", Parity.Rem, parityTable{
		{B, B, B, B},
		{B, E, T, T},
		{B, O, T, T},
		{B, T, T, T},
	})
}

func TestParityLattice(t *testing.T) {
	join := func(p1, p2 Parity) Parity { return p1.MonoJoin(p2) }
	meet := func(p1, p2 Parity) Parity { return p1.MonoMeet(p2) }
	widen := func(p1, p2 Parity) Parity {
		res, _ := p1.Widen(p2)
		return res
	}

	checkParityTable(t, "⊔", join, parityTable{
		{B, E, O, T},
		{E, E, T, T},
		{O, T, O, T},
		{T, T, T, T},
	})
	checkParityTable(t, "⊓", meet, parityTable{
		{B, B, B, B},
		{B, E, B, E},
		{B, B, O, O},
		{B, E, O, T},
	})
	checkParityTable(t, "∇", widen, parityTable{
		{B, E, O, T},
		{E, E, T, T},
		{O, T, O, T},
		{T, T, T, T},
	})

	if err := CheckLaws[Parity](Create().Lattice().Parity(), []Parity{Even, Odd}); err != nil {
		t.Error(err)
	}
}

func TestParityOf(t *testing.T) {
	tests := []struct {
		v        int64
		expected Parity
	}{
		{0, Even},
		{5, Odd},
		{-3, Odd},
		{-4, Even},
	}
	for _, test := range tests {
		if res := ParityOf(test.v); res != test.expected {
			t.Errorf("ParityOf(%d) = %s, expected %s", test.v, res, test.expected)
		}
		if !test.expected.Matches(test.v) || !ParityTop.Matches(test.v) || ParityBot.Matches(test.v) {
			t.Errorf("Matches is inconsistent for %d", test.v)
		}
	}
}

func TestParityString(t *testing.T) {
	expected := map[Parity]string{ParityBot: "⊥", Even: "Even", Odd: "Odd", ParityTop: "⊤"}
	for p, s := range expected {
		if p.String() != s {
			t.Errorf("Expected %q, got %q", s, p.String())
		}
	}
}

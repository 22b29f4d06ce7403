package absint

import (
	"go/token"
	"go/types"
	"testing"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fin    = Elements().IntervalFinite
	itvTop = Lattices().Interval().Top()
)

func parse(t *testing.T, src string) symbolic.Expression {
	t.Helper()
	e, err := symbolic.ParseExpr(src)
	require.NoError(t, err)
	return e
}

func intervalEnv(d *IntervalDomain, bindings map[symbolic.Identifier]L.Interval) L.Environment[L.Interval] {
	env := L.NewEnvironment[L.Interval](d)
	for id, v := range bindings {
		env = env.Update(id, v)
	}
	return env
}

func parityEnv(d *ParityDomain, bindings map[symbolic.Identifier]L.Parity) L.Environment[L.Parity] {
	env := L.NewEnvironment[L.Parity](d)
	for id, v := range bindings {
		env = env.Update(id, v)
	}
	return env
}

func TestIntervalEval(t *testing.T) {
	reg := symbolic.NewRegistry()
	require.NoError(t, reg.Register("s", types.Typ[types.String]))
	reg.Freeze()

	d := Create().Interval(reg)
	env := intervalEnv(d, map[symbolic.Identifier]L.Interval{
		"x": fin(0, 3),
		"s": fin(1, 1),
	})

	tests := []struct {
		expr     string
		expected string
	}{
		{"5", "[5, 5]"},
		{"x", "[0, 3]"},
		{"x + 1", "[1, 4]"},
		{"-x", "[-3, 0]"},
		{"+x", "[0, 3]"},
		{"x * x - 2", "[-2, 7]"},
		{"x / 0", "⊥"},
		{"0 / y", "[0, 0]"},
		{"(x + 1) / 2", "[0, 2]"},
		{"x % 3", "[-Inf, +Inf]"},
		{"y", "[-Inf, +Inf]"},
		{"s", "[-Inf, +Inf]"},
		{"x < 1", "[-Inf, +Inf]"},
		{"true", "[-Inf, +Inf]"},
		{"nil", "[-Inf, +Inf]"},
		{"!x", "[-Inf, +Inf]"},
		{"x / 0 + 1", "⊥"},
	}

	for _, test := range tests {
		v, err := env.Eval(parse(t, test.expr), symbolic.NoPoint)
		require.NoError(t, err)
		assert.Equal(t, test.expected, v.String(), "eval(%s)", test.expr)
	}
}

func TestEvalMalformed(t *testing.T) {
	d := Create().Interval(nil)
	env := L.NewEnvironment[L.Interval](d)
	var semErr *L.SemanticError

	_, err := env.Eval(nil, symbolic.NoPoint)
	assert.True(t, errors.As(err, &semErr))

	_, err = env.Eval(symbolic.Binary(token.ADD, symbolic.Identifier("x"), nil), symbolic.NoPoint)
	assert.True(t, errors.As(err, &semErr))

	_, err = env.Assume(symbolic.Unary(token.NOT, symbolic.Binary(token.LSS, nil, symbolic.Int(1))), symbolic.NoPoint)
	assert.True(t, errors.As(err, &semErr))

	_, err = env.Satisfies(symbolic.Binary(token.LAND, symbolic.Bool(true), nil), symbolic.NoPoint)
	assert.True(t, errors.As(err, &semErr))
}

func TestIntervalAssume(t *testing.T) {
	d := Create().Interval(nil)
	env := intervalEnv(d, map[symbolic.Identifier]L.Interval{"x": fin(0, 10)})

	tests := []struct {
		guard    string
		expected string
	}{
		{"x < 5", "x: [0, 4]"},
		{"x <= 5", "x: [0, 5]"},
		{"x > 5", "x: [6, 10]"},
		{"x >= 5", "x: [5, 10]"},
		{"x == 5", "x: [5, 5]"},
		{"x != 0", "x: [1, 10]"},
		{"x != 10", "x: [0, 9]"},
		{"x != 5", "x: [0, 10]"},
		{"5 > x", "x: [0, 4]"},
		{"x + 1 > 5", "x: [0, 10]"},
		{"x > 20", "⊥"},
		{"x < 20", "x: [0, 10]"},
		{"!(x < 5)", "x: [5, 10]"},
		{"!!(x < 5)", "x: [0, 4]"},
		{"x > 2 && x < 5", "x: [3, 4]"},
		{"x < 2 || x > 8", "x: [0, 10]"},
		{"x < 2 || x > 20", "x: [0, 1]"},
		{"x < y", "x: [0, 10]\ny: [1, +Inf]"},
		{"y <= x", "x: [0, 10]\ny: [-Inf, 10]"},
		{"x == y", "x: [0, 10]\ny: [0, 10]"},
		{"false", "⊥"},
		{"true", "x: [0, 10]"},
		{"b", "x: [0, 10]"},
		{"!b", "x: [0, 10]"},
	}

	for _, test := range tests {
		res, err := env.Assume(parse(t, test.guard), symbolic.NoPoint)
		require.NoError(t, err)
		assert.Equal(t, test.expected, res.String(), "assume(%s)", test.guard)
	}
}

func TestIntervalSatisfies(t *testing.T) {
	d := Create().Interval(nil)
	env := intervalEnv(d, map[symbolic.Identifier]L.Interval{
		"x": fin(0, 10),
		"y": fin(20, 30),
	})

	tests := []struct {
		guard    string
		expected L.Satisfiability
	}{
		{"x < 11", L.Satisfied},
		{"x > 10", L.NotSatisfied},
		{"x < 5", L.Unknown},
		{"x == 11", L.NotSatisfied},
		{"x != 11", L.Satisfied},
		{"x < y", L.Satisfied},
		{"y <= x", L.NotSatisfied},
		{"x >= 0 && x <= 10", L.Satisfied},
		{"x < 0 || x > 10", L.NotSatisfied},
		{"x < 0 || x > 5", L.Unknown},
		{"!(x < 0)", L.Satisfied},
		{"true", L.Satisfied},
		{"x", L.Unknown},
		{"z > 0", L.Unknown},
	}

	for _, test := range tests {
		s, err := env.Satisfies(parse(t, test.guard), symbolic.NoPoint)
		require.NoError(t, err)
		assert.Equal(t, test.expected, s, "satisfies(%s)", test.guard)
	}

	s, err := L.BotEnvironment[L.Interval](d).Satisfies(parse(t, "x < 11"), symbolic.NoPoint)
	require.NoError(t, err)
	assert.Equal(t, L.Unknown, s)
}

func TestParityEval(t *testing.T) {
	d := Create().Parity(nil)
	env := parityEnv(d, map[symbolic.Identifier]L.Parity{"x": L.Even, "z": L.Odd})

	tests := []struct {
		expr     string
		expected L.Parity
	}{
		{"5", L.Odd},
		{"x * y", L.Even},
		{"x + 1", L.Odd},
		{"z + 1", L.Even},
		{"z * z", L.Odd},
		{"-z", L.Odd},
		{"z % 2", L.Odd},
		{"x / z", L.Even},
		{"z / 2", L.ParityTop},
		{"y", L.ParityTop},
		{"x < z", L.ParityTop},
	}

	for _, test := range tests {
		v, err := env.Eval(parse(t, test.expr), symbolic.NoPoint)
		require.NoError(t, err)
		assert.Equal(t, test.expected, v, "eval(%s)", test.expr)
	}
}

func TestParityAssume(t *testing.T) {
	d := Create().Parity(nil)

	tests := []struct {
		env      L.Environment[L.Parity]
		guard    string
		expected string
	}{
		{L.NewEnvironment[L.Parity](d), "x % 2 == 0", "x: Even"},
		{L.NewEnvironment[L.Parity](d), "x % 2 == 1", "x: Odd"},
		{L.NewEnvironment[L.Parity](d), "x % 2 != 0", "x: Odd"},
		{L.NewEnvironment[L.Parity](d), "x % 2 != 1", "x: Even"},
		{L.NewEnvironment[L.Parity](d), "0 == x % 2", "x: Even"},
		{L.NewEnvironment[L.Parity](d), "x % 2 == 3", "⊥"},
		{L.NewEnvironment[L.Parity](d), "x % 2 != 3", "⊤"},
		{L.NewEnvironment[L.Parity](d), "x % 4 == 0", "⊤"},
		{L.NewEnvironment[L.Parity](d), "(x + 1) % 2 == 0", "⊤"},
		{L.NewEnvironment[L.Parity](d), "x == 4", "x: Even"},
		{L.NewEnvironment[L.Parity](d), "x < 4", "⊤"},
		{parityEnv(d, map[symbolic.Identifier]L.Parity{"y": L.Odd}), "x == y", "x: Odd\ny: Odd"},
		{parityEnv(d, map[symbolic.Identifier]L.Parity{"x": L.Odd}), "x % 2 == 0", "⊥"},
		{parityEnv(d, map[symbolic.Identifier]L.Parity{"x": L.Odd}), "(x + 1) % 2 == 1", "⊥"},
		{parityEnv(d, map[symbolic.Identifier]L.Parity{"x": L.Odd}), "x == 2", "⊥"},
		{parityEnv(d, map[symbolic.Identifier]L.Parity{"x": L.Odd}), "x % 2 == 0 || x == 3", "x: Odd"},
	}

	for _, test := range tests {
		res, err := test.env.Assume(parse(t, test.guard), symbolic.NoPoint)
		require.NoError(t, err)
		assert.Equal(t, test.expected, res.String(), "assume(%s) in %s", test.guard, test.env)
	}
}

func TestParitySatisfies(t *testing.T) {
	d := Create().Parity(nil)
	env := parityEnv(d, map[symbolic.Identifier]L.Parity{"x": L.Odd, "y": L.Even})

	tests := []struct {
		guard    string
		expected L.Satisfiability
	}{
		{"x % 2 == 1", L.Satisfied},
		{"1 == x % 2", L.Satisfied},
		{"x % 2 == 0", L.NotSatisfied},
		{"x % 2 != 1", L.NotSatisfied},
		{"x % 2 != 0", L.Satisfied},
		{"x % 2 == 2", L.NotSatisfied},
		{"z % 2 == 2", L.NotSatisfied},
		{"z % 2 == 1", L.Unknown},
		{"(x + y) % 2 == 1", L.Satisfied},
		{"x == y", L.NotSatisfied},
		{"x != y", L.Satisfied},
		{"x == 3", L.Unknown},
		{"x < y", L.Unknown},
	}

	for _, test := range tests {
		s, err := env.Satisfies(parse(t, test.guard), symbolic.NoPoint)
		require.NoError(t, err)
		assert.Equal(t, test.expected, s, "satisfies(%s)", test.guard)
	}
}

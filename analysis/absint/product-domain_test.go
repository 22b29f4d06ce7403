package absint

import (
	"testing"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
	"github.com/cs-au-dk/absdom/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type binding struct {
	i L.Interval
	p L.Parity
}

func productEnv(t *testing.T, d *IntervalParityDomain, bindings map[symbolic.Identifier]binding) L.Environment[L.IntervalParity] {
	t.Helper()
	env := L.NewEnvironment[L.IntervalParity](d)
	for id, b := range bindings {
		v, err := d.Make(b.i, b.p)
		require.NoError(t, err)
		env = env.Update(id, v)
	}
	return env
}

func TestIntervalParityEval(t *testing.T) {
	d := Create().IntervalParity(nil)
	env := productEnv(t, d, map[symbolic.Identifier]binding{
		"x": {fin(2, 4), L.Even},
		"y": {fin(8, 10), L.Even},
		"n": {fin(0, 100), L.Odd},
		"m": {fin(-5, 5), L.ParityTop},
		"k": {fin(0, 100), L.ParityTop},
	})

	tests := []struct {
		expr     string
		expected string
	}{
		{"5", "([5, 5], Odd)"},
		{"x * y", "([16, 40], Even)"},
		{"x + 1", "([3, 5], Odd)"},
		{"0 / z", "([0, 0], Even)"},
		{"x / 0", "(⊥, ⊥)"},
		{"n", "([1, 99], Odd)"},
		{"n % 4", "([1, 3], Odd)"},
		{"k % 4", "([0, 3], ⊤)"},
		{"k % 2", "([0, 1], ⊤)"},
		{"m % 4", "([-3, 3], ⊤)"},
		{"m % -3", "([-2, 2], ⊤)"},
		{"n % 0", "(⊥, ⊥)"},
		{"z % y", "([-9, 9], ⊤)"},
		{"n % x", "([1, 3], Odd)"},
		{"z", "([-Inf, +Inf], ⊤)"},
	}

	for _, test := range tests {
		v, err := env.Eval(parse(t, test.expr), symbolic.NoPoint)
		require.NoError(t, err)
		assert.Equal(t, test.expected, v.String(), "eval(%s)", test.expr)
	}
}

func TestIntervalParityAssume(t *testing.T) {
	d := Create().IntervalParity(nil)
	top := L.NewEnvironment[L.IntervalParity](d)

	tests := []struct {
		env      L.Environment[L.IntervalParity]
		guard    string
		expected string
	}{
		{top, "x % 2 == 0", "x: ([-Inf, +Inf], Even)"},
		{top, "x >= 1 && x % 2 == 0", "x: ([2, +Inf], Even)"},
		{top, "x == 3 && x % 2 == 0", "⊥"},
		{top, "x > 0 && x < 4 && x % 2 != 1", "x: ([2, 2], Even)"},
		{productEnv(t, d, map[symbolic.Identifier]binding{"x": {fin(3, 5), L.ParityTop}}), "x % 2 == 0", "x: ([4, 4], Even)"},
		{productEnv(t, d, map[symbolic.Identifier]binding{"x": {itvTop, L.Even}}), "x == 3", "⊥"},
		{productEnv(t, d, map[symbolic.Identifier]binding{"x": {fin(0, 9), L.Odd}}), "x < y", "x: ([1, 9], Odd)\ny: ([2, +Inf], ⊤)"},
	}

	for _, test := range tests {
		res, err := test.env.Assume(parse(t, test.guard), symbolic.NoPoint)
		require.NoError(t, err)
		assert.Equal(t, test.expected, res.String(), "assume(%s) in %s", test.guard, test.env)
	}
}

func TestIntervalParitySatisfies(t *testing.T) {
	d := Create().IntervalParity(nil)
	env := productEnv(t, d, map[symbolic.Identifier]binding{
		"x": {itvTop, L.Odd},
		"y": {fin(0, 10), L.Even},
	})

	tests := []struct {
		guard    string
		expected L.Satisfiability
	}{
		{"(x % 2) == 1", L.Satisfied},
		{"(x % 2) != 1", L.NotSatisfied},
		{"(y % 2) == 0", L.Satisfied},
		{"(y % 2) == 1", L.NotSatisfied},
		{"y > 20", L.NotSatisfied},
		{"x == y", L.NotSatisfied},
		// Neither component refutes this, and only the interval
		// component entails it.
		{"y < 20", L.Unknown},
		{"x < 3", L.Unknown},
	}

	for _, test := range tests {
		s, err := env.Satisfies(parse(t, test.guard), symbolic.NoPoint)
		require.NoError(t, err)
		assert.Equal(t, test.expected, s, "satisfies(%s)", test.guard)
	}
}

func TestSplitZip(t *testing.T) {
	d := Create().IntervalParity(nil)
	env := productEnv(t, d, map[symbolic.Identifier]binding{
		"x": {fin(2, 4), L.Even},
		"y": {itvTop, L.Odd},
		"z": {fin(1, 3), L.ParityTop},
	})
	assert.Equal(t, "x: ([2, 4], Even)\ny: ([-Inf, +Inf], Odd)\nz: ([1, 3], ⊤)", env.String())

	a, b := d.Split(env)
	assert.Equal(t, "x: [2, 4]\nz: [1, 3]", a.String())
	assert.Equal(t, "x: Even\ny: Odd", b.String())

	zipped, err := d.Zip(a, b)
	require.NoError(t, err)
	assert.True(t, zipped.Eq(env))

	// Zipping reduces the bindings.
	zipped, err = d.Zip(a, b.Update("z", L.Even))
	require.NoError(t, err)
	assert.Equal(t, "([2, 2], Even)", zipped.Get("z").String())

	zipped, err = d.Zip(a, b.Update("x", L.ParityBot))
	require.NoError(t, err)
	assert.True(t, zipped.IsBot())

	a, b = d.Split(L.BotEnvironment[L.IntervalParity](d))
	assert.True(t, a.IsBot())
	assert.True(t, b.IsBot())
}

func TestProductDomainDiverges(t *testing.T) {
	opts.SetMaxReductionRounds(8)
	t.Cleanup(func() { opts.SetMaxReductionRounds(utils.DefaultMaxReductionRounds) })

	lat := L.MakeProduct[L.Interval, L.Parity](Lattices().Interval(), Lattices().Parity(), nil)
	d := MakeProductDomain[L.Interval, L.Parity](lat, Create().Interval(nil), Create().Parity(nil))
	d.PostEval = func(
		_ *ProductDomain[L.Interval, L.Parity],
		_ symbolic.Expression,
		_ L.Environment[L.Product[L.Interval, L.Parity]],
		_ symbolic.ProgramPoint,
		i L.Interval,
		p L.Parity,
	) (L.Interval, L.Parity, error) {
		return i, p ^ L.ParityTop, nil
	}

	_, err := L.NewEnvironment[L.Product[L.Interval, L.Parity]](d).Eval(symbolic.Int(1), symbolic.NoPoint)
	assert.True(t, errors.Is(err, L.ErrReductionDiverged))
}

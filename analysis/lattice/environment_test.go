package lattice

import (
	"testing"

	"github.com/cs-au-dk/absdom/analysis/symbolic"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parityValues evaluates constants and identifiers, and nothing else.
type parityValues struct {
	*ParityLattice
}

func (parityValues) Eval(expr symbolic.Expression, env Environment[Parity], _ symbolic.ProgramPoint) (Parity, error) {
	switch expr := expr.(type) {
	case symbolic.Constant:
		if v, ok := expr.Int64(); ok {
			return ParityOf(v), nil
		}
	case symbolic.Identifier:
		return env.Get(expr), nil
	}
	return ParityTop, nil
}

func (parityValues) Assume(env Environment[Parity], _ symbolic.Expression, _ symbolic.ProgramPoint) (Environment[Parity], error) {
	return env, nil
}

func (parityValues) Satisfies(symbolic.Expression, Environment[Parity], symbolic.ProgramPoint) (Satisfiability, error) {
	return Satisfied, nil
}

var parityDom = &parityValues{parityLattice}

func parityEnv(bindings map[string]Parity) Environment[Parity] {
	env := NewEnvironment[Parity](parityDom)
	for id, p := range bindings {
		env = env.Update(symbolic.Identifier(id), p)
	}
	return env
}

func TestEnvironmentGetUpdate(t *testing.T) {
	env := parityEnv(map[string]Parity{"x": Even})
	assert.Equal(t, Even, env.Get("x"))
	assert.Equal(t, ParityTop, env.Get("y"), "missing identifiers are top")
	assert.Equal(t, 1, env.Len())

	// Strong update.
	env2 := env.Update("x", Odd)
	assert.Equal(t, Odd, env2.Get("x"))
	assert.Equal(t, Even, env.Get("x"), "environments are persistent")

	// Top bindings are not stored.
	env3 := env.Update("x", ParityTop)
	assert.True(t, env3.IsTop())
	assert.Equal(t, 0, env3.Len())

	// A bottom binding makes the whole environment bottom.
	env4 := env.Update("y", ParityBot)
	assert.True(t, env4.IsBot())
	assert.Equal(t, ParityBot, env4.Get("x"))
	assert.True(t, env4.Update("z", Even).IsBot())

	assert.Equal(t, []symbolic.Identifier{"a", "x"}, parityEnv(map[string]Parity{"x": Odd, "a": Even}).Keys())
	assert.True(t, env.Remove("x").IsTop())
}

func TestEnvironmentLattice(t *testing.T) {
	e1 := parityEnv(map[string]Parity{"x": Even, "y": Odd})
	e2 := parityEnv(map[string]Parity{"x": Even, "y": Even, "z": Odd})
	bot := BotEnvironment[Parity](parityDom)
	top := NewEnvironment[Parity](parityDom)

	join, err := e1.Join(e2)
	require.NoError(t, err)
	assert.True(t, join.Eq(parityEnv(map[string]Parity{"x": Even})), "got %s", join)

	meet, err := e1.Meet(e2)
	require.NoError(t, err)
	assert.True(t, meet.IsBot(), "y cannot be both even and odd")

	meet, err = e1.Meet(parityEnv(map[string]Parity{"z": Odd}))
	require.NoError(t, err)
	assert.True(t, meet.Eq(parityEnv(map[string]Parity{"x": Even, "y": Odd, "z": Odd})), "got %s", meet)

	widen, err := e2.Widen(e1)
	require.NoError(t, err)
	assert.True(t, widen.Eq(join))

	for _, env := range []Environment[Parity]{e1, e2, join, bot, top} {
		leq, err := bot.Leq(env)
		require.NoError(t, err)
		assert.True(t, leq)
		leq, err = env.Leq(top)
		require.NoError(t, err)
		assert.True(t, leq)

		res, err := env.Join(bot)
		require.NoError(t, err)
		assert.True(t, res.Eq(env))
		res, err = env.Meet(top)
		require.NoError(t, err)
		assert.True(t, res.Eq(env))
	}

	leq, err := e1.Leq(join)
	require.NoError(t, err)
	assert.True(t, leq)
	leq, err = join.Leq(e1)
	require.NoError(t, err)
	assert.False(t, leq)

	assert.False(t, top.Eq(bot))
	assert.False(t, e1.Eq(e2))
}

func TestEnvironmentEvaluation(t *testing.T) {
	env := parityEnv(map[string]Parity{"x": Odd})

	v, err := env.Eval(symbolic.Identifier("x"), symbolic.NoPoint)
	require.NoError(t, err)
	assert.Equal(t, Odd, v)

	env, err = env.Assign("y", symbolic.Int(4), symbolic.NoPoint)
	require.NoError(t, err)
	assert.Equal(t, Even, env.Get("y"))

	bot := BotEnvironment[Parity](parityDom)
	v, err = bot.Eval(symbolic.Int(4), symbolic.NoPoint)
	require.NoError(t, err)
	assert.Equal(t, ParityBot, v)

	sat, err := bot.Satisfies(symbolic.Bool(true), symbolic.NoPoint)
	require.NoError(t, err)
	assert.Equal(t, Unknown, sat, "nothing is decided in unreachable states")
	sat, err = env.Satisfies(symbolic.Bool(true), symbolic.NoPoint)
	require.NoError(t, err)
	assert.Equal(t, Satisfied, sat)
}

func TestEnvironmentMismatch(t *testing.T) {
	other := &parityValues{parityLattice}
	e1 := parityEnv(map[string]Parity{"x": Even})
	e2 := NewEnvironment[Parity](other).Update("x", Even)

	_, err := e1.Join(e2)
	assert.True(t, errors.Is(err, ErrDomainMismatch))
	_, err = e1.Meet(e2)
	assert.True(t, errors.Is(err, ErrDomainMismatch))
	_, err = e1.Leq(e2)
	assert.True(t, errors.Is(err, ErrDomainMismatch))
	assert.False(t, e1.Eq(e2))
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "⊤", NewEnvironment[Parity](parityDom).String())
	assert.Equal(t, "⊥", BotEnvironment[Parity](parityDom).String())
	assert.Equal(t, "x: Even\ny: Odd", parityEnv(map[string]Parity{"y": Odd, "x": Even}).String())
}

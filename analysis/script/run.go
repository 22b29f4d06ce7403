package script

import (
	"strconv"
	"strings"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/pkg/errors"
)

// Step records the outcome of executing a statement.
type Step struct {
	Statement
	// Result is the state after an assignment or assumption, the value
	// of an evaluation, or the satisfiability of a check.
	Result string
	// Outcome is only set by checks.
	Outcome L.Satisfiability
	// Unreachable holds if the state after the statement is ⊥.
	Unreachable bool
}

// Trace is the outcome of running a script.
type Trace[E L.Element[E]] struct {
	Steps []Step
	Final L.Environment[E]
}

// Run parses and executes a script over a value domain.
func Run[E L.Element[E]](src string, domain L.ValueDomain[E]) (*Trace[E], error) {
	stmts, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return Exec(stmts, domain)
}

// Exec executes statements in order, starting from the ⊤ state.
func Exec[E L.Element[E]](stmts []Statement, domain L.ValueDomain[E]) (*Trace[E], error) {
	env := L.NewEnvironment(domain)
	trace := &Trace[E]{Steps: make([]Step, 0, len(stmts))}

	for _, stmt := range stmts {
		step := Step{Statement: stmt}
		var err error

		switch stmt.Kind {
		case Assign:
			env, err = env.Assign(stmt.Target, stmt.Expr, stmt)
			step.Result = env.String()
		case Assume:
			env, err = env.Assume(stmt.Expr, stmt)
			step.Result = env.String()
		case Check:
			step.Outcome, err = env.Satisfies(stmt.Expr, stmt)
			step.Result = step.Outcome.String()
		case Eval:
			var v E
			if v, err = env.Eval(stmt.Expr, stmt); err == nil {
				step.Result = v.String()
			}
		}
		if err != nil {
			return trace, errors.WithMessagef(err, "line %d: %s", stmt.Line, stmt)
		}

		step.Unreachable = env.IsBot()
		trace.Steps = append(trace.Steps, step)
	}

	trace.Final = env
	return trace, nil
}

func (t *Trace[E]) String() string {
	return t.render(false)
}

// Pretty renders the trace for a terminal, with colors unless they are
// disabled.
func (t *Trace[E]) Pretty() string {
	return t.render(true)
}

func (t *Trace[E]) render(pretty bool) string {
	var b strings.Builder
	for _, step := range t.Steps {
		line, stmt, result := strconv.Itoa(step.Line)+":", step.Statement.String(), step.Result
		if pretty {
			line, stmt = colorize.Line(line), colorize.Statement(stmt)
			switch {
			case step.Kind == Check && step.Outcome == L.Satisfied:
				result = colorize.Satisfied(result)
			case step.Kind == Check && step.Outcome == L.NotSatisfied:
				result = colorize.NotSatisfied(result)
			case step.Kind == Check:
				result = colorize.Unknown(result)
			case step.Unreachable:
				result = colorize.Unreachable(result)
			}
		}

		b.WriteString(line + " " + stmt + "\n")
		for _, l := range strings.Split(result, "\n") {
			b.WriteString("    " + l + "\n")
		}
	}
	return b.String()
}

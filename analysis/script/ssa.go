package script

import (
	"github.com/cs-au-dk/absdom/analysis/symbolic"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/ssa"
)

// FromSSA translates the entry block of a function into a script. Numeric
// and comparison instructions become assignments to their registers, the
// branch condition becomes a check, and returned values are evaluated.
// Other instructions are skipped, so the registers they define are opaque.
// Every identifier is recorded in reg.
func FromSSA(fun *ssa.Function, reg *symbolic.Registry) ([]Statement, error) {
	if len(fun.Blocks) == 0 {
		return nil, errors.Errorf("function %s has no body", fun.Name())
	}

	fset := fun.Prog.Fset
	var stmts []Statement
	add := func(instr ssa.Instruction, stmt Statement) {
		stmt.Position = instr.Pos()
		if stmt.Position.IsValid() {
			stmt.Line = fset.Position(stmt.Position).Line
		}
		stmts = append(stmts, stmt)
	}

	for _, instr := range fun.Blocks[0].Instrs {
		switch instr := instr.(type) {
		case *ssa.BinOp, *ssa.UnOp:
			v := instr.(ssa.Value)
			e, err := symbolic.FromSSA(v, reg)
			if err != nil {
				return nil, errors.WithMessagef(err, "translating %s", instr)
			}
			if _, opaque := e.(symbolic.Identifier); opaque {
				continue
			}
			target := symbolic.Identifier(v.Name())
			if err := reg.Register(target, v.Type()); err != nil {
				return nil, err
			}
			add(instr, Statement{Kind: Assign, Target: target, Expr: e})

		case *ssa.If:
			e, err := symbolic.FromSSA(instr.Cond, reg)
			if err != nil {
				return nil, errors.WithMessagef(err, "translating %s", instr)
			}
			add(instr, Statement{Kind: Check, Expr: e})

		case *ssa.Return:
			for _, res := range instr.Results {
				e, err := symbolic.FromSSA(res, reg)
				if err != nil {
					return nil, errors.WithMessagef(err, "translating %s", instr)
				}
				add(instr, Statement{Kind: Eval, Expr: e})
			}
		}
	}
	return stmts, nil
}

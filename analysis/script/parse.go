package script

import (
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/cs-au-dk/absdom/analysis/symbolic"
	"github.com/pkg/errors"
)

// The script is parsed as the body of a function. The header shares the
// first line with the script, so line numbers are preserved.
const header = "package script; func _() {"

var compound = map[token.Token]token.Token{
	token.ADD_ASSIGN: token.ADD,
	token.SUB_ASSIGN: token.SUB,
	token.MUL_ASSIGN: token.MUL,
	token.QUO_ASSIGN: token.QUO,
	token.REM_ASSIGN: token.REM,
}

// Parse reads a straight-line script in Go syntax. Every line holds at
// most one statement:
//
//	x = e        x := e       x += e (and -=, *=, /=, %=)
//	x++          x--
//	assume(e)    check(e)     eval(e)
//
// Comments are allowed.
func Parse(src string) ([]Statement, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "script", header+src+"\n}", 0)
	if err != nil {
		return nil, errors.Wrap(err, "parsing script")
	}

	body := file.Decls[0].(*ast.FuncDecl).Body
	stmts := make([]Statement, 0, len(body.List))
	for _, s := range body.List {
		stmt, err := fromAST(s)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", fset.Position(s.Pos()).Line)
		}
		stmt.Line = fset.Position(s.Pos()).Line
		stmt.Position = s.Pos()
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func fromAST(s ast.Stmt) (Statement, error) {
	switch s := s.(type) {
	case *ast.AssignStmt:
		if len(s.Lhs) != 1 || len(s.Rhs) != 1 {
			return Statement{}, errors.Wrap(symbolic.ErrUnsupportedSyntax, "parallel assignment")
		}
		id, ok := s.Lhs[0].(*ast.Ident)
		if !ok {
			return Statement{}, errors.Wrapf(symbolic.ErrUnsupportedSyntax, "assignment to %T", s.Lhs[0])
		}
		e, err := symbolic.FromAST(s.Rhs[0])
		if err != nil {
			return Statement{}, err
		}

		target := symbolic.Identifier(id.Name)
		switch s.Tok {
		case token.ASSIGN, token.DEFINE:
		default:
			op, ok := compound[s.Tok]
			if !ok {
				return Statement{}, errors.Wrapf(symbolic.ErrUnsupportedSyntax, "assignment operator %s", s.Tok)
			}
			e = symbolic.Binary(op, target, e)
		}
		return Statement{Kind: Assign, Target: target, Expr: e}, nil

	case *ast.IncDecStmt:
		id, ok := s.X.(*ast.Ident)
		if !ok {
			return Statement{}, errors.Wrapf(symbolic.ErrUnsupportedSyntax, "%s of %T", s.Tok, s.X)
		}
		op := token.ADD
		if s.Tok == token.DEC {
			op = token.SUB
		}
		target := symbolic.Identifier(id.Name)
		return Statement{Kind: Assign, Target: target, Expr: symbolic.Binary(op, target, symbolic.Int(1))}, nil

	case *ast.ExprStmt:
		call, ok := s.X.(*ast.CallExpr)
		if !ok || len(call.Args) != 1 {
			break
		}
		fun, ok := call.Fun.(*ast.Ident)
		if !ok {
			break
		}

		var kind Kind
		switch fun.Name {
		case "assume":
			kind = Assume
		case "check":
			kind = Check
		case "eval", "print":
			kind = Eval
		default:
			return Statement{}, errors.Wrapf(symbolic.ErrUnsupportedSyntax, "call to %s", fun.Name)
		}
		e, err := symbolic.FromAST(call.Args[0])
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: kind, Expr: e}, nil
	}
	return Statement{}, errors.Wrapf(symbolic.ErrUnsupportedSyntax, "statement of type %T", s)
}

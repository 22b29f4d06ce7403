package absint

import (
	"go/token"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
	"github.com/cs-au-dk/absdom/utils"
)

var (
	opts   = utils.Opts()
	logger = utils.Logger()
)

var (
	Lattices = L.Create().Lattice
	Elements = L.Create().Element
)

// position renders the source position of a program point, if any.
func position(pp symbolic.ProgramPoint) token.Pos {
	if pp == nil {
		return token.NoPos
	}
	return pp.Pos()
}

// modTwoGuard recognizes guards of the shape `e % 2 == c` and
// `e % 2 != c`, with the constant on either side. It returns the
// remainder expression and c.
func modTwoGuard(expr symbolic.Expression) (rem symbolic.BinaryExpression, c int64, ok bool) {
	cmp, isBinary := expr.(symbolic.BinaryExpression)
	if !isBinary || (cmp.Op != token.EQL && cmp.Op != token.NEQ) {
		return
	}

	left, right := cmp.Left, cmp.Right
	if _, isConst := left.(symbolic.Constant); isConst {
		left, right = right, left
	}
	lit, isConst := right.(symbolic.Constant)
	if !isConst {
		return
	}
	if c, ok = lit.Int64(); !ok {
		return
	}

	rem, isBinary = left.(symbolic.BinaryExpression)
	if !isBinary || rem.Op != token.REM {
		return rem, c, false
	}
	div, isConst := rem.Right.(symbolic.Constant)
	if !isConst {
		return rem, c, false
	}
	if k, isInt := div.Int64(); !isInt || (k != 2 && k != -2) {
		return rem, c, false
	}
	return rem, c, true
}

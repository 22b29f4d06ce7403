package pkgutil

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

// buildMode sanity checks every function that is built.
const buildMode = ssa.SanityCheckFunctions | ssa.InstantiateGenerics

// BuildSource type checks and builds the SSA form of a single-file package.
// Imports are resolved from the export data of the standard library.
func BuildSource(filename string, src []byte) (*ssa.Package, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.AllErrors)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filename)
	}

	pkg := types.NewPackage(file.Name.Name, file.Name.Name)
	tc := &types.Config{Importer: importer.Default()}
	ssaPkg, _, err := ssautil.BuildPackage(tc, fset, pkg, []*ast.File{file}, buildMode)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", filename)
	}
	return ssaPkg, nil
}

// BuildFile reads a Go source file from disk and builds it with BuildSource.
func BuildFile(path string) (*ssa.Package, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read %s", path)
	}
	return BuildSource(path, src)
}

// Function finds a package level function by name.
func Function(pkg *ssa.Package, name string) (*ssa.Function, error) {
	if fun := pkg.Func(name); fun != nil {
		return fun, nil
	}
	return nil, errors.Errorf("function %s not found in package %s", name, pkg.Pkg.Path())
}

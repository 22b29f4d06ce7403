package main

import (
	"fmt"
	"os"
	"time"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/script"
	"github.com/cs-au-dk/absdom/analysis/symbolic"
	"github.com/cs-au-dk/absdom/pkgutil"
	"github.com/cs-au-dk/absdom/utils"
	"github.com/pkg/errors"
)

// pipeline runs the selected task over one value domain.
type pipeline[E L.Element[E]] struct {
	// domain builds the value domain. The registry is nil for scripts,
	// in which case every identifier is treated as an integer.
	domain func(*symbolic.Registry) L.ValueDomain[E]
	// samples are the elements on which the lattice laws are checked.
	samples []E
}

func (pl pipeline[E]) execute() error {
	if opts.Verbose() {
		defer utils.TimeTrack(time.Now(), "Task "+opts.Task().Name())
	}

	switch {
	case task.IsRun():
		return pl.runScript()
	case task.IsSSA():
		return pl.runSSA()
	default:
		return pl.secondaryTask()
	}
}

// runScript evaluates the script given as the first positional argument.
func (pl pipeline[E]) runScript() error {
	path := utils.MakePath()
	if path == "" {
		return errors.New("no script given")
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "Unable to read %s", path)
	}

	logger.Debugf("Running %s over %s", path, opts.Domain().Name())
	trace, err := script.Run(string(src), pl.domain(nil))
	if err != nil {
		return err
	}
	pl.report(trace)
	return nil
}

// runSSA evaluates the entry block of the function selected with -fun in
// the Go file given as the first positional argument.
func (pl pipeline[E]) runSSA() error {
	path := utils.MakePath()
	if path == "" {
		return errors.New("no Go file given")
	}
	pkg, err := pkgutil.BuildFile(path)
	if err != nil {
		return err
	}
	fun, err := pkgutil.Function(pkg, opts.Function())
	if err != nil {
		return err
	}

	reg := symbolic.NewRegistry()
	stmts, err := script.FromSSA(fun, reg)
	if err != nil {
		return err
	}
	reg.Freeze()

	utils.VerbosePrint("Identifiers:\n")
	for _, id := range reg.Identifiers() {
		typ, _ := reg.Type(id)
		utils.VerbosePrint("  %s : %s\n", id, typ)
	}

	logger.Debugf("Evaluating %s over %s", fun, opts.Domain().Name())
	trace, err := script.Exec(stmts, pl.domain(reg))
	if err != nil {
		return err
	}
	pl.report(trace)
	return nil
}

func (pl pipeline[E]) report(trace *script.Trace[E]) {
	fmt.Print(trace.Pretty())
	fmt.Println()
	fmt.Println("Final state:")
	fmt.Println(trace.Final)
	gatherMetrics(trace)
}

package main

import (
	"fmt"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/cs-au-dk/absdom/analysis/script"
	"github.com/fatih/color"
)

// gatherMetrics summarizes the outcomes of the checks in a trace.
func gatherMetrics[E L.Element[E]](trace *script.Trace[E]) {
	outcomes := map[L.Satisfiability]int{}
	checks, unreachable := 0, 0
	for _, step := range trace.Steps {
		if step.Kind == script.Check {
			checks++
			outcomes[step.Outcome]++
		}
		if step.Unreachable {
			unreachable++
		}
	}
	if checks == 0 && unreachable == 0 {
		return
	}

	msg := "================ Results =====================\n"
	msg += fmt.Sprintf("Checks: %d\n", checks)
	msg += "  " + color.GreenString("%s", L.Satisfied) + fmt.Sprintf(": %d\n", outcomes[L.Satisfied])
	msg += "  " + color.RedString("%s", L.NotSatisfied) + fmt.Sprintf(": %d\n", outcomes[L.NotSatisfied])
	msg += "  " + color.YellowString("%s", L.Unknown) + fmt.Sprintf(": %d\n", outcomes[L.Unknown])
	if unreachable > 0 {
		msg += fmt.Sprintf("Statements with an unreachable state: %d\n", unreachable)
	}
	msg += "================ Results ====================="
	fmt.Println(msg)
}

package main

import (
	"fmt"

	L "github.com/cs-au-dk/absdom/analysis/lattice"
	"github.com/fatih/color"
)

// secondaryTask executes the tasks that do not evaluate a program.
func (pl pipeline[E]) secondaryTask() error {
	switch {
	// laws : checks the lattice laws of the selected domain over its samples,
	// together with ⊤ and ⊥.
	case task.IsLaws():
		lat := pl.domain(nil)
		fmt.Println("Checking", lat, "over", len(pl.samples)+2, "elements")
		if err := L.CheckLaws[E](lat, pl.samples); err != nil {
			fmt.Println(color.RedString("Lattice laws violated"))
			return err
		}
		fmt.Println(color.GreenString("All lattice laws hold"))
	}
	return nil
}

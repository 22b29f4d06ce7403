package utils

import (
	"flag"
)

// MakePath returns the first non-flag argument, which names the input of
// the run and ssa tasks. It is empty if no argument was provided.
func MakePath() (path string) {
	if args := flag.Args(); len(args) >= 1 {
		path = args[0]
	}
	return
}

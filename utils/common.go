package utils

import (
	"fmt"
	T "go/types"
	"time"
)

func TimeTrack(start time.Time, name string) {
	fmt.Printf("%s took %s\n", name, time.Since(start))
}

func VerbosePrint(format string, a ...interface{}) (n int, err error) {
	if Opts().Verbose() {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}

// IsIntegerType checks whether values of the given type may be tracked
// by an integer abstraction. Named types are unwrapped to their
// underlying type, so `type myint int` qualifies.
func IsIntegerType(typ T.Type) bool {
	if typ == nil {
		return false
	}
	switch typ := typ.Underlying().(type) {
	case *T.Basic:
		return typ.Info()&T.IsInteger != 0
	case *T.Interface:
		// Type parameters constrained to integers.
		if typ.IsMethodSet() || typ.NumEmbeddeds() != 1 {
			return false
		}
		union, ok := typ.EmbeddedType(0).(*T.Union)
		if !ok {
			return false
		}
		for i := 0; i < union.Len(); i++ {
			if !IsIntegerType(union.Term(i).Type()) {
				return false
			}
		}
		return true
	}
	return false
}

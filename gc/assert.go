package gc

import "fmt"

// asserts gates the collector's internal invariant checks (spec.md §7:
// "invariant violation" is a defensive, not operational, error class). It is
// true here, so every check runs and panics on failure; setting it to false
// compiles the checks out.
// Mirrors the asserts switch used for the lock-free task queue this
// collector's intrusive lists are styled after.
const asserts = true

func assertf(cond bool, format string, args ...any) {
	if asserts && !cond {
		panic(fmt.Sprintf("gc: invariant violation: "+format, args...))
	}
}

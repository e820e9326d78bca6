package kmedoids

import "fmt"

// Status describes where a clustering run is in its lifecycle. Result
// always carries one of the two terminal values.
type Status int

const (
	// StatusInitializing is the state before the first iteration, while
	// inputs are validated and caches allocated.
	StatusInitializing Status = iota
	// StatusIterating is the state during the assignment/swap loop.
	StatusIterating
	// StatusConverged means the run stopped because no improving swap
	// existed and assignments had stabilized within the tolerance.
	StatusConverged
	// StatusMaxIterations means the run stopped because the iteration
	// budget was exhausted before convergence.
	StatusMaxIterations
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusIterating:
		return "iterating"
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max iterations reached"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// transition enforces the run lifecycle: initializing feeds the iteration
// loop, which ends in exactly one terminal state. A move outside that
// order is a programming error, so it panics rather than returning.
func transition(from, to Status) Status {
	legal := false
	switch from {
	case StatusInitializing:
		legal = to == StatusIterating
	case StatusIterating:
		legal = to == StatusConverged || to == StatusMaxIterations
	}
	if !legal {
		panic(fmt.Sprintf("kmedoids: illegal status transition %s -> %s", from, to))
	}
	return to
}

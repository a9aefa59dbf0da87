package solve

import "fmt"

// SetupError is returned synchronously from Engine builder calls (Var,
// AddConstraint) when the model is malformed: an unknown
// variable, a duplicate declaration, or an empty domain.
type SetupError struct {
	Op  string
	Msg string
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("solve: setup error in %s: %s", e.Op, e.Msg)
}

// UnsatisfiableError is returned once by Solve when pruning would empty a
// partition and no speculative merge rescues it. It carries enough of the
// table's state at the point of failure to explain the failure to a human.
type UnsatisfiableError struct {
	Constraint string
	Vars       []string
	Snapshot   string
}

func (e *UnsatisfiableError) Error() string {
	return fmt.Sprintf("UNSATISFIABLE: constraint %s on %v is unsatisfiable", e.Constraint, e.Vars)
}

// InvariantError marks a defensive check failure: a violated invariant the
// engine itself is responsible for maintaining (disjoint signatures, a
// non-empty table). This is a bug in the engine or its caller, not a
// reportable puzzle failure, and callers are expected to treat it as fatal.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("solve: invariant violated: %s", e.Msg)
}

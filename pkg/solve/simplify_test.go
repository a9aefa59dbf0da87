package solve

import "testing"

// TestSimplify_PrunesImpossibleValues checks that a single pass of pruning
// removes domain values a Sum constraint can already rule out without any
// partition merge.
func TestSimplify_PrunesImpossibleValues(t *testing.T) {
	tab := New([]VarDomain[string, int]{
		{Var: "a", Domain: []int{1, 2, 3}},
		{Var: "b", Domain: []int{10}},
	})
	c := NewSum[string, int]("a+b=12", []string{"a", "b"}, nil, 12, identityInt)
	out, err := Simplify(tab, []Constraint[string, int]{c})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	aPart := out.Partitions[out.FindPartition("a")]
	if len(aPart.Tuples) != 1 || aPart.Tuples[0][0] != 2 {
		t.Fatalf("expected a to be pruned to {2}, got %v", aPart.Tuples)
	}
}

// TestSimplify_ReturnsUnsatisfiableWhenEveryValueIsPruned checks that
// emptying a partition during pruning surfaces *UnsatisfiableError rather
// than panicking or returning a table with an empty partition.
func TestSimplify_ReturnsUnsatisfiableWhenEveryValueIsPruned(t *testing.T) {
	tab := New([]VarDomain[string, int]{
		{Var: "a", Domain: []int{1, 2}},
	})
	c := NewSum[string, int]("a=99", []string{"a"}, nil, 99, identityInt)
	_, err := Simplify(tab, []Constraint[string, int]{c})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := err.(*UnsatisfiableError); !ok {
		t.Fatalf("expected *UnsatisfiableError, got %T: %v", err, err)
	}
}

// TestSimplify_MergesSingletonPartitions checks that two partitions
// already pruned to a single tuple each get merged into one during
// Simplify's fixpoint loop.
func TestSimplify_MergesSingletonPartitions(t *testing.T) {
	tab := New([]VarDomain[string, int]{
		{Var: "a", Domain: []int{5}},
		{Var: "b", Domain: []int{7}},
	})
	out, err := Simplify(tab, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsSolved() {
		t.Fatalf("two singleton partitions should merge into one solved partition")
	}
}

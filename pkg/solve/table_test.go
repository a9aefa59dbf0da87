package solve

import "testing"

// TestTable_PossibilitiesIsProductOfPartitionSizes verifies Possibilities
// multiplies tuple counts across partitions rather than summing them.
func TestTable_PossibilitiesIsProductOfPartitionSizes(t *testing.T) {
	tab := New([]VarDomain[string, int]{
		{Var: "x", Domain: []int{1, 2, 3}},
		{Var: "y", Domain: []int{1, 2}},
	})
	if got := tab.Possibilities().Int64(); got != 6 {
		t.Fatalf("Possibilities() = %d, want 6", got)
	}
	if got := tab.Size(); got != 5 {
		t.Fatalf("Size() = %d, want 5", got)
	}
}

// TestTable_IsSolvedRequiresExactlyOnePartition checks the single-partition
// definition of solved, independent of how many tuples that partition has.
func TestTable_IsSolvedRequiresExactlyOnePartition(t *testing.T) {
	tab := New([]VarDomain[string, int]{{Var: "x", Domain: []int{1, 2, 3}}})
	if !tab.IsSolved() {
		t.Fatalf("single-partition table should be solved")
	}
	tab2 := New([]VarDomain[string, int]{
		{Var: "x", Domain: []int{1}},
		{Var: "y", Domain: []int{1}},
	})
	if tab2.IsSolved() {
		t.Fatalf("two-partition table should not be solved")
	}
}

// TestTable_MergePartitionsTakesCartesianProduct verifies the merged
// partition's tuple count is the product of the two inputs' counts, and
// that the original table is left untouched.
func TestTable_MergePartitionsTakesCartesianProduct(t *testing.T) {
	tab := New([]VarDomain[string, int]{
		{Var: "x", Domain: []int{1, 2}},
		{Var: "y", Domain: []int{1, 2, 3}},
	})
	merged := tab.MergePartitions(0, 1)
	if len(merged.Partitions) != 1 {
		t.Fatalf("expected one partition after merge, got %d", len(merged.Partitions))
	}
	if got := len(merged.Partitions[0].Tuples); got != 6 {
		t.Fatalf("merged tuple count = %d, want 6", got)
	}
	if len(tab.Partitions) != 2 {
		t.Fatalf("MergePartitions should not mutate the receiver")
	}
}

// TestTable_ProjectDropsUnrelatedPartitions verifies Project keeps only
// partitions that intersect the requested variable set.
func TestTable_ProjectDropsUnrelatedPartitions(t *testing.T) {
	tab := New([]VarDomain[string, int]{
		{Var: "x", Domain: []int{1, 2}},
		{Var: "y", Domain: []int{1, 2}},
		{Var: "z", Domain: []int{1, 2}},
	})
	proj := tab.Project([]string{"x", "z"})
	if len(proj.Partitions) != 2 {
		t.Fatalf("expected 2 partitions after projecting to {x,z}, got %d", len(proj.Partitions))
	}
	for _, p := range proj.Partitions {
		for _, v := range p.Vars {
			if v == "y" {
				t.Fatalf("projected table should not contain y")
			}
		}
	}
}

// TestTable_CheckInvariantsCatchesDuplicateVariable ensures the defensive
// invariant check rejects a variable appearing in two partitions.
func TestTable_CheckInvariantsCatchesDuplicateVariable(t *testing.T) {
	tab := &Table[string, int]{Partitions: []*Partition[string, int]{
		{Vars: []string{"x"}, Tuples: [][]int{{1}}},
		{Vars: []string{"x"}, Tuples: [][]int{{2}}},
	}}
	if err := tab.CheckInvariants(); err == nil {
		t.Fatalf("expected invariant error for duplicate variable")
	}
}

package solve

import "testing"

// TestOrderFamily_ClassifyStrictlyIncreasing checks Yes/No/Maybe across
// adjacent-position interval overlap for an ascending InOrder lattice.
func TestOrderFamily_ClassifyStrictlyIncreasing(t *testing.T) {
	fam := orderFamily[int]{n: 2, ascending: true}

	yes := orderValue[int]{{Has: true, Min: 1, Max: 1}, {Has: true, Min: 2, Max: 2}}
	if got := fam.Classify(yes); got != Yes {
		t.Errorf("strictly increasing ground pair: got %v, want Yes", got)
	}

	no := orderValue[int]{{Has: true, Min: 5, Max: 5}, {Has: true, Min: 2, Max: 2}}
	if got := fam.Classify(no); got != No {
		t.Errorf("decreasing pair under ascending order: got %v, want No", got)
	}

	maybe := orderValue[int]{{Has: true, Min: 1, Max: 5}, {Has: true, Min: 2, Max: 6}}
	if got := fam.Classify(maybe); got != Maybe {
		t.Errorf("overlapping ranges: got %v, want Maybe", got)
	}
}

// TestInOrderConstraint_PrunesToIncreasingSequences solves 3 variables over
// a shared domain bound by InOrder and checks every solution is strictly
// increasing left to right.
func TestInOrderConstraint_PrunesToIncreasingSequences(t *testing.T) {
	e := NewEngine[string, int]()
	domain := []int{1, 2, 3}
	must(t, e.Var("a", domain))
	must(t, e.Var("b", domain))
	must(t, e.Var("c", domain))
	must(t, e.AddConstraint(NewInOrder[string, int]("inc", []string{"a", "b", "c"}, nil)))
	must(t, e.Solve(DefaultConfig()))

	sols := e.Solutions()
	if len(sols) != 1 {
		t.Fatalf("domain {1,2,3} strictly increasing across 3 positions has exactly one solution, got %d", len(sols))
	}
	s := sols[0]
	if !(s["a"] < s["b"] && s["b"] < s["c"]) {
		t.Errorf("solution %v is not strictly increasing", s)
	}
}

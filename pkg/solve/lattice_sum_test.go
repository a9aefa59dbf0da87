package solve

import "testing"

func identityInt(v int) int { return v }

// TestSumFamily_ClassifyBoundaries checks the three-way verdict a Sum
// constraint reaches as its interval narrows toward, past, or onto target.
func TestSumFamily_ClassifyBoundaries(t *testing.T) {
	fam := sumFamily[int]{target: 10, toInt: identityInt}
	cases := []struct {
		name string
		l    interval
		want Classification
	}{
		{"ground and equal", interval{10, 10}, Yes},
		{"ground but wrong", interval{9, 9}, No},
		{"range excludes target below", interval{11, 20}, No},
		{"range excludes target above", interval{1, 9}, No},
		{"range still contains target", interval{5, 15}, Maybe},
	}
	for _, c := range cases {
		if got := fam.Classify(c.l); got != c.want {
			t.Errorf("%s: Classify(%v) = %v, want %v", c.name, c.l, got, c.want)
		}
	}
}

// TestSumConstraint_PrunesUnreachableSingletons runs a 2-variable Sum
// constraint end to end through Solve and checks every returned solution
// actually sums to the target.
func TestSumConstraint_PrunesUnreachableSingletons(t *testing.T) {
	e := NewEngine[string, int]()
	must(t, e.Var("a", []int{1, 2, 3}))
	must(t, e.Var("b", []int{1, 2, 3}))
	must(t, e.AddConstraint(NewSum[string, int]("a+b=4", []string{"a", "b"}, nil, 4, identityInt)))
	must(t, e.Solve(DefaultConfig()))

	sols := e.Solutions()
	if len(sols) == 0 {
		t.Fatalf("expected at least one solution")
	}
	for _, s := range sols {
		if s["a"]+s["b"] != 4 {
			t.Errorf("solution %v does not sum to 4", s)
		}
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

package mergesearch

import "testing"

// TestRun_PreservesIndexOrderRegardlessOfCompletion checks that Results[i]
// always corresponds to trials[i], even when later trials are cheap enough
// to finish before earlier ones.
func TestRun_PreservesIndexOrderRegardlessOfCompletion(t *testing.T) {
	trials := make([]Trial[int], 8)
	for i := range trials {
		i := i
		trials[i] = Trial[int]{Index: i, Run: func() int { return i * i }}
	}
	got := Run(trials, 4)
	for i, v := range got {
		if v != i*i {
			t.Errorf("Results[%d] = %d, want %d", i, v, i*i)
		}
	}
}

// TestRun_FewerThanTwoTrialsRunsInline checks the zero- and one-trial cases
// don't require spinning up a worker pool to produce a correct result.
func TestRun_FewerThanTwoTrialsRunsInline(t *testing.T) {
	if got := Run([]Trial[int]{}, 4); len(got) != 0 {
		t.Errorf("expected an empty result slice for zero trials, got %v", got)
	}
	one := []Trial[int]{{Index: 0, Run: func() int { return 7 }}}
	if got := Run(one, 4); len(got) != 1 || got[0] != 7 {
		t.Errorf("Run(one trial) = %v, want [7]", got)
	}
}

// TestRun_DefaultsWorkerCountWhenNonPositive checks a non-positive
// maxWorkers still completes every trial rather than deadlocking.
func TestRun_DefaultsWorkerCountWhenNonPositive(t *testing.T) {
	trials := make([]Trial[int], 5)
	for i := range trials {
		i := i
		trials[i] = Trial[int]{Index: i, Run: func() int { return i + 1 }}
	}
	got := Run(trials, 0)
	for i, v := range got {
		if v != i+1 {
			t.Errorf("Results[%d] = %d, want %d", i, v, i+1)
		}
	}
}

// TestRun_MoreWorkersThanTrialsIsHarmless checks requesting more workers
// than trials doesn't panic on the channel send/close sequence.
func TestRun_MoreWorkersThanTrialsIsHarmless(t *testing.T) {
	trials := []Trial[string]{
		{Index: 0, Run: func() string { return "a" }},
		{Index: 1, Run: func() string { return "b" }},
	}
	got := Run(trials, 64)
	if got[0] != "a" || got[1] != "b" {
		t.Fatalf("Run = %v, want [a b]", got)
	}
}

package solve

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/solvomatic/solvomatic/internal/xlog"
)

// TestSolve_ResolvesCrossPartitionConstraintsByMerging builds a scenario
// no amount of single-partition pruning can resolve on its own (two Sum
// constraints that each only become decidable once their variables share
// a partition) and checks Solve finds exactly the valid combinations.
func TestSolve_ResolvesCrossPartitionConstraintsByMerging(t *testing.T) {
	e := NewEngine[string, int]()
	domain := []int{1, 2}
	must(t, e.Var("x", domain))
	must(t, e.Var("y", domain))
	must(t, e.Var("z", domain))
	must(t, e.AddConstraint(NewSum[string, int]("x+y=3", []string{"x", "y"}, nil, 3, identityInt)))
	must(t, e.AddConstraint(NewSum[string, int]("y+z=3", []string{"y", "z"}, nil, 3, identityInt)))
	must(t, e.Solve(DefaultConfig()))

	sols := e.Solutions()
	if len(sols) != 2 {
		t.Fatalf("expected 2 solutions, got %d: %v", len(sols), sols)
	}
	for _, s := range sols {
		if s["x"]+s["y"] != 3 || s["y"]+s["z"] != 3 {
			t.Errorf("solution %v violates a sum constraint", s)
		}
	}
}

// TestSolve_ReportsUnsatisfiable checks an impossible puzzle (two
// single-digit variables whose sum can never reach 100) surfaces
// *UnsatisfiableError instead of looping or returning a bogus table.
func TestSolve_ReportsUnsatisfiable(t *testing.T) {
	e := NewEngine[string, int]()
	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	must(t, e.Var("a", digits))
	must(t, e.Var("b", digits))
	must(t, e.AddConstraint(NewSum[string, int]("a+b=100", []string{"a", "b"}, nil, 100, identityInt)))

	err := e.Solve(DefaultConfig())
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := err.(*UnsatisfiableError); !ok {
		t.Fatalf("expected *UnsatisfiableError, got %T: %v", err, err)
	}
}

// TestSolve_ParallelMatchesSequential checks that turning on Config.Parallel
// does not change which solutions are found, only how they are searched for.
func TestSolve_ParallelMatchesSequential(t *testing.T) {
	build := func() *Engine[string, int] {
		e := NewEngine[string, int]()
		domain := []int{1, 2, 3}
		must(t, e.Var("x", domain))
		must(t, e.Var("y", domain))
		must(t, e.Var("z", domain))
		must(t, e.AddConstraint(NewPermutation[string, int]("perm", []string{"x", "y", "z"}, nil, domain)))
		return e
	}

	seq := build()
	must(t, seq.Solve(DefaultConfig()))
	par := build()
	must(t, par.Solve(Config{Parallel: true, MaxWorkers: 4}))

	if len(seq.Solutions()) != len(par.Solutions()) {
		t.Fatalf("sequential found %d solutions, parallel found %d", len(seq.Solutions()), len(par.Solutions()))
	}
}

// TestSolve_LogElapsedAndLogStatesProduceOutput checks that Config's
// LogElapsed and LogStates fields each drive a real log line, not a
// declared-but-unread setting.
func TestSolve_LogElapsedAndLogStatesProduceOutput(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(dir + "/out.log")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	xlog.Configure(slog.LevelInfo, f)
	defer xlog.Configure(slog.LevelWarn, os.Stderr)

	e := NewEngine[string, int]()
	domain := []int{1, 2, 3}
	must(t, e.Var("x", domain))
	must(t, e.Var("y", domain))
	must(t, e.AddConstraint(NewSum[string, int]("x+y=3", []string{"x", "y"}, nil, 3, identityInt)))
	must(t, e.Solve(Config{LogElapsed: true, LogStates: true}))

	out, err := os.ReadFile(dir + "/out.log")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(out), "step elapsed") {
		t.Errorf("LogElapsed produced no \"step elapsed\" log line:\n%s", out)
	}
	if !strings.Contains(string(out), "partition") {
		t.Errorf("LogStates produced no table-state log line:\n%s", out)
	}
}

package solve

import (
	"cmp"
	"math/big"
	"time"

	"github.com/solvomatic/solvomatic/internal/mergesearch"
	"github.com/solvomatic/solvomatic/internal/xlog"
)

// Config mirrors the log_steps/log_constraints/log_elapsed/log_states flags
// original_source's driver exposes, plus a Parallel switch for the
// speculative merge search (§5 permits, does not require, parallelizing
// it).
type Config struct {
	LogSteps       bool
	LogConstraints bool
	LogElapsed     bool
	LogStates      bool
	Parallel       bool
	MaxWorkers     int
}

// DefaultConfig matches the quiet defaults of a library call; CLI users get
// a more verbose Config via cmd/solvomatic's flags.
func DefaultConfig() Config {
	return Config{}
}

type mergeCandidate[Var cmp.Ordered, Value cmp.Ordered] struct {
	i, j  int
	table *Table[Var, Value]
	size  int
	poss  *big.Int
	err   error
}

// better reports whether a is the preferred candidate over b: smaller
// size first, then smaller possibility count, then lower partition
// indices — the deterministic tie-break §4.4/§5 require.
func (a mergeCandidate[Var, Value]) better(b mergeCandidate[Var, Value]) bool {
	if a.size != b.size {
		return a.size < b.size
	}
	if c := a.poss.Cmp(b.poss); c != 0 {
		return c < 0
	}
	if a.i != b.i {
		return a.i < b.i
	}
	return a.j < b.j
}

// Solve runs §4.4's solve loop to completion: Simplify, then while not
// solved, speculatively try every partition pair, keep the table produced
// by the most size-reducing surviving candidate, and repeat. It returns
// *UnsatisfiableError if pruning ever empties a partition with no
// surviving merge candidate to rescue it.
func Solve[Var cmp.Ordered, Value cmp.Ordered](t *Table[Var, Value], constraints []Constraint[Var, Value], cfg Config) (*Table[Var, Value], error) {
	cur, err := Simplify(t, constraints)
	if err != nil {
		return nil, err
	}
	step := 0
	for {
		stepStart := time.Now()
		if cfg.LogSteps {
			xlog.Steps().Info("step", "n", step, "size", cur.Size(), "possibilities", cur.Possibilities().String())
		}
		if cfg.LogStates {
			xlog.States().Info(cur.String())
		}
		if cur.IsSolved() {
			return cur, nil
		}

		n := len(cur.Partitions)
		trials := make([]mergesearch.Trial[mergeCandidate[Var, Value]], 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				i, j := i, j
				idx := len(trials)
				trials = append(trials, mergesearch.Trial[mergeCandidate[Var, Value]]{
					Index: idx,
					Run: func() mergeCandidate[Var, Value] {
						merged := cur.MergePartitions(i, j)
						simplified, err := Simplify(merged, constraints)
						if err != nil {
							return mergeCandidate[Var, Value]{i: i, j: j, err: err}
						}
						return mergeCandidate[Var, Value]{
							i: i, j: j, table: simplified,
							size: simplified.Size(), poss: simplified.Possibilities(),
						}
					},
				})
			}
		}

		workers := 1
		if cfg.Parallel {
			workers = cfg.MaxWorkers
		}
		results := mergesearch.Run(trials, workers)

		var best *mergeCandidate[Var, Value]
		for k := range results {
			r := results[k]
			if r.err != nil {
				continue
			}
			if best == nil || r.better(*best) {
				rCopy := r
				best = &rCopy
			}
		}
		if best == nil {
			return nil, &UnsatisfiableError{
				Constraint: "(no surviving partition merge)",
				Vars:       varNames(cur.Vars()),
				Snapshot:   cur.String(),
			}
		}
		if cfg.LogConstraints {
			xlog.Constraints().Info("merged partitions", "i", best.i, "j", best.j)
		}
		if cfg.LogElapsed {
			xlog.Steps().Info("step elapsed", "n", step, "duration", time.Since(stepStart).String())
		}
		cur = best.table
		step++
	}
}

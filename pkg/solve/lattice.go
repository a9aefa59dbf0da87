package solve

import (
	"cmp"

	"github.com/samber/lo"
)

// Family is the lattice algebra a constraint kind supplies: bot/top
// identities, associative-commutative and/or, a per-position summary of a
// single concrete value, and the classify decision. L is the family's own
// lattice value type (an interval, a multiset pair, a bitset, ...) and never
// escapes outside the family's own file — callers only ever see the
// Constraint interface built on top of it.
type Family[Value cmp.Ordered, L any] interface {
	Top() L
	Bot() L
	And(a, b L) L
	Or(a, b L) L
	Single(pos int, v Value) L
	Classify(l L) Classification
}

// FoldValue implements §4.3 steps 1-4: project to the constraint's
// variables, tuple-wise and, partition-wise or, cross-partition and. It is
// shared by every lattice family; only the family's own And/Or/Single/Top/
// Bot vary.
func FoldValue[Var cmp.Ordered, Value cmp.Ordered, L any](
	t *Table[Var, Value], positions []Var, mapFns []func(Value) Value, fam Family[Value, L],
) L {
	acc := fam.Top()
	proj := t.Project(distinctVars(positions))
	for _, p := range proj.Partitions {
		partVal := fam.Bot()
		touchedPartition := false
		for _, tup := range p.Tuples {
			tupVal := fam.Top()
			touchedTuple := false
			for i, v := range positions {
				idx := p.indexOf(v)
				if idx < 0 {
					continue
				}
				touchedTuple = true
				val := tup[idx]
				if mapFns != nil && mapFns[i] != nil {
					val = mapFns[i](val)
				}
				tupVal = fam.And(tupVal, fam.Single(i, val))
			}
			if !touchedTuple {
				continue
			}
			partVal = fam.Or(partVal, tupVal)
			touchedPartition = true
		}
		if touchedPartition {
			acc = fam.And(acc, partVal)
		}
	}
	return acc
}

// Eval folds and classifies in one step.
func Eval[Var cmp.Ordered, Value cmp.Ordered, L any](
	t *Table[Var, Value], positions []Var, mapFns []func(Value) Value, fam Family[Value, L],
) Classification {
	return fam.Classify(FoldValue(t, positions, mapFns, fam))
}

// distinctVars returns the set of distinct variables among positions,
// preserving first-occurrence order (order does not matter for Project's
// correctness but keeps output deterministic for debugging).
func distinctVars[Var cmp.Ordered](positions []Var) []Var {
	return lo.Uniq(positions)
}

// pinned returns a shallow copy of t with partitionIdx's tuple list
// replaced by the single tuple at tupleIdx — the pruning primitive's
// "temporarily pinned to {τ}" table from §4.3.
func pinned[Var cmp.Ordered, Value cmp.Ordered](t *Table[Var, Value], partitionIdx, tupleIdx int) *Table[Var, Value] {
	out := make([]*Partition[Var, Value], len(t.Partitions))
	copy(out, t.Partitions)
	orig := t.Partitions[partitionIdx]
	out[partitionIdx] = &Partition[Var, Value]{Vars: orig.Vars, Tuples: [][]Value{orig.Tuples[tupleIdx]}}
	return &Table[Var, Value]{Partitions: out}
}

package solve

import (
	"cmp"
	"fmt"
)

func intersects[Var cmp.Ordered](a, b []Var) bool {
	set := make(map[Var]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// Simplify repeats the pruning + singleton-merge pass to a fixpoint (§4.4).
// It returns *UnsatisfiableError if any partition's tuples are all pruned.
func Simplify[Var cmp.Ordered, Value cmp.Ordered](t *Table[Var, Value], constraints []Constraint[Var, Value]) (*Table[Var, Value], error) {
	cur := t
	for {
		var changedPrune, changedMerge bool
		var err error
		cur, changedPrune, err = prunePass(cur, constraints)
		if err != nil {
			return nil, err
		}
		cur, changedMerge = mergeSingletonsPass(cur)
		if !changedPrune && !changedMerge {
			return cur, nil
		}
	}
}

func prunePass[Var cmp.Ordered, Value cmp.Ordered](t *Table[Var, Value], constraints []Constraint[Var, Value]) (*Table[Var, Value], bool, error) {
	changed := false
	newParts := make([]*Partition[Var, Value], len(t.Partitions))
	for pi, p := range t.Partitions {
		relevant := make([]Constraint[Var, Value], 0, len(constraints))
		for _, c := range constraints {
			if intersects(c.Vars(), p.Vars) {
				relevant = append(relevant, c)
			}
		}
		keep := make([][]Value, 0, len(p.Tuples))
		var failing Constraint[Var, Value]
		for ti := range p.Tuples {
			bad := false
			for _, c := range relevant {
				if c.EvalPinned(t, pi, ti) == No {
					bad = true
					failing = c
					break
				}
			}
			if bad {
				changed = true
				continue
			}
			keep = append(keep, p.Tuples[ti])
		}
		if len(keep) == 0 {
			return nil, false, &UnsatisfiableError{
				Constraint: failing.Name(),
				Vars:       varNames(failing.Vars()),
				Snapshot:   t.String(),
			}
		}
		if len(keep) == len(p.Tuples) {
			newParts[pi] = p
		} else {
			newParts[pi] = &Partition[Var, Value]{Vars: p.Vars, Tuples: keep}
		}
	}
	return &Table[Var, Value]{Partitions: newParts}, changed, nil
}

func mergeSingletonsPass[Var cmp.Ordered, Value cmp.Ordered](t *Table[Var, Value]) (*Table[Var, Value], bool) {
	for i := 0; i < len(t.Partitions); i++ {
		if len(t.Partitions[i].Tuples) != 1 {
			continue
		}
		for j := i + 1; j < len(t.Partitions); j++ {
			if len(t.Partitions[j].Tuples) == 1 {
				return t.MergePartitions(i, j), true
			}
		}
	}
	return t, false
}

func varNames[Var cmp.Ordered](vs []Var) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprintf("%v", v)
	}
	return out
}

// String renders a compact human-readable snapshot of the table, used in
// Unsatisfiable error messages and step logging.
func (t *Table[Var, Value]) String() string {
	s := ""
	for _, p := range t.Partitions {
		s += fmt.Sprintf("partition%v: %d tuples\n", p.Vars, len(p.Tuples))
	}
	return s
}

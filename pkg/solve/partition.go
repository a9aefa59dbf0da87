package solve

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Partition is an ordered, non-empty list of variables (its signature)
// together with a non-empty, duplicate-free set of tuples matching that
// signature. A partition denotes the disjunction of its tuples.
type Partition[Var cmp.Ordered, Value cmp.Ordered] struct {
	Vars   []Var
	Tuples [][]Value
}

// newPartition builds a partition from a signature and a set of tuples,
// deduplicating by full-signature equality. It panics if given an empty
// tuple set or tuples whose length disagrees with the signature — both are
// programming errors within this package, never a condition a caller can
// trigger directly.
func newPartition[Var cmp.Ordered, Value cmp.Ordered](vars []Var, tuples [][]Value) *Partition[Var, Value] {
	seen := make(map[string]struct{}, len(tuples))
	out := make([][]Value, 0, len(tuples))
	for _, t := range tuples {
		if len(t) != len(vars) {
			panic(fmt.Sprintf("solve: tuple length %d does not match signature length %d", len(t), len(vars)))
		}
		k := tupleKey(t)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		panic("solve: partition constructed with no tuples")
	}
	return &Partition[Var, Value]{Vars: vars, Tuples: out}
}

func tupleKey[Value cmp.Ordered](t []Value) string {
	var b strings.Builder
	for _, v := range t {
		fmt.Fprintf(&b, "%v\x1f", v)
	}
	return b.String()
}

// indexOf returns the position of v within the partition's signature, or -1.
func (p *Partition[Var, Value]) indexOf(v Var) int {
	return slices.Index(p.Vars, v)
}

// Clone returns a deep copy safe to mutate independently of the receiver.
func (p *Partition[Var, Value]) Clone() *Partition[Var, Value] {
	vars := slices.Clone(p.Vars)
	tuples := make([][]Value, len(p.Tuples))
	for i, t := range p.Tuples {
		tuples[i] = slices.Clone(t)
	}
	return &Partition[Var, Value]{Vars: vars, Tuples: tuples}
}

package solve

import (
	"cmp"
	"math/big"
	"slices"
)

// Table is an ordered list of partitions whose signatures are pairwise
// disjoint and whose union is the full variable set. A table denotes the
// conjunction (Cartesian product) of its partitions; it is the solver's
// sole mutable data structure, per §4.2 — every operation here except
// DeleteTuple produces a fresh table value rather than mutating in place,
// which keeps Simplify's
// fixpoint loop and the speculative merge search free of aliasing bugs at
// the cost of some allocation the solver loop is expected to absorb.
type Table[Var cmp.Ordered, Value cmp.Ordered] struct {
	Partitions []*Partition[Var, Value]
}

// VarDomain pairs a declared variable with its finite initial domain, in
// the order the caller wants them to seed the table's partitions.
type VarDomain[Var cmp.Ordered, Value cmp.Ordered] struct {
	Var    Var
	Domain []Value
}

// New builds a table with one partition per variable, each holding
// single-value tuples spanning that variable's declared domain.
func New[Var cmp.Ordered, Value cmp.Ordered](vars []VarDomain[Var, Value]) *Table[Var, Value] {
	parts := make([]*Partition[Var, Value], len(vars))
	for i, vd := range vars {
		tuples := make([][]Value, len(vd.Domain))
		for j, v := range vd.Domain {
			tuples[j] = []Value{v}
		}
		parts[i] = newPartition([]Var{vd.Var}, tuples)
	}
	return &Table[Var, Value]{Partitions: parts}
}

// Size is the sum of tuple counts across partitions.
func (t *Table[Var, Value]) Size() int {
	n := 0
	for _, p := range t.Partitions {
		n += len(p.Tuples)
	}
	return n
}

// Possibilities is the product of partition tuple counts. It is returned as
// a big.Int because that product overflows int64 on puzzles no larger than
// a 4x4 magic square.
func (t *Table[Var, Value]) Possibilities() *big.Int {
	out := big.NewInt(1)
	for _, p := range t.Partitions {
		out.Mul(out, big.NewInt(int64(len(p.Tuples))))
	}
	return out
}

// IsSolved is true iff the table contains exactly one partition.
func (t *Table[Var, Value]) IsSolved() bool {
	return len(t.Partitions) == 1
}

// Clone returns a deep copy of the table.
func (t *Table[Var, Value]) Clone() *Table[Var, Value] {
	parts := make([]*Partition[Var, Value], len(t.Partitions))
	for i, p := range t.Partitions {
		parts[i] = p.Clone()
	}
	return &Table[Var, Value]{Partitions: parts}
}

// Project forms a new table containing only the variables of S, in the
// order given. A partition wholly outside S is dropped; a partition
// intersecting S is restricted to its S-positions and deduplicated.
func (t *Table[Var, Value]) Project(s []Var) *Table[Var, Value] {
	var out []*Partition[Var, Value]
	for _, p := range t.Partitions {
		var keepIdx []int
		for _, v := range s {
			if idx := p.indexOf(v); idx >= 0 && !slices.Contains(keepIdx, idx) {
				keepIdx = append(keepIdx, idx)
			}
		}
		if len(keepIdx) == 0 {
			continue
		}
		newVars := make([]Var, len(keepIdx))
		for i, idx := range keepIdx {
			newVars[i] = p.Vars[idx]
		}
		newTuples := make([][]Value, len(p.Tuples))
		for i, tup := range p.Tuples {
			nt := make([]Value, len(keepIdx))
			for j, idx := range keepIdx {
				nt[j] = tup[idx]
			}
			newTuples[i] = nt
		}
		out = append(out, newPartition(newVars, newTuples))
	}
	return &Table[Var, Value]{Partitions: out}
}

// DeleteTuple removes one tuple from a partition by index, mutating that
// partition in place. It reports an InvariantError if that was the
// partition's only tuple, since an empty partition has no valid
// representation. The solver loop does not call it: prunePass builds new
// partitions from the surviving tuples instead.
func (t *Table[Var, Value]) DeleteTuple(partitionIdx, tupleIdx int) error {
	p := t.Partitions[partitionIdx]
	if len(p.Tuples) <= 1 {
		return &InvariantError{Msg: "DeleteTuple would empty a partition"}
	}
	p.Tuples = slices.Delete(p.Tuples, tupleIdx, tupleIdx+1)
	return nil
}

// MergePartitions replaces partitions i and j with a new partition whose
// signature is their concatenation and whose tuples are the deduplicated
// Cartesian product. Returns a new table; the receiver is left untouched.
func (t *Table[Var, Value]) MergePartitions(i, j int) *Table[Var, Value] {
	if i > j {
		i, j = j, i
	}
	pi, pj := t.Partitions[i], t.Partitions[j]

	vars := make([]Var, 0, len(pi.Vars)+len(pj.Vars))
	vars = append(vars, pi.Vars...)
	vars = append(vars, pj.Vars...)

	tuples := make([][]Value, 0, len(pi.Tuples)*len(pj.Tuples))
	for _, a := range pi.Tuples {
		for _, b := range pj.Tuples {
			nt := make([]Value, 0, len(a)+len(b))
			nt = append(nt, a...)
			nt = append(nt, b...)
			tuples = append(tuples, nt)
		}
	}
	merged := newPartition(vars, tuples)

	out := make([]*Partition[Var, Value], 0, len(t.Partitions)-1)
	for k, p := range t.Partitions {
		if k == i || k == j {
			continue
		}
		out = append(out, p)
	}
	out = append(out, merged)
	return &Table[Var, Value]{Partitions: out}
}

// FindPartition returns the index of the partition owning var, or -1.
func (t *Table[Var, Value]) FindPartition(v Var) int {
	for i, p := range t.Partitions {
		if p.indexOf(v) >= 0 {
			return i
		}
	}
	return -1
}

// Vars returns every variable across all partitions, in table order then
// partition-signature order.
func (t *Table[Var, Value]) Vars() []Var {
	var out []Var
	for _, p := range t.Partitions {
		out = append(out, p.Vars...)
	}
	return out
}

// CheckInvariants defensively verifies signature disjointness and
// non-emptiness across the whole table; see §7 "invariant violation".
func (t *Table[Var, Value]) CheckInvariants() error {
	seen := make(map[Var]struct{})
	for pi, p := range t.Partitions {
		if len(p.Tuples) == 0 {
			return &InvariantError{Msg: "partition is empty"}
		}
		if len(p.Vars) == 0 {
			return &InvariantError{Msg: "partition has no signature"}
		}
		for _, v := range p.Vars {
			if _, dup := seen[v]; dup {
				return &InvariantError{Msg: "variable appears in more than one partition"}
			}
			seen[v] = struct{}{}
		}
		_ = pi
	}
	return nil
}

package solve

import "cmp"

// multiset is a value->multiplicity map. The semantics (sum, union,
// intersection, subset) are the Bag algebra from original_source's
// permutation rules, reimplemented over a Go map instead of a sorted
// Vec<T>+merge scan — a counting map is the natural Go idiom for a
// multiset over a comparable element type and keeps the per-op code to a
// single pass per key rather than a manual merge of two sorted sequences.
type multiset[Value cmp.Ordered] map[Value]int

func singletonMultiset[Value cmp.Ordered](v Value) multiset[Value] {
	return multiset[Value]{v: 1}
}

func fromSlice[Value cmp.Ordered](vs []Value) multiset[Value] {
	m := make(multiset[Value], len(vs))
	for _, v := range vs {
		m[v]++
	}
	return m
}

// sumMultiset adds multiplicities (⊎, multiset sum).
func sumMultiset[Value cmp.Ordered](a, b multiset[Value]) multiset[Value] {
	out := make(multiset[Value], len(a)+len(b))
	for k, v := range a {
		out[k] += v
	}
	for k, v := range b {
		out[k] += v
	}
	return out
}

// unionMultiset takes the max multiplicity per key (∪).
func unionMultiset[Value cmp.Ordered](a, b multiset[Value]) multiset[Value] {
	out := make(multiset[Value], len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if v > out[k] {
			out[k] = v
		}
	}
	return out
}

// intersectMultiset takes the min multiplicity per key (∩); keys absent
// from either side contribute 0 and are omitted.
func intersectMultiset[Value cmp.Ordered](a, b multiset[Value]) multiset[Value] {
	out := make(multiset[Value])
	for k, v := range a {
		if w, ok := b[k]; ok {
			if w < v {
				v = w
			}
			if v > 0 {
				out[k] = v
			}
		}
	}
	return out
}

// isSubsetMultiset reports whether every element of a occurs in b with at
// least the same multiplicity.
func isSubsetMultiset[Value cmp.Ordered](a, b multiset[Value]) bool {
	for k, v := range a {
		if b[k] < v {
			return false
		}
	}
	return true
}

// equalMultiset reports multiset equality.
func equalMultiset[Value cmp.Ordered](a, b multiset[Value]) bool {
	return isSubsetMultiset(a, b) && isSubsetMultiset(b, a)
}

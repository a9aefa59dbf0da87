package solve

import "cmp"

// bagRange is the (lo, hi) multiset pair lattice value from §4.1
// "Permutation / Subset / Superset": lo is what must be present across
// every concrete extension summarized so far, hi is what may be present.
type bagRange[Value cmp.Ordered] struct {
	Lo, Hi multiset[Value]
}

type bagKind int

const (
	bagPermutation bagKind = iota
	bagSubset
	bagSuperset
)

type bagFamily[Value cmp.Ordered] struct {
	kind   bagKind
	target multiset[Value]
}

func (f bagFamily[Value]) Top() bagRange[Value] {
	return bagRange[Value]{Lo: multiset[Value]{}, Hi: multiset[Value]{}}
}

func (f bagFamily[Value]) Bot() bagRange[Value] {
	// or's identity: intersecting lo with anything should leave it alone
	// and unioning hi with anything should leave it alone. An empty lo
	// cannot serve, since intersectMultiset(x, {}) = {}, and "lo =
	// everything at infinite multiplicity" cannot be represented, so Bot
	// is a sentinel with a nil Lo, and Or returns the other operand
	// unchanged whenever one side's Lo is nil.
	return bagRange[Value]{Lo: nil, Hi: multiset[Value]{}}
}

func (f bagFamily[Value]) And(a, b bagRange[Value]) bagRange[Value] {
	return bagRange[Value]{Lo: sumMultiset(a.Lo, b.Lo), Hi: sumMultiset(a.Hi, b.Hi)}
}

func (f bagFamily[Value]) Or(a, b bagRange[Value]) bagRange[Value] {
	if a.Lo == nil {
		return b
	}
	if b.Lo == nil {
		return a
	}
	return bagRange[Value]{Lo: intersectMultiset(a.Lo, b.Lo), Hi: unionMultiset(a.Hi, b.Hi)}
}

func (f bagFamily[Value]) Single(_ int, v Value) bagRange[Value] {
	m := singletonMultiset(v)
	return bagRange[Value]{Lo: m, Hi: m}
}

func (f bagFamily[Value]) Classify(l bagRange[Value]) Classification {
	lo, hi := l.Lo, l.Hi
	if lo == nil {
		lo = multiset[Value]{}
	}
	switch f.kind {
	case bagPermutation:
		if equalMultiset(lo, f.target) && equalMultiset(hi, f.target) {
			return Yes
		}
		if !isSubsetMultiset(lo, f.target) || !isSubsetMultiset(f.target, hi) {
			return No
		}
		return Maybe
	case bagSubset:
		if isSubsetMultiset(hi, f.target) {
			return Yes
		}
		if !isSubsetMultiset(lo, f.target) {
			return No
		}
		return Maybe
	default: // bagSuperset
		if isSubsetMultiset(f.target, lo) {
			return Yes
		}
		if !isSubsetMultiset(f.target, hi) {
			return No
		}
		return Maybe
	}
}

type bagConstraint[Var cmp.Ordered, Value cmp.Ordered] struct {
	binding[Var, Value]
	kind Kind
	fam  bagFamily[Value]
}

func (c *bagConstraint[Var, Value]) Kind() Kind { return c.kind }

func (c *bagConstraint[Var, Value]) Eval(t *Table[Var, Value]) Classification {
	return Eval(t, c.positions, c.mapFns, c.fam)
}

func (c *bagConstraint[Var, Value]) EvalPinned(t *Table[Var, Value], partitionIdx, tupleIdx int) Classification {
	return Eval(pinned(t, partitionIdx, tupleIdx), c.positions, c.mapFns, c.fam)
}

func newBagConstraint[Var cmp.Ordered, Value cmp.Ordered](kind Kind, bk bagKind, name string, positions []Var, mapFns []func(Value) Value, target []Value) Constraint[Var, Value] {
	return &bagConstraint[Var, Value]{
		binding: newBinding(name, positions, mapFns),
		kind:    kind,
		fam:     bagFamily[Value]{kind: bk, target: fromSlice(target)},
	}
}

// NewPermutation builds a Permutation constraint: the bound positions must
// be, as a multiset, exactly equal to target.
func NewPermutation[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value, target []Value) Constraint[Var, Value] {
	return newBagConstraint(KindPermutation, bagPermutation, name, positions, mapFns, target)
}

// NewSubset builds a Subset constraint: the bound positions' multiset must
// be a sub-multiset of target.
func NewSubset[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value, target []Value) Constraint[Var, Value] {
	return newBagConstraint(KindSubset, bagSubset, name, positions, mapFns, target)
}

// NewSuperset builds a Superset constraint: the bound positions' multiset
// must contain target as a sub-multiset.
func NewSuperset[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value, target []Value) Constraint[Var, Value] {
	return newBagConstraint(KindSuperset, bagSuperset, name, positions, mapFns, target)
}

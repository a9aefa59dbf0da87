package solve

import "cmp"

// countRange is a per-value (Lo, Hi) occurrence-count pair: at least Lo and
// at most Hi occurrences of this value are guaranteed/possible so far.
type countRange struct {
	Lo, Hi int
}

// countValue is the Count lattice value: a bound per value of interest,
// grounded on original_source's Count rule (per-value occurrence bounds,
// the sibling of the teacher's GlobalCardinality propagator) rather than
// on anything spec.md names directly — it supplements the multiset-equality
// Permutation/Subset/Superset family with independent per-value bounds.
type countValue[Value cmp.Ordered] map[Value]countRange

type countFamily[Value cmp.Ordered] struct {
	limits map[Value]countRange
}

func (f countFamily[Value]) Top() countValue[Value] { return countValue[Value]{} }
func (f countFamily[Value]) Bot() countValue[Value] { return nil }

func getRange[Value cmp.Ordered](m countValue[Value], k Value) countRange {
	if m == nil {
		return countRange{}
	}
	return m[k]
}

func (f countFamily[Value]) And(a, b countValue[Value]) countValue[Value] {
	out := make(countValue[Value], len(a)+len(b))
	keys := make(map[Value]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	for k := range keys {
		ra, rb := getRange(a, k), getRange(b, k)
		out[k] = countRange{Lo: ra.Lo + rb.Lo, Hi: ra.Hi + rb.Hi}
	}
	return out
}

func (f countFamily[Value]) Or(a, b countValue[Value]) countValue[Value] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := make(countValue[Value], len(a)+len(b))
	keys := make(map[Value]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	for k := range keys {
		ra, rb := getRange(a, k), getRange(b, k)
		out[k] = countRange{Lo: min(ra.Lo, rb.Lo), Hi: max(ra.Hi, rb.Hi)}
	}
	return out
}

func (f countFamily[Value]) Single(_ int, v Value) countValue[Value] {
	return countValue[Value]{v: {1, 1}}
}

func (f countFamily[Value]) Classify(l countValue[Value]) Classification {
	allSatisfied := true
	for k, limit := range f.limits {
		r := getRange(l, k)
		if r.Lo > limit.Hi || r.Hi < limit.Lo {
			return No
		}
		if r.Lo < limit.Lo || r.Hi > limit.Hi {
			allSatisfied = false
		}
	}
	if allSatisfied {
		return Yes
	}
	return Maybe
}

type countConstraint[Var cmp.Ordered, Value cmp.Ordered] struct {
	binding[Var, Value]
	fam countFamily[Value]
}

func (c *countConstraint[Var, Value]) Kind() Kind { return KindCount }

func (c *countConstraint[Var, Value]) Eval(t *Table[Var, Value]) Classification {
	return Eval(t, c.positions, c.mapFns, c.fam)
}

func (c *countConstraint[Var, Value]) EvalPinned(t *Table[Var, Value], partitionIdx, tupleIdx int) Classification {
	return Eval(pinned(t, partitionIdx, tupleIdx), c.positions, c.mapFns, c.fam)
}

// CountLimit names the occurrence-count bound enforced on one value.
type CountLimit[Value cmp.Ordered] struct {
	Value    Value
	Min, Max int
}

// NewCount builds a per-value occurrence-count constraint: across the
// bound positions, each value named in limits must occur within its
// [Min, Max] bound. Values not named in limits are unconstrained.
func NewCount[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value, limits []CountLimit[Value]) Constraint[Var, Value] {
	m := make(map[Value]countRange, len(limits))
	for _, l := range limits {
		m[l.Value] = countRange{Lo: l.Min, Hi: l.Max}
	}
	return &countConstraint[Var, Value]{
		binding: newBinding(name, positions, mapFns),
		fam:     countFamily[Value]{limits: m},
	}
}

package solve

import "cmp"

// interval is the closed integer range [Min, Max] lattice value shared by
// Sum and Product (§4.1 "Sum / Product / Mapped sum").
type interval struct {
	Min, Max int
}

type sumFamily[Value cmp.Ordered] struct {
	target int
	toInt  func(Value) int
}

func (f sumFamily[Value]) Top() interval  { return interval{0, 0} }
func (f sumFamily[Value]) Bot() interval  { return interval{1<<62 - 1, -(1<<62 - 1)} }
func (f sumFamily[Value]) And(a, b interval) interval {
	return interval{a.Min + b.Min, a.Max + b.Max}
}
func (f sumFamily[Value]) Or(a, b interval) interval {
	return interval{min(a.Min, b.Min), max(a.Max, b.Max)}
}
func (f sumFamily[Value]) Single(_ int, v Value) interval {
	n := f.toInt(v)
	return interval{n, n}
}
func (f sumFamily[Value]) Classify(l interval) Classification {
	switch {
	case l.Min == l.Max && l.Min == f.target:
		return Yes
	case f.target < l.Min || f.target > l.Max:
		return No
	default:
		return Maybe
	}
}

type productFamily[Value cmp.Ordered] struct {
	target int
	toInt  func(Value) int
}

func (f productFamily[Value]) Top() interval { return interval{1, 1} }
func (f productFamily[Value]) Bot() interval { return interval{1 << 30, 0} }
func (f productFamily[Value]) And(a, b interval) interval {
	return interval{a.Min * b.Min, a.Max * b.Max}
}
func (f productFamily[Value]) Or(a, b interval) interval {
	return interval{min(a.Min, b.Min), max(a.Max, b.Max)}
}
func (f productFamily[Value]) Single(_ int, v Value) interval {
	n := f.toInt(v)
	return interval{n, n}
}
func (f productFamily[Value]) Classify(l interval) Classification {
	switch {
	case l.Min == l.Max && l.Min == f.target:
		return Yes
	case f.target < l.Min || f.target > l.Max:
		return No
	default:
		return Maybe
	}
}

// sumOrProduct is the shared Constraint implementation for both kinds;
// only the Family differs.
type sumOrProduct[Var cmp.Ordered, Value cmp.Ordered] struct {
	binding[Var, Value]
	kind Kind
	fam  Family[Value, interval]
}

func (c *sumOrProduct[Var, Value]) Kind() Kind { return c.kind }

func (c *sumOrProduct[Var, Value]) Eval(t *Table[Var, Value]) Classification {
	return Eval(t, c.positions, c.mapFns, c.fam)
}

func (c *sumOrProduct[Var, Value]) EvalPinned(t *Table[Var, Value], partitionIdx, tupleIdx int) Classification {
	return Eval(pinned(t, partitionIdx, tupleIdx), c.positions, c.mapFns, c.fam)
}

// NewSum builds a Sum(target) constraint. toInt converts the (possibly
// mapped) value at each position to the integer it contributes to the sum;
// pass the identity function when Value is already int.
func NewSum[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value, target int, toInt func(Value) int) Constraint[Var, Value] {
	return &sumOrProduct[Var, Value]{
		binding: newBinding(name, positions, mapFns),
		kind:    KindSum,
		fam:     sumFamily[Value]{target: target, toInt: toInt},
	}
}

// NewProduct builds a Product(target) constraint, nonnegative integers only.
func NewProduct[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value, target int, toInt func(Value) int) Constraint[Var, Value] {
	return &sumOrProduct[Var, Value]{
		binding: newBinding(name, positions, mapFns),
		kind:    KindProduct,
		fam:     productFamily[Value]{target: target, toInt: toInt},
	}
}

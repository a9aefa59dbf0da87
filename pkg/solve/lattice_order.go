package solve

import "cmp"

// orderCell is the per-position summary used by the Ordering lattice: the
// range of values a given position might still take, given everything
// known about the table so far.
type orderCell[Value cmp.Ordered] struct {
	Has      bool
	Min, Max Value
}

// orderValue is one cell per bound position (with multiplicity); it is the
// "interval plus a flag" alternative representation spec §4.1 sanctions in
// place of the literal (first,last,ok) fold, and lets Classify verify
// strict monotonicity across positions directly rather than threading a
// running ok flag through And/Or (which would otherwise have to special
// case position adjacency inside the lattice op itself).
type orderValue[Value cmp.Ordered] []orderCell[Value]

type orderFamily[Value cmp.Ordered] struct {
	n         int
	ascending bool
}

func (f orderFamily[Value]) Top() orderValue[Value] {
	return make(orderValue[Value], f.n)
}
func (f orderFamily[Value]) Bot() orderValue[Value] {
	return make(orderValue[Value], f.n)
}
func (f orderFamily[Value]) And(a, b orderValue[Value]) orderValue[Value] {
	out := make(orderValue[Value], f.n)
	for i := range out {
		switch {
		case a[i].Has:
			out[i] = a[i]
		case b[i].Has:
			out[i] = b[i]
		}
	}
	return out
}
func (f orderFamily[Value]) Or(a, b orderValue[Value]) orderValue[Value] {
	out := make(orderValue[Value], f.n)
	for i := range out {
		switch {
		case a[i].Has && b[i].Has:
			mn, mx := a[i].Min, a[i].Max
			if cmp.Compare(b[i].Min, mn) < 0 {
				mn = b[i].Min
			}
			if cmp.Compare(b[i].Max, mx) > 0 {
				mx = b[i].Max
			}
			out[i] = orderCell[Value]{Has: true, Min: mn, Max: mx}
		case a[i].Has:
			out[i] = a[i]
		case b[i].Has:
			out[i] = b[i]
		}
	}
	return out
}
func (f orderFamily[Value]) Single(pos int, v Value) orderValue[Value] {
	out := make(orderValue[Value], f.n)
	out[pos] = orderCell[Value]{Has: true, Min: v, Max: v}
	return out
}

func (f orderFamily[Value]) Classify(l orderValue[Value]) Classification {
	allYes := true
	for i := 0; i+1 < f.n; i++ {
		a, b := l[i], l[i+1]
		if !a.Has || !b.Has {
			allYes = false
			continue
		}
		if f.ascending {
			if cmp.Compare(a.Min, b.Max) >= 0 {
				return No
			}
			if cmp.Compare(a.Max, b.Min) >= 0 {
				allYes = false
			}
		} else {
			if cmp.Compare(a.Max, b.Min) <= 0 {
				return No
			}
			if cmp.Compare(a.Min, b.Max) <= 0 {
				allYes = false
			}
		}
	}
	if allYes {
		return Yes
	}
	return Maybe
}

type orderConstraint[Var cmp.Ordered, Value cmp.Ordered] struct {
	binding[Var, Value]
	kind Kind
	fam  orderFamily[Value]
}

func (c *orderConstraint[Var, Value]) Kind() Kind { return c.kind }

func (c *orderConstraint[Var, Value]) Eval(t *Table[Var, Value]) Classification {
	return Eval(t, c.positions, c.mapFns, c.fam)
}

func (c *orderConstraint[Var, Value]) EvalPinned(t *Table[Var, Value], partitionIdx, tupleIdx int) Classification {
	return Eval(pinned(t, partitionIdx, tupleIdx), c.positions, c.mapFns, c.fam)
}

// NewInOrder builds a strictly-increasing-across-positions constraint.
func NewInOrder[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value) Constraint[Var, Value] {
	return &orderConstraint[Var, Value]{
		binding: newBinding(name, positions, mapFns),
		kind:    KindInOrder,
		fam:     orderFamily[Value]{n: len(positions), ascending: true},
	}
}

// NewInReverseOrder builds a strictly-decreasing-across-positions constraint.
func NewInReverseOrder[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value) Constraint[Var, Value] {
	return &orderConstraint[Var, Value]{
		binding: newBinding(name, positions, mapFns),
		kind:    KindInReverseOrder,
		fam:     orderFamily[Value]{n: len(positions), ascending: false},
	}
}

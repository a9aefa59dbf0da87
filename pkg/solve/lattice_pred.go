package solve

import "cmp"

// predCell is one position of a partial assignment: either unknown, or
// pinned to a concrete value.
type predCell[Value cmp.Ordered] struct {
	Has bool
	Val Value
}

type predValue[Value cmp.Ordered] []predCell[Value]

// predFamily is the Pred escape hatch (§9): opaque to lattice reasoning,
// it can only answer Yes/No once every bound position is ground, and
// degrades to Maybe otherwise — callers should expect it to prune nothing
// until a partition has been narrowed to singletons by other constraints.
type predFamily[Value cmp.Ordered] struct {
	n    int
	pred func([]Value) bool
}

func (f predFamily[Value]) Top() predValue[Value] { return make(predValue[Value], f.n) }
func (f predFamily[Value]) Bot() predValue[Value] { return make(predValue[Value], f.n) }

func (f predFamily[Value]) And(a, b predValue[Value]) predValue[Value] {
	out := make(predValue[Value], f.n)
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

func (f predFamily[Value]) Or(a, b predValue[Value]) predValue[Value] {
	out := make(predValue[Value], f.n)
	for i := range out {
		switch {
		case a[i].Has && b[i].Has && a[i].Val == b[i].Val:
			out[i] = a[i]
		case a[i].Has && !b[i].Has:
			// b has no opinion at this position yet (shouldn't normally
			// happen across alternatives within one partition), keep a's.
			out[i] = a[i]
		case b[i].Has && !a[i].Has:
			out[i] = b[i]
		default:
			// disagreement: nullify, matching the Rust Pred::or behavior.
		}
	}
	return out
}

func (f predFamily[Value]) Single(pos int, v Value) predValue[Value] {
	out := make(predValue[Value], f.n)
	out[pos] = predCell[Value]{Has: true, Val: v}
	return out
}

func (f predFamily[Value]) Classify(l predValue[Value]) Classification {
	vals := make([]Value, f.n)
	for i, c := range l {
		if !c.Has {
			return Maybe
		}
		vals[i] = c.Val
	}
	if f.pred(vals) {
		return Yes
	}
	return No
}

type predConstraint[Var cmp.Ordered, Value cmp.Ordered] struct {
	binding[Var, Value]
	fam predFamily[Value]
}

func (c *predConstraint[Var, Value]) Kind() Kind { return KindPred }

func (c *predConstraint[Var, Value]) Eval(t *Table[Var, Value]) Classification {
	return Eval(t, c.positions, c.mapFns, c.fam)
}

func (c *predConstraint[Var, Value]) EvalPinned(t *Table[Var, Value], partitionIdx, tupleIdx int) Classification {
	return Eval(pinned(t, partitionIdx, tupleIdx), c.positions, c.mapFns, c.fam)
}

// NewPred builds an arbitrary-predicate constraint. pred receives the
// bound positions' values in binding order and decides satisfaction
// directly; it is only ever called once every position is ground, so it
// never needs to reason about partial information itself. Document its
// quadratic cost: unlike the other families it classifies nothing until a
// tuple is fully pinned, so it contributes no pruning power on its own.
func NewPred[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value, pred func([]Value) bool) Constraint[Var, Value] {
	return &predConstraint[Var, Value]{
		binding: newBinding(name, positions, mapFns),
		fam:     predFamily[Value]{n: len(positions), pred: pred},
	}
}

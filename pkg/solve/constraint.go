package solve

import "cmp"

// Constraint is a constraint kind bound to a variable sequence (with
// multiplicity permitted) and an optional per-position value map — the
// "constraint binding" of §3. Concrete constraints (one per file,
// lattice_sum.go, lattice_bag.go, ...) implement it by wrapping their own
// Family and lattice value type behind FoldValue/Eval, so that Constraint
// itself never needs to know what L is for any given kind.
type Constraint[Var cmp.Ordered, Value cmp.Ordered] interface {
	// Name is a short human-readable label used in Unsatisfiable errors and
	// step logging.
	Name() string
	Kind() Kind
	// Vars returns the distinct variables this constraint reads, used to
	// decide which constraints each partition is checked against during
	// pruning.
	Vars() []Var
	// Eval classifies the constraint's current status against t.
	Eval(t *Table[Var, Value]) Classification
	// EvalPinned classifies the constraint as if partition partitionIdx of
	// t held only the single tuple at tupleIdx — the pruning primitive.
	EvalPinned(t *Table[Var, Value], partitionIdx, tupleIdx int) Classification
}

// binding holds the parts common to every concrete constraint: its
// variable sequence with multiplicity and its optional per-position value
// maps. Concrete constraint types embed it and add their own Family.
type binding[Var cmp.Ordered, Value cmp.Ordered] struct {
	name          string
	positions     []Var
	mapFns        []func(Value) Value
	distinctCache []Var
}

func newBinding[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value) binding[Var, Value] {
	return binding[Var, Value]{name: name, positions: positions, mapFns: mapFns}
}

func (b *binding[Var, Value]) Name() string { return b.name }

func (b *binding[Var, Value]) Vars() []Var {
	if b.distinctCache == nil {
		b.distinctCache = distinctVars(b.positions)
	}
	return b.distinctCache
}

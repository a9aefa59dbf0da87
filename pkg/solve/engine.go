package solve

import (
	"cmp"
	"fmt"
)

// StateAdapter is the caller-supplied materializer for final solutions
// (§6.1): a pure mutator from (variable, value) into the caller's own
// state type, used only for display — the engine never reads it back.
type StateAdapter[Var cmp.Ordered, Value cmp.Ordered] interface {
	Set(v Var, value Value)
}

// Engine is the library surface of §6.1: declare variables and their
// domains, attach constraints (optionally with per-position value maps —
// the mapped_constraint capability, which is just AddConstraint given a
// constraint built with non-nil mapFns, mirroring how original_source's
// lib.rs Solvomatic::constraint is a thin wrapper over mapped_constraint
// with an identity map), then Solve and inspect Table/Solutions.
type Engine[Var cmp.Ordered, Value cmp.Ordered] struct {
	order       []Var
	domains     map[Var][]Value
	constraints []Constraint[Var, Value]
	table       *Table[Var, Value]
}

// NewEngine returns an empty engine ready for Var/AddConstraint calls.
func NewEngine[Var cmp.Ordered, Value cmp.Ordered]() *Engine[Var, Value] {
	return &Engine[Var, Value]{domains: make(map[Var][]Value)}
}

// Var declares a variable and its finite initial domain (§6.1 "var").
// Declaring the same identifier twice, or declaring an empty domain, is a
// SetupError raised synchronously.
func (e *Engine[Var, Value]) Var(id Var, domain []Value) error {
	if _, dup := e.domains[id]; dup {
		return &SetupError{Op: "Var", Msg: fmt.Sprintf("variable %v declared twice", id)}
	}
	if len(domain) == 0 {
		return &SetupError{Op: "Var", Msg: fmt.Sprintf("variable %v has empty domain", id)}
	}
	e.domains[id] = domain
	e.order = append(e.order, id)
	return nil
}

// AddConstraint attaches a constraint built by one of the NewSum/
// NewPermutation/... constructors (§6.1 "constraint" / "mapped_constraint",
// unified into a single entry point since the distinction is just whether
// the constraint was built with nil or non-nil per-position maps).
// Referencing an undeclared variable is a SetupError.
func (e *Engine[Var, Value]) AddConstraint(c Constraint[Var, Value]) error {
	for _, v := range c.Vars() {
		if _, ok := e.domains[v]; !ok {
			return &SetupError{Op: "AddConstraint", Msg: fmt.Sprintf("constraint %s references unknown variable %v", c.Name(), v)}
		}
	}
	e.constraints = append(e.constraints, c)
	return nil
}

// Solve runs the algorithm to completion (§6.1 "solve").
func (e *Engine[Var, Value]) Solve(cfg Config) error {
	vds := make([]VarDomain[Var, Value], len(e.order))
	for i, id := range e.order {
		vds[i] = VarDomain[Var, Value]{Var: id, Domain: e.domains[id]}
	}
	t := New(vds)
	result, err := Solve(t, e.constraints, cfg)
	if err != nil {
		return err
	}
	e.table = result
	return nil
}

// Table inspects the resulting table (§6.1 "table").
func (e *Engine[Var, Value]) Table() *Table[Var, Value] {
	return e.table
}

// Solutions returns one map per solution once Solve has succeeded. It
// panics if called before a successful Solve, since an unsolved or absent
// table has no defined solution set to return.
func (e *Engine[Var, Value]) Solutions() []map[Var]Value {
	if e.table == nil || !e.table.IsSolved() {
		panic("solve: Solutions called before a successful Solve")
	}
	p := e.table.Partitions[0]
	out := make([]map[Var]Value, len(p.Tuples))
	for i, tup := range p.Tuples {
		m := make(map[Var]Value, len(p.Vars))
		for j, v := range p.Vars {
			m[v] = tup[j]
		}
		out[i] = m
	}
	return out
}

// Materialize writes one solution into adapter via its Set mutator, in
// the engine's variable declaration order.
func (e *Engine[Var, Value]) Materialize(adapter StateAdapter[Var, Value], solution map[Var]Value) {
	for _, v := range e.order {
		adapter.Set(v, solution[v])
	}
}

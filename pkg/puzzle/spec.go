// Package puzzle parses the text puzzle format of §6.2: a sequence of
// keyword-introduced sections (layout, range, rule <name> [args], initial)
// each followed by ASCII art blocks of "|"-prefixed lines. It does not
// implement any solver logic itself — it produces a Spec that cmd/solvomatic
// feeds straight into pkg/solve.Engine, matching spec.md's framing of the
// parser as an external collaborator the core only receives parsed output
// from.
package puzzle

// Var is a cell's (row, column) coordinate relative to the layout block,
// serialized to a string since pkg/solve's Engine requires a cmp.Ordered
// variable identifier and Go structs don't satisfy that constraint.
type Var string

// RuleBinding is one constraint instance: a rule keyword, its argument
// (interpreted per keyword — see Spec doc), and the ordered sequence of
// variables it binds to.
type RuleBinding struct {
	Rule string // "sum", "product", "permutation", "subset", "superset", "in_order", "in_reverse_order", "word"
	Arg  string // raw argument text: integer literal, set literal, or file path
	Vars []Var
}

// Spec is the fully parsed puzzle: variable identities, their domains, and
// the constraints to bind over them.
type Spec struct {
	Vars    []Var
	Domains map[Var][]int
	Rules   []RuleBinding
	Initial map[Var]int
}

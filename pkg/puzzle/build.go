package puzzle

import (
	"fmt"
	"strconv"

	"github.com/solvomatic/solvomatic/pkg/solve"
	"github.com/solvomatic/solvomatic/pkg/wordlist"
)

// encodeByte maps a dictionary byte onto the same a..z -> 1..26 domain
// encodeToken uses for set literals, so a "word" rule's variables line up
// with every other rule's int-valued domains.
func encodeByte(b byte) int {
	if b >= 'a' && b <= 'z' {
		return int(b-'a') + 1
	}
	if b >= 'A' && b <= 'Z' {
		return int(b-'A') + 1
	}
	return int(b)
}

// BuildEngine turns a parsed Spec into a ready-to-Solve Engine.
func BuildEngine(spec *Spec) (*solve.Engine[Var, int], error) {
	e := solve.NewEngine[Var, int]()
	for _, v := range spec.Vars {
		if err := e.Var(v, spec.Domains[v]); err != nil {
			return nil, err
		}
	}

	wordLists := make(map[string]*solve.WordList[int])
	for i, rb := range spec.Rules {
		name := fmt.Sprintf("%s#%d", rb.Rule, i)
		c, err := buildConstraint(name, rb, wordLists)
		if err != nil {
			return nil, err
		}
		if err := e.AddConstraint(c); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func buildConstraint(name string, rb RuleBinding, wordLists map[string]*solve.WordList[int]) (solve.Constraint[Var, int], error) {
	switch rb.Rule {
	case "sum":
		n, err := strconv.Atoi(rb.Arg)
		if err != nil {
			return nil, fmt.Errorf("sum rule: %w", err)
		}
		return solve.NewSum[Var, int](name, rb.Vars, nil, n, identity), nil
	case "product":
		n, err := strconv.Atoi(rb.Arg)
		if err != nil {
			return nil, fmt.Errorf("product rule: %w", err)
		}
		return solve.NewProduct[Var, int](name, rb.Vars, nil, n, identity), nil
	case "permutation":
		set, err := parseSetLiteral(rb.Arg)
		if err != nil {
			return nil, fmt.Errorf("permutation rule: %w", err)
		}
		return solve.NewPermutation[Var, int](name, rb.Vars, nil, set), nil
	case "subset":
		set, err := parseSetLiteral(rb.Arg)
		if err != nil {
			return nil, fmt.Errorf("subset rule: %w", err)
		}
		return solve.NewSubset[Var, int](name, rb.Vars, nil, set), nil
	case "superset":
		set, err := parseSetLiteral(rb.Arg)
		if err != nil {
			return nil, fmt.Errorf("superset rule: %w", err)
		}
		return solve.NewSuperset[Var, int](name, rb.Vars, nil, set), nil
	case "in_order":
		return solve.NewInOrder[Var, int](name, rb.Vars, nil), nil
	case "in_reverse_order":
		return solve.NewInReverseOrder[Var, int](name, rb.Vars, nil), nil
	case "word":
		key := fmt.Sprintf("%s#%d", rb.Arg, len(rb.Vars))
		wl, ok := wordLists[key]
		if !ok {
			var err error
			wl, err = wordlist.LoadEncoded(rb.Arg, len(rb.Vars), encodeByte)
			if err != nil {
				return nil, err
			}
			wordLists[key] = wl
		}
		return solve.NewWord[Var, int](name, rb.Vars, nil, wl), nil
	default:
		return nil, fmt.Errorf("unknown rule keyword %q", rb.Rule)
	}
}

func identity(v int) int { return v }

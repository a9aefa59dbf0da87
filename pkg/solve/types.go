package solve

// Classification is the three-valued verdict a lattice's classify function
// hands back when folding a constraint over a (possibly partial) table.
type Classification int

const (
	// Maybe means the fold is consistent with both satisfying and falsifying
	// concrete assignments; no tuple may be pruned on this verdict alone.
	Maybe Classification = iota
	// Yes means every concrete assignment summarized by the fold satisfies
	// the constraint.
	Yes
	// No means no concrete assignment summarized by the fold satisfies the
	// constraint; any tuple whose pinned evaluation classifies No may be
	// deleted.
	No
)

func (c Classification) String() string {
	switch c {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "Maybe"
	}
}

// Kind names one of the closed set of constraint families the engine
// supports. New families are added here rather than via open-ended dynamic
// dispatch, per the engine's tagged-variant design.
type Kind int

const (
	KindSum Kind = iota
	KindProduct
	KindPermutation
	KindSubset
	KindSuperset
	KindInOrder
	KindInReverseOrder
	KindWord
	KindCount
	KindPred
)

func (k Kind) String() string {
	switch k {
	case KindSum:
		return "sum"
	case KindProduct:
		return "product"
	case KindPermutation:
		return "permutation"
	case KindSubset:
		return "subset"
	case KindSuperset:
		return "superset"
	case KindInOrder:
		return "in_order"
	case KindInReverseOrder:
		return "in_reverse_order"
	case KindWord:
		return "word"
	case KindCount:
		return "count"
	case KindPred:
		return "pred"
	default:
		return "unknown"
	}
}

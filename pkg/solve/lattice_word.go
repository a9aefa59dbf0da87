package solve

import "cmp"

// WordList is the shared, read-only-after-load dictionary a Word
// constraint is bound to: a fixed set of equal-length sequences over some
// symbol alphabet. pkg/wordlist builds one from a file; NewWord accepts
// any *WordList, so callers may also build one programmatically.
type WordList[Value cmp.Ordered] struct {
	Words [][]Value
}

// wordVal pairs the live-candidate bitset (which words remain consistent
// with some combination of what the fold has seen) with a ground flag:
// ground stays true only while every contributing position has been a
// single concrete value rather than an alternative among several — see
// Classify, which can only answer Yes once the whole binding is ground.
type wordVal struct {
	bits   bitset
	ground bool
	valid  bool // false only for the Bot sentinel, mirrors bagRange's nil Lo trick
}

type wordFamily[Value cmp.Ordered] struct {
	list *WordList[Value]
	n    int
	// No per-position bitsets are precomputed; Single builds each one per
	// call by scanning the word list.
}

func (f wordFamily[Value]) Top() wordVal {
	b := newBitset(len(f.list.Words))
	for i := range f.list.Words {
		b.set(i)
	}
	return wordVal{bits: b, ground: true, valid: true}
}

func (f wordFamily[Value]) Bot() wordVal {
	return wordVal{valid: false}
}

func (f wordFamily[Value]) And(a, b wordVal) wordVal {
	if !a.valid {
		return b
	}
	if !b.valid {
		return a
	}
	return wordVal{bits: a.bits.and(b.bits), ground: a.ground && b.ground, valid: true}
}

func (f wordFamily[Value]) Or(a, b wordVal) wordVal {
	if !a.valid {
		return b
	}
	if !b.valid {
		return a
	}
	return wordVal{bits: a.bits.or(b.bits), ground: false, valid: true}
}

func (f wordFamily[Value]) Single(pos int, v Value) wordVal {
	b := newBitset(len(f.list.Words))
	for i, w := range f.list.Words {
		if w[pos] == v {
			b.set(i)
		}
	}
	return wordVal{bits: b, ground: true, valid: true}
}

func (f wordFamily[Value]) Classify(l wordVal) Classification {
	if !l.valid || l.bits.isEmpty() {
		return No
	}
	if l.ground {
		return Yes
	}
	return Maybe
}

type wordConstraint[Var cmp.Ordered, Value cmp.Ordered] struct {
	binding[Var, Value]
	fam wordFamily[Value]
}

func (c *wordConstraint[Var, Value]) Kind() Kind { return KindWord }

func (c *wordConstraint[Var, Value]) Eval(t *Table[Var, Value]) Classification {
	return Eval(t, c.positions, c.mapFns, c.fam)
}

func (c *wordConstraint[Var, Value]) EvalPinned(t *Table[Var, Value], partitionIdx, tupleIdx int) Classification {
	return Eval(pinned(t, partitionIdx, tupleIdx), c.positions, c.mapFns, c.fam)
}

// NewWord builds a sequence-membership constraint: the bound positions,
// read in binding order, must spell a word in list.
func NewWord[Var cmp.Ordered, Value cmp.Ordered](name string, positions []Var, mapFns []func(Value) Value, list *WordList[Value]) Constraint[Var, Value] {
	if len(list.Words) == 0 {
		panic("solve: NewWord given an empty word list")
	}
	k := len(list.Words[0])
	if k != len(positions) {
		panic("solve: NewWord positions length must match word length")
	}
	return &wordConstraint[Var, Value]{
		binding: newBinding(name, positions, mapFns),
		fam:     wordFamily[Value]{list: list, n: k},
	}
}

package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

type rawBlock []string

type rawSection struct {
	header string
	line   int
	blocks []rawBlock
}

// scanSections splits the file into keyword-introduced sections, each with
// one or more blank-line-separated ASCII art blocks. Comment lines (#) and
// blank lines outside a block are ignored; a block row not following some
// section header is a parse error.
func scanSections(r io.Reader) ([]rawSection, error) {
	var sections []rawSection
	var cur *rawSection
	var block rawBlock

	flushBlock := func() {
		if len(block) > 0 {
			cur.blocks = append(cur.blocks, block)
			block = nil
		}
	}
	flushSection := func() {
		flushBlock()
		if cur != nil {
			sections = append(sections, *cur)
			cur = nil
		}
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		left := strings.TrimLeft(line, " \t")
		switch {
		case strings.TrimSpace(left) == "":
			flushBlock()
		case strings.HasPrefix(left, "#"):
			// comment, ignored
		case strings.HasPrefix(left, "|"):
			if cur == nil {
				return nil, fmt.Errorf("puzzle:%d: block row outside any section", lineNo)
			}
			block = append(block, strings.TrimRight(left[1:], "\r"))
		default:
			flushSection()
			cur = &rawSection{header: strings.TrimSpace(line), line: lineNo}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flushSection()
	return sections, nil
}

// Parse reads a puzzle file per §6.2 and returns the variables, domains,
// and rule bindings it declares.
func Parse(r io.Reader) (*Spec, error) {
	sections, err := scanSections(r)
	if err != nil {
		return nil, err
	}

	var layout rawBlock
	var ranges []rawSection
	var rules []rawSection
	var initials []rawSection

	for _, s := range sections {
		fields := strings.Fields(s.header)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "layout":
			if len(s.blocks) == 0 {
				return nil, fmt.Errorf("puzzle:%d: layout section has no block", s.line)
			}
			layout = s.blocks[0]
		case "range":
			ranges = append(ranges, s)
		case "rule":
			rules = append(rules, s)
		case "initial":
			initials = append(initials, s)
		default:
			return nil, fmt.Errorf("puzzle:%d: unknown section keyword %q", s.line, fields[0])
		}
	}
	if layout == nil {
		return nil, fmt.Errorf("puzzle: missing layout section")
	}

	vars, varSet := cellsOf(layout, func(b byte) bool { return b == '*' })

	domains := make(map[Var][]int)
	for _, s := range ranges {
		fields := strings.Fields(s.header)
		if len(fields) < 2 {
			return nil, fmt.Errorf("puzzle:%d: range section missing set literal", s.line)
		}
		arg := strings.TrimSpace(strings.TrimPrefix(s.header, fields[0]))
		set, err := parseSetLiteral(arg)
		if err != nil {
			return nil, fmt.Errorf("puzzle:%d: %w", s.line, err)
		}
		for _, block := range s.blocks {
			cells, _ := cellsOf(block, func(b byte) bool { return b == '*' })
			for _, v := range cells {
				if _, ok := varSet[v]; !ok {
					return nil, fmt.Errorf("puzzle:%d: range references cell outside layout", s.line)
				}
				domains[v] = set
			}
		}
	}

	initial := make(map[Var]int)
	for _, s := range initials {
		for _, block := range s.blocks {
			for v, b := range cellValues(block) {
				n, ok, err := decodeInitial(b)
				if err != nil {
					return nil, fmt.Errorf("puzzle:%d: %w", s.line, err)
				}
				if !ok {
					continue
				}
				if _, known := varSet[v]; !known {
					return nil, fmt.Errorf("puzzle:%d: initial references cell outside layout", s.line)
				}
				initial[v] = n
			}
		}
	}
	for v, n := range initial {
		domains[v] = []int{n}
	}

	for _, v := range vars {
		if _, ok := domains[v]; !ok {
			return nil, fmt.Errorf("puzzle: cell %s has no declared domain (missing range or initial section)", v)
		}
	}

	var bindings []RuleBinding
	for _, s := range rules {
		fields := strings.Fields(s.header)
		if len(fields) < 2 {
			return nil, fmt.Errorf("puzzle:%d: rule section missing rule name", s.line)
		}
		name := fields[1]
		arg := ""
		if len(fields) > 2 {
			arg = strings.Join(fields[2:], " ")
		}
		for _, block := range s.blocks {
			groups, err := groupCells(block)
			if err != nil {
				return nil, fmt.Errorf("puzzle:%d: %w", s.line, err)
			}
			for _, g := range groups {
				bindings = append(bindings, RuleBinding{Rule: name, Arg: arg, Vars: g})
			}
		}
	}

	return &Spec{Vars: vars, Domains: domains, Rules: bindings, Initial: initial}, nil
}

// cellsOf returns, in row-major order, the Vars in block whose character
// satisfies keep, plus a set for membership tests.
func cellsOf(block rawBlock, keep func(byte) bool) ([]Var, map[Var]struct{}) {
	var out []Var
	set := make(map[Var]struct{})
	for r, row := range block {
		for c := 0; c < len(row); c++ {
			if keep(row[c]) {
				v := Var(fmt.Sprintf("%d,%d", r, c))
				out = append(out, v)
				set[v] = struct{}{}
			}
		}
	}
	return out, set
}

// cellValues returns every non-decoration character in block keyed by Var.
func cellValues(block rawBlock) map[Var]byte {
	out := make(map[Var]byte)
	for r, row := range block {
		for c := 0; c < len(row); c++ {
			b := row[c]
			if b == '.' || b == ' ' {
				continue
			}
			out[Var(fmt.Sprintf("%d,%d", r, c))] = b
		}
	}
	return out
}

// decodeInitial interprets one initial-block character: digits 1-9 are a
// literal value, letters a-z/A-Z are a letter-ordinal value, '*' means
// "declared but left free" (not an override), anything else is ignored.
func decodeInitial(b byte) (int, bool, error) {
	switch {
	case b == '*':
		return 0, false, nil
	case b >= '1' && b <= '9':
		return int(b - '0'), true, nil
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 1, true, nil
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 1, true, nil
	default:
		return 0, false, nil
	}
}

// groupCells implements the rule-block binding-group legend (§6.2): cells
// sharing a letter form one group ordered by top-to-bottom/left-to-right
// appearance; a block with no letters but explicit digits forms one group
// ordered by digit value; a block with only '*' forms one group in
// row-major order.
func groupCells(block rawBlock) ([][]Var, error) {
	type cell struct {
		v        Var
		r, c     int
		letter   byte
		digit    int
		hasDigit bool
		isStar   bool
	}
	var cells []cell
	for r, row := range block {
		for c := 0; c < len(row); c++ {
			b := row[c]
			switch {
			case b == '*':
				cells = append(cells, cell{v: Var(fmt.Sprintf("%d,%d", r, c)), r: r, c: c, isStar: true})
			case b >= 'a' && b <= 'z':
				cells = append(cells, cell{v: Var(fmt.Sprintf("%d,%d", r, c)), r: r, c: c, letter: b})
			case b >= '1' && b <= '9':
				cells = append(cells, cell{v: Var(fmt.Sprintf("%d,%d", r, c)), r: r, c: c, digit: int(b - '0'), hasDigit: true})
			}
		}
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("rule block has no marked cells")
	}

	hasLetters := false
	for _, c := range cells {
		if c.letter != 0 {
			hasLetters = true
			break
		}
	}

	if hasLetters {
		byLetter := make(map[byte][]cell)
		var letters []byte
		for _, c := range cells {
			if c.letter == 0 {
				continue
			}
			if _, ok := byLetter[c.letter]; !ok {
				letters = append(letters, c.letter)
			}
			byLetter[c.letter] = append(byLetter[c.letter], c)
		}
		sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
		var groups [][]Var
		for _, l := range letters {
			group := byLetter[l]
			sort.Slice(group, func(i, j int) bool {
				if group[i].r != group[j].r {
					return group[i].r < group[j].r
				}
				return group[i].c < group[j].c
			})
			vs := make([]Var, len(group))
			for i, c := range group {
				vs[i] = c.v
			}
			groups = append(groups, vs)
		}
		return groups, nil
	}

	hasDigits := false
	for _, c := range cells {
		if c.hasDigit {
			hasDigits = true
			break
		}
	}
	if hasDigits {
		digitCells := make([]cell, 0, len(cells))
		for _, c := range cells {
			if c.hasDigit {
				digitCells = append(digitCells, c)
			}
		}
		sort.Slice(digitCells, func(i, j int) bool { return digitCells[i].digit < digitCells[j].digit })
		vs := make([]Var, len(digitCells))
		for i, c := range digitCells {
			vs[i] = c.v
		}
		return [][]Var{vs}, nil
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].r != cells[j].r {
			return cells[i].r < cells[j].r
		}
		return cells[i].c < cells[j].c
	})
	vs := make([]Var, len(cells))
	for i, c := range cells {
		vs[i] = c.v
	}
	return [][]Var{vs}, nil
}

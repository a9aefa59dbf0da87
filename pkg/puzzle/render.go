package puzzle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Render draws one solution back onto the layout grid, one character per
// cell: digits 1-9 render literally, values above 9 render as lowercase
// letters (10 -> 'a', 11 -> 'b', ...), and cells outside spec's layout are
// left blank.
func Render(spec *Spec, solution map[Var]int) []string {
	maxR, maxC := 0, 0
	for _, v := range spec.Vars {
		r, c := parseCoord(v)
		if r > maxR {
			maxR = r
		}
		if c > maxC {
			maxC = c
		}
	}
	grid := make([][]byte, maxR+1)
	for i := range grid {
		grid[i] = make([]byte, maxC+1)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	for _, v := range spec.Vars {
		r, c := parseCoord(v)
		grid[r][c] = glyph(solution[v])
	}
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

func glyph(n int) byte {
	if n >= 0 && n <= 9 {
		return byte('0' + n)
	}
	if n >= 10 && n < 10+26 {
		return byte('a' + (n - 10))
	}
	return '?'
}

func parseCoord(v Var) (int, int) {
	parts := strings.SplitN(string(v), ",", 2)
	r, _ := strconv.Atoi(parts[0])
	c, _ := strconv.Atoi(parts[1])
	return r, c
}

// sortedVars returns spec.Vars sorted by (row, col), useful for debug
// dumps independent of declaration order.
func sortedVars(vars []Var) []Var {
	out := append([]Var(nil), vars...)
	sort.Slice(out, func(i, j int) bool {
		ri, ci := parseCoord(out[i])
		rj, cj := parseCoord(out[j])
		if ri != rj {
			return ri < rj
		}
		return ci < cj
	})
	return out
}

// Describe renders a one-line summary of a solution as row,col=value pairs
// in (row, col) order. The CLI does not call it; it prints Render's grid.
func Describe(spec *Spec, solution map[Var]int) string {
	var b strings.Builder
	for i, v := range sortedVars(spec.Vars) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", v, solution[v])
	}
	return b.String()
}

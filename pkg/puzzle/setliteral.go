package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// encodeToken turns a single letter or integer token into the int domain
// value pkg/puzzle uses throughout: digits parse literally, single letters
// map 'a'..'z' to 1..26 (and 'A'..'Z' the same, case-insensitively) so that
// a puzzle mixing a numeric range section with a lettered word rule still
// shares one consistent int-valued domain.
func encodeToken(tok string) (int, error) {
	if n, err := strconv.Atoi(tok); err == nil {
		return n, nil
	}
	if len(tok) == 1 {
		c := tok[0]
		switch {
		case c >= 'a' && c <= 'z':
			return int(c-'a') + 1, nil
		case c >= 'A' && c <= 'Z':
			return int(c-'A') + 1, nil
		}
	}
	return 0, fmt.Errorf("invalid set literal token %q", tok)
}

// parseSetLiteral expands a whitespace-separated set literal (§6.2): each
// item is a single token or an inclusive lo..hi range (letters or
// integers).
func parseSetLiteral(s string) ([]int, error) {
	var out []int
	for _, tok := range strings.Fields(s) {
		if lo, hi, ok := strings.Cut(tok, ".."); ok {
			loN, err := encodeToken(lo)
			if err != nil {
				return nil, err
			}
			hiN, err := encodeToken(hi)
			if err != nil {
				return nil, err
			}
			if loN > hiN {
				return nil, fmt.Errorf("invalid range %q: lo > hi", tok)
			}
			for v := loN; v <= hiN; v++ {
				out = append(out, v)
			}
			continue
		}
		n, err := encodeToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty set literal")
	}
	return out, nil
}

package puzzle

import (
	"reflect"
	"testing"
)

// TestParseSetLiteral_TokensAndRanges checks digit tokens, letter tokens,
// and inclusive lo..hi ranges of both kinds.
func TestParseSetLiteral_TokensAndRanges(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"1 2 3", []int{1, 2, 3}},
		{"1..4", []int{1, 2, 3, 4}},
		{"a..e", []int{1, 2, 3, 4, 5}},
		{"a 3 z", []int{1, 3, 26}},
	}
	for _, c := range cases {
		got, err := parseSetLiteral(c.in)
		if err != nil {
			t.Fatalf("parseSetLiteral(%q): %v", c.in, err)
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("parseSetLiteral(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// TestParseSetLiteral_RejectsEmptyAndBackwardsRange checks the two input
// errors parseSetLiteral is documented to reject.
func TestParseSetLiteral_RejectsEmptyAndBackwardsRange(t *testing.T) {
	if _, err := parseSetLiteral(""); err == nil {
		t.Errorf("expected an error for an empty set literal")
	}
	if _, err := parseSetLiteral("5..1"); err == nil {
		t.Errorf("expected an error for a backwards range")
	}
}

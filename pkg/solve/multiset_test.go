package solve

import "testing"

// TestMultiset_SetAlgebra checks sum, union, intersection, and subset
// behave as the Bag algebra requires: sum adds multiplicities, union/
// intersection take per-key max/min, subset respects multiplicity.
func TestMultiset_SetAlgebra(t *testing.T) {
	a := fromSlice([]int{1, 1, 2})
	b := fromSlice([]int{1, 2, 2})

	if sum := sumMultiset(a, b); sum[1] != 3 || sum[2] != 3 {
		t.Errorf("sumMultiset(%v,%v) = %v, want {1:3,2:3}", a, b, sum)
	}
	if u := unionMultiset(a, b); u[1] != 2 || u[2] != 2 {
		t.Errorf("unionMultiset(%v,%v) = %v, want {1:2,2:2}", a, b, u)
	}
	if i := intersectMultiset(a, b); i[1] != 1 || i[2] != 1 {
		t.Errorf("intersectMultiset(%v,%v) = %v, want {1:1,2:1}", a, b, i)
	}
	if !isSubsetMultiset(fromSlice([]int{1, 2}), a) {
		t.Errorf("{1,2} should be a sub-multiset of %v", a)
	}
	if isSubsetMultiset(fromSlice([]int{1, 1, 1}), a) {
		t.Errorf("{1,1,1} should not be a sub-multiset of %v", a)
	}
	if !equalMultiset(a, fromSlice([]int{2, 1, 1})) {
		t.Errorf("equalMultiset should ignore ordering")
	}
}

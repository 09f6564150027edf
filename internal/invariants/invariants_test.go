package invariants

import "testing"

func TestChecksNeverPanicOnValidInput(t *testing.T) {
	// Regardless of whether this binary was built with invariants enabled,
	// a well-formed tree and a monotonic rank directory must never panic.
	minTree := []int32{0, -3, -2, -3, -2, 0, -1, -3}
	maxTree := []int32{0, 3, 3, 2, 1, 3, 2, 0}
	leafBase := 4
	CheckRangeTree(minTree, maxTree, leafBase)

	CheckRankMonotonic([]int32{0, 3, 5, 5, 9})
}

//go:build invariants || race

package invariants

import "fmt"

// Enabled is true if this binary was built with the "invariants" or "race"
// build tags.
const Enabled = true

// CheckRangeTree walks a min/max range tree built in the heap-array
// convention (root at 1, children of i at 2i and 2i+1, leaves starting at
// leafBase) and panics if any internal node doesn't equal the min/max of its
// children. It is O(size) and is meant to run once, right after
// construction, not on the query path.
func CheckRangeTree(minT, maxT []int32, leafBase int) {
	for i := leafBase - 1; i >= 1; i-- {
		left := 2 * i
		if left >= len(minT) {
			continue
		}
		wantMin, wantMax := minT[left], maxT[left]
		right := left + 1
		if right < len(minT) {
			if minT[right] < wantMin {
				wantMin = minT[right]
			}
			if maxT[right] > wantMax {
				wantMax = maxT[right]
			}
		}
		if minT[i] != wantMin || maxT[i] != wantMax {
			panic(fmt.Sprintf(
				"range tree invariant violated at node %d: got (min=%d,max=%d), want (min=%d,max=%d)",
				i, minT[i], maxT[i], wantMin, wantMax))
		}
	}
}

// CheckRankMonotonic panics if the large-block rank directory is not
// non-decreasing, which would indicate a construction bug (popcounts can
// never be negative).
func CheckRankMonotonic(large []int32) {
	for i := 1; i < len(large); i++ {
		if large[i] < large[i-1] {
			panic(fmt.Sprintf("rank directory not monotonic at %d: %d < %d", i, large[i], large[i-1]))
		}
	}
}

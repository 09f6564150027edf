//go:build !invariants && !race

package invariants

// Enabled is true if this binary was built with the "invariants" or "race"
// build tags.
const Enabled = false

// CheckRangeTree is a no-op in non-invariant builds.
func CheckRangeTree(minT, maxT []int32, leafBase int) {}

// CheckRankMonotonic is a no-op in non-invariant builds.
func CheckRankMonotonic(large []int32) {}

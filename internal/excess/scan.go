package excess

// Outcome classifies the result of a backward within-word excess scan. Go
// has no tagged union, so this stands in for one: a real integer sentinel
// (-1 for AtBoundary, -2 for NotFound) would silently overload the ordinary
// index domain the way the reference implementation's raw ints do.
type Outcome int

const (
	// Found means the target excess was located within the word, at Index.
	Found Outcome = iota
	// AtBoundary means the target excess is reached exactly at the
	// position immediately preceding bit 0 of the word — the caller's
	// answer lies in the previous word.
	AtBoundary
	// NotFound means the target excess does not occur anywhere in
	// [0, startBit] of the word.
	NotFound
)

// ForwardExcessIndex scans word from startBit toward bit 31, looking for the
// first bit position whose inclusive running excess equals target.
// excessAtStart is the running excess inclusive of startBit. Bit i counts as
// +1 toward excess if set, -1 if clear. Returns the 0-based bit index, or 32
// if the word is exhausted before target is reached.
//
// startBit must be in [0, 31].
func ForwardExcessIndex(word uint32, startBit, excessAtStart, target int) int {
	if target == excessAtStart {
		return startBit
	}

	index := startBit
	mask := uint32(1) << uint(startBit)
	excessVal := excessAtStart
	for mask != 0 && excessVal != target {
		mask <<= 1
		if word&mask == 0 {
			excessVal--
		} else {
			excessVal++
		}
		index++
	}
	return index
}

// BackwardExcessIndex scans word from startBit toward bit 0, looking for the
// last bit position (descending) whose inclusive running excess equals
// target. excessAtStart is the running excess inclusive of startBit.
//
// startBit must be in [0, 31].
func BackwardExcessIndex(word uint32, startBit, excessAtStart, target int) (index int, outcome Outcome) {
	if target == excessAtStart {
		return startBit, Found
	}

	idx := startBit - 1
	mask := uint32(1) << uint(startBit)
	excessVal := excessAtStart
	if word&mask == 0 {
		excessVal++
	} else {
		excessVal--
	}
	for mask != 0 && excessVal != target {
		mask >>= 1
		if word&mask == 0 {
			excessVal++
		} else {
			excessVal--
		}
		idx--
	}

	switch {
	case idx >= 0:
		return idx, Found
	case idx == -1:
		return -1, AtBoundary
	default:
		return -2, NotFound
	}
}

package succinct

import (
	"math"
	"math/bits"

	"github.com/yshahun/succinct-util/internal/excess"
	"github.com/yshahun/succinct-util/internal/invariants"
)

// BalancedParenthesesIndex answers FindClose, FindOpen, and Enclose over a
// bit vector read as a sequence of parentheses (set = open, clear = close)
// in O(log n), using a two-level structure: a per-word min/max excess pair
// computed from a byte lookup table, and a min/max range tree over
// superblocks of smallBlockCount words, laid out as a heap array (root at
// index 1, children of i at 2i and 2i+1).
//
// It holds a RankDirectory rather than embedding one: unlike SelectIndex,
// which specializes a rank directory, this type composes one purely to
// compute the excess of positions between words.
type BalancedParenthesesIndex struct {
	vector []uint32
	rank   *RankDirectory

	minExcess []int8
	maxExcess []int8

	superBlockCount int
	minTree         []int32
	maxTree         []int32
}

var _ BalancedParentheses = (*BalancedParenthesesIndex)(nil)

// NewBalancedParentheses builds a range-tree index over vector, which must
// be sized tightly enough to cover size bits and must encode a well-formed
// sequence of balanced parentheses.
func NewBalancedParentheses(vector []uint32, size int) (*BalancedParenthesesIndex, error) {
	rd, err := NewRankDirectory(vector, size)
	if err != nil {
		return nil, err
	}

	p := &BalancedParenthesesIndex{
		vector:    vector,
		rank:      rd,
		minExcess: make([]int8, len(vector)),
		maxExcess: make([]int8, len(vector)),
	}
	p.superBlockCount = (len(vector) + smallBlockCount - 1) / smallBlockCount

	height := ceilLog2(p.superBlockCount)
	internalCount := (1 << height) - 1
	p.minTree = make([]int32, internalCount+p.superBlockCount+1)
	p.maxTree = make([]int32, internalCount+p.superBlockCount+1)

	p.calculateBlockExcesses()
	p.buildRangeTree()

	if invariants.Enabled {
		invariants.CheckRangeTree(p.minTree, p.maxTree, len(p.minTree)-p.superBlockCount)
	}
	return p, nil
}

// ceilLog2 returns the smallest k such that 1<<k >= n, for n >= 1.
func ceilLog2(n int) int {
	return bits.Len(uint(n - 1))
}

// calculateBlockExcesses computes, for every word, the minimum and maximum
// running excess reached within that word, by decomposing the word into
// its four constituent bytes and combining the byte lookup tables in
// internal/excess with the accumulated excess entering each byte.
func (p *BalancedParenthesesIndex) calculateBlockExcesses() {
	for i, word := range p.vector {
		b0 := word & 0xFF
		minE := int(excess.MinByte[b0])
		maxE := int(excess.MaxByte[b0])
		rank := bits.OnesCount32(b0)
		e := rank*2 - 8

		b1 := (word >> 8) & 0xFF
		if v := e + int(excess.MinByte[b1]); v < minE {
			minE = v
		}
		if v := e + int(excess.MaxByte[b1]); v > maxE {
			maxE = v
		}
		rank += bits.OnesCount32(b1)
		e = rank*2 - 16

		b2 := (word >> 16) & 0xFF
		if v := e + int(excess.MinByte[b2]); v < minE {
			minE = v
		}
		if v := e + int(excess.MaxByte[b2]); v > maxE {
			maxE = v
		}
		rank += bits.OnesCount32(b2)
		e = rank*2 - 24

		b3 := word >> 24
		if v := e + int(excess.MinByte[b3]); v < minE {
			minE = v
		}
		if v := e + int(excess.MaxByte[b3]); v > maxE {
			maxE = v
		}

		p.minExcess[i] = int8(minE)
		p.maxExcess[i] = int8(maxE)
	}
	// The virtual position before the sequence starts has excess 0 and is
	// counted with the first word, so the first word's minimum is lowered to
	// 0 when it is above 0.
	if p.minExcess[0] > 0 {
		p.minExcess[0] = 0
	}
}

// buildRangeTree places one leaf per superblock (a run of smallBlockCount
// words) holding the min/max excess reached anywhere in it, then
// propagates min/max upward to the root.
func (p *BalancedParenthesesIndex) buildRangeTree() {
	leafBase := len(p.minTree) - p.superBlockCount
	for i := 0; i < p.superBlockCount; i++ {
		start := i * smallBlockCount
		end := start + smallBlockCount
		if end > len(p.minExcess) {
			end = len(p.minExcess)
		}
		minE := int32(math.MaxInt32)
		maxE := int32(math.MinInt32)
		for j := start; j < end; j++ {
			base := p.rank.excessAt(j*blockSize - 1)
			if v := int32(base + int(p.minExcess[j])); v < minE {
				minE = v
			}
			if v := int32(base + int(p.maxExcess[j])); v > maxE {
				maxE = v
			}
		}
		p.minTree[leafBase+i] = minE
		p.maxTree[leafBase+i] = maxE
	}

	for i := leafBase - 1; i >= 1; i-- {
		left := 2 * i
		if left >= len(p.minTree) {
			// No superblock lies below this node (the leaf level is not
			// full); an empty range keeps every search out of it.
			p.minTree[i] = math.MaxInt32
			p.maxTree[i] = math.MinInt32
			continue
		}
		minE, maxE := p.minTree[left], p.maxTree[left]
		if right := left + 1; right < len(p.minTree) {
			if p.minTree[right] < minE {
				minE = p.minTree[right]
			}
			if p.maxTree[right] > maxE {
				maxE = p.maxTree[right]
			}
		}
		p.minTree[i] = minE
		p.maxTree[i] = maxE
	}
}

// FindClose returns the index of the parenthesis matching the open
// parenthesis at open.
func (p *BalancedParenthesesIndex) FindClose(open int) (int, error) {
	if err := checkIndex(open, p.rank.size); err != nil {
		return 0, err
	}
	return p.searchForward(open, 0), nil
}

// FindOpen returns the index of the parenthesis matching the close
// parenthesis at close.
func (p *BalancedParenthesesIndex) FindOpen(close int) (int, error) {
	if err := checkIndex(close, p.rank.size); err != nil {
		return 0, err
	}
	return p.searchBackward(close, 0), nil
}

// Enclose returns the index of the open parenthesis of the innermost pair
// strictly enclosing open, or -1 if there is none.
func (p *BalancedParenthesesIndex) Enclose(open int) (int, error) {
	if err := checkIndex(open, p.rank.size); err != nil {
		return 0, err
	}
	return p.searchBackward(open, 2), nil
}

// searchForward locates the first position after index whose excess
// equals the excess just before index, plus delta. delta is 0 for
// FindClose; a nonzero delta is not used going forward, kept symmetric with
// searchBackward's Enclose case.
func (p *BalancedParenthesesIndex) searchForward(index, delta int) int {
	searchExcess := p.rank.excessAt(index-1) + delta
	blockIndex := index / blockSize
	bitIndex := index % blockSize

	if bitIndex < blockSize-1 {
		closeIndex := excess.ForwardExcessIndex(p.vector[blockIndex], bitIndex+1, p.rank.excessAt(index+1), searchExcess)
		if closeIndex != blockSize {
			return blockIndex*blockSize + closeIndex
		}
	}

	superBlockIndex := index / largeBlockBitCount
	endBlockIndex := (superBlockIndex + 1) * smallBlockCount
	if endBlockIndex > len(p.minExcess) {
		endBlockIndex = len(p.minExcess)
	}
	if r := p.searchForwardInSuperBlock(blockIndex+1, endBlockIndex, searchExcess); r != -1 {
		return r
	}

	treeIndex := len(p.minTree) - p.superBlockCount + superBlockIndex
	for {
		isRight := treeIndex%2 == 1
		if isRight {
			treeIndex /= 2
		} else {
			treeIndex++
		}
		if !isRight && searchExcess >= int(p.minTree[treeIndex]) && searchExcess <= int(p.maxTree[treeIndex]) {
			break
		}
	}

	for childIndex := treeIndex * 2; childIndex < len(p.minTree); childIndex = treeIndex * 2 {
		if searchExcess >= int(p.minTree[childIndex]) && searchExcess <= int(p.maxTree[childIndex]) {
			treeIndex = childIndex
		} else {
			treeIndex = childIndex + 1
		}
	}

	superBlockIndex = p.superBlockCount - (len(p.minTree) - treeIndex)
	endBlockIndex = (superBlockIndex + 1) * smallBlockCount
	if endBlockIndex > len(p.minExcess) {
		endBlockIndex = len(p.minExcess)
	}
	return p.searchForwardInSuperBlock(superBlockIndex*smallBlockCount, endBlockIndex, searchExcess)
}

func (p *BalancedParenthesesIndex) searchForwardInSuperBlock(beginBlockIndex, endBlockIndex, searchExcess int) int {
	for i := beginBlockIndex; i < endBlockIndex; i++ {
		base := p.rank.excessAt(i*blockSize - 1)
		minE := base + int(p.minExcess[i])
		maxE := base + int(p.maxExcess[i])
		if searchExcess >= minE && searchExcess <= maxE {
			closeIndex := excess.ForwardExcessIndex(p.vector[i], 0, p.rank.excessAt(i*blockSize), searchExcess)
			return i*blockSize + closeIndex
		}
	}
	return -1
}

// searchBackward locates the last position q at or before index such that
// the excess just before q (at q-1, or 0 when q is 0) equals the excess at
// index minus delta. delta is 0 for FindOpen and 2 for
// Enclose (the excess just outside the enclosing pair is two less than the
// excess at the open parenthesis being enclosed).
func (p *BalancedParenthesesIndex) searchBackward(index, delta int) int {
	searchExcess := p.rank.excessAt(index) - delta
	if searchExcess < 0 {
		return -1
	}

	blockIndex := index / blockSize
	bitIndex := index % blockSize

	if bitIndex > 0 {
		openIndex, outcome := excess.BackwardExcessIndex(p.vector[blockIndex], bitIndex-1, p.rank.excessAt(index-1), searchExcess)
		if outcome != excess.NotFound {
			return blockIndex*blockSize + openIndex + 1
		}
	}

	superBlockIndex := index / largeBlockBitCount
	if r := p.searchBackwardInSuperBlock(blockIndex-1, superBlockIndex*smallBlockCount, searchExcess); r != -1 {
		return r
	}

	treeIndex := len(p.minTree) - p.superBlockCount + superBlockIndex
	for {
		isLeft := treeIndex%2 == 0
		if isLeft {
			treeIndex /= 2
		} else {
			treeIndex--
		}
		if !isLeft && searchExcess >= int(p.minTree[treeIndex]) && searchExcess <= int(p.maxTree[treeIndex]) {
			break
		}
	}

	for childIndex := treeIndex * 2; childIndex < len(p.minTree); {
		right := childIndex + 1
		if right < len(p.minTree) && searchExcess >= int(p.minTree[right]) && searchExcess <= int(p.maxTree[right]) {
			treeIndex = right
		} else {
			treeIndex = childIndex
		}
		childIndex = treeIndex * 2
	}

	superBlockIndex = p.superBlockCount - (len(p.minTree) - treeIndex)
	beginBlockIndex := (superBlockIndex+1)*smallBlockCount - 1
	if beginBlockIndex >= len(p.minExcess) {
		beginBlockIndex = len(p.minExcess) - 1
	}
	return p.searchBackwardInSuperBlock(beginBlockIndex, superBlockIndex*smallBlockCount, searchExcess)
}

func (p *BalancedParenthesesIndex) searchBackwardInSuperBlock(beginBlockIndex, endBlockIndex, searchExcess int) int {
	for i := beginBlockIndex; i >= endBlockIndex; i-- {
		base := p.rank.excessAt(i*blockSize - 1)
		minE := base + int(p.minExcess[i])
		maxE := base + int(p.maxExcess[i])
		if searchExcess >= minE && searchExcess <= maxE {
			openIndex, _ := excess.BackwardExcessIndex(p.vector[i], blockSize-1, p.rank.excessAt((i+1)*blockSize-1), searchExcess)
			return i*blockSize + openIndex + 1
		}
	}
	return -1
}

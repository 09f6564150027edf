package succinct

import (
	"math/bits"

	"github.com/yshahun/succinct-util/internal/invariants"
)

// RankDirectory answers Rank queries over a fixed bit vector in O(1) using
// a two-level directory: a cumulative popcount per large block (256 bits)
// and a cumulative popcount per small block (32 bits) within its large
// block, so a query costs one array lookup plus one popcount over at most
// one word.
//
// RankDirectory owns the vector it is built from and never mutates it; Set
// always fails with ErrUnsupported.
type RankDirectory struct {
	vector []uint32
	size   int
	large  []int32
	small  []uint8
}

var (
	_ BitSet = (*RankDirectory)(nil)
	_ Rank   = (*RankDirectory)(nil)
)

// NewRankDirectory builds a rank directory over vector, which must be sized
// tightly enough to cover size bits (len(vector)*32 >= size).
func NewRankDirectory(vector []uint32, size int) (*RankDirectory, error) {
	if size <= 0 || size > len(vector)*blockSize {
		return nil, badArgumentf("size %d incompatible with %d words", size, len(vector))
	}
	d := &RankDirectory{
		vector: vector,
		size:   size,
		large:  make([]int32, (len(vector)+smallBlockCount-1)/smallBlockCount+1),
		small:  make([]uint8, len(vector)),
	}
	d.build()
	if invariants.Enabled {
		invariants.CheckRankMonotonic(d.large)
	}
	return d, nil
}

func (d *RankDirectory) build() {
	for i := 0; i < len(d.vector); i += smallBlockCount {
		var r int
		end := i + smallBlockCount
		if end > len(d.vector) {
			end = len(d.vector)
		}
		for j := i; j < end; j++ {
			d.small[j] = uint8(r)
			r += bits.OnesCount32(d.vector[j])
		}
		k := i / smallBlockCount
		d.large[k+1] = d.large[k] + int32(r)
	}
}

// Get reports whether bit i is set.
func (d *RankDirectory) Get(i int) (bool, error) {
	if err := checkIndex(i, d.size); err != nil {
		return false, err
	}
	return d.vector[i/blockSize]&(1<<uint(i%blockSize)) != 0, nil
}

// Set always fails: a RankDirectory is a read-only view of its vector.
func (d *RankDirectory) Set(i int, v bool) error {
	return unsupportedf("RankDirectory is read-only")
}

// Size returns the number of addressable bits.
func (d *RankDirectory) Size() int {
	return d.size
}

// Rank returns the number of set bits in [0, i].
func (d *RankDirectory) Rank(i int) (int, error) {
	if err := checkIndex(i, d.size); err != nil {
		return 0, err
	}
	return d.rankUnchecked(i), nil
}

func (d *RankDirectory) rankUnchecked(i int) int {
	blockIndex := i / blockSize
	rank := int(d.large[i/largeBlockBitCount]) + int(d.small[blockIndex])
	remainder := uint(i % blockSize)
	mask := ^uint32(0) >> (31 - remainder)
	return rank + bits.OnesCount32(d.vector[blockIndex]&mask)
}

// excessAt returns the running excess through position i inclusive,
// treating i < 0 as the virtual position before the vector starts, whose
// excess is 0 by definition. It performs no bounds checking above 0 and is
// for internal callers, such as the range tree, which pass -1 or a position
// inside vector's words; that position may be at or past size.
func (d *RankDirectory) excessAt(i int) int {
	if i < 0 {
		return 0
	}
	return 2*d.rankUnchecked(i) - i - 1
}

// RankTotal returns the number of set bits in the whole vector.
func (d *RankDirectory) RankTotal() int {
	return int(d.large[len(d.large)-1])
}

// Rank0 returns the number of clear bits in [0, i].
func (d *RankDirectory) Rank0(i int) (int, error) {
	r, err := d.Rank(i)
	if err != nil {
		return 0, err
	}
	return i + 1 - r, nil
}

// Excess returns the running excess through position i inclusive.
func (d *RankDirectory) Excess(i int) (int, error) {
	r, err := d.Rank(i)
	if err != nil {
		return 0, err
	}
	return 2*r - i - 1, nil
}

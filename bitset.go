package succinct

// BitContainer is a mutable, word-packed bit vector. It comes in two
// flavors: a dynamic container grown with NewBitContainer, which doubles
// its backing storage on demand the way a slice append would, and a fixed
// container built with NewFixedBitContainer or NewBitContainerFromWords,
// which rejects any write past its declared size.
//
// A BitContainer is typically filled bit by bit and then handed to
// NewRankDirectory, NewSelectIndex, or NewBalancedParentheses via ToWords,
// which is where it turns into the read-only structures those types index.
type BitContainer struct {
	blocks  []uint32
	size    int
	dynamic bool
}

var _ BitSet = (*BitContainer)(nil)

// NewBitContainer returns an empty, dynamically growing bit container.
func NewBitContainer() *BitContainer {
	const initialBlockCount = 8
	return &BitContainer{
		blocks:  make([]uint32, initialBlockCount),
		size:    initialBlockCount * blockSize,
		dynamic: true,
	}
}

// NewFixedBitContainer returns a bit container of exactly size bits, all
// clear. Writes at or past size fail with ErrOutOfRange.
func NewFixedBitContainer(size int) (*BitContainer, error) {
	if size <= 0 {
		return nil, badArgumentf("size must be positive, got %d", size)
	}
	blockCount := (size + blockSize - 1) / blockSize
	return &BitContainer{blocks: make([]uint32, blockCount), size: size}, nil
}

// NewBitContainerFromWords wraps an existing word slice as a fixed-size bit
// container of exactly size bits, without copying. The caller must not
// mutate vector afterward except through the returned container.
func NewBitContainerFromWords(vector []uint32, size int) (*BitContainer, error) {
	if size <= 0 || size > len(vector)*blockSize {
		return nil, badArgumentf("size %d incompatible with %d words", size, len(vector))
	}
	return &BitContainer{blocks: vector, size: size}, nil
}

// Get reports whether bit i is set.
func (c *BitContainer) Get(i int) (bool, error) {
	if err := checkIndex(i, c.size); err != nil {
		return false, err
	}
	return c.blocks[i/blockSize]&(1<<uint(i%blockSize)) != 0, nil
}

// Set assigns bit i. In a dynamic container this may grow the backing
// storage; in a fixed container an index at or past Size fails.
func (c *BitContainer) Set(i int, v bool) error {
	if i < 0 || i >= maxBits {
		return outOfRangef("bit index %d out of range [0, %d)", i, maxBits)
	}
	if err := c.ensureCapacity(i); err != nil {
		return err
	}
	mask := uint32(1) << uint(i%blockSize)
	if v {
		c.blocks[i/blockSize] |= mask
	} else {
		c.blocks[i/blockSize] &^= mask
	}
	return nil
}

// SetBit is shorthand for Set(i, true).
func (c *BitContainer) SetBit(i int) error {
	return c.Set(i, true)
}

// SetWord overwrites word k (32 bits, k*32 .. k*32+31) wholesale. It grows a
// dynamic container the same way Set does.
func (c *BitContainer) SetWord(k int, v uint32) error {
	if k < 0 || k >= maxBlockCount {
		return outOfRangef("word index %d out of range [0, %d)", k, maxBlockCount)
	}
	if err := c.ensureCapacity((k+1)*blockSize - 1); err != nil {
		return err
	}
	c.blocks[k] = v
	return nil
}

// Size returns the number of addressable bits.
func (c *BitContainer) Size() int {
	return c.size
}

// Words returns the backing word slice directly, without copying. Callers
// must not mutate it if the container is still in use; ToWords is the safe
// alternative when handing bits off to another structure.
func (c *BitContainer) Words() []uint32 {
	return c.blocks
}

// ToWords returns a copy of the backing storage trimmed (or, if larger,
// zero-extended) to exactly newSize bits, with any bits beyond newSize
// within the final word cleared. This is the usual way to freeze a
// BitContainer's contents for NewRankDirectory, NewSelectIndex, or
// NewBalancedParentheses, which all expect a vector sized tightly to a bit
// count.
func (c *BitContainer) ToWords(newSize int) []uint32 {
	blockCount := (newSize + blockSize - 1) / blockSize
	out := make([]uint32, blockCount)
	copy(out, c.blocks)
	if remainder := newSize % blockSize; remainder > 0 {
		out[blockCount-1] &= (uint32(1) << uint(remainder)) - 1
	}
	return out
}

func (c *BitContainer) ensureCapacity(index int) error {
	if index < c.size {
		return nil
	}
	if !c.dynamic {
		return outOfRangef("index %d out of range [0, %d)", index, c.size)
	}
	blockCount := len(c.blocks) * 2
	if want := (index + blockSize) / blockSize; want > blockCount {
		blockCount = want
	}
	grown := make([]uint32, blockCount)
	copy(grown, c.blocks)
	c.blocks = grown
	newSize := int64(blockCount) * blockSize
	if newSize > maxBits {
		newSize = maxBits
	}
	c.size = int(newSize)
	return nil
}

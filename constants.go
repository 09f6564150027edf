package succinct

const (
	// blockSize is the number of bits in a small block / word (a uint32).
	blockSize = 32
	// smallBlockCount is the number of small blocks per large block, and
	// equivalently the number of words per superblock in the parentheses
	// range tree — the two granularities coincide by construction.
	smallBlockCount = 8
	// largeBlockBitCount is the number of bits in a large block / superblock.
	largeBlockBitCount = smallBlockCount * blockSize

	// maxBits is the largest bit index this package supports (2^31 - 1).
	// It is also reserved: attempting to set a bit at or beyond it always
	// fails with ErrOutOfRange, in both dynamic and fixed containers.
	maxBits = 1<<31 - 1
	// maxBlockCount is the number of whole words below maxBits; word indices
	// in [0, maxBlockCount) are accepted, so the word holding the reserved
	// bit maxBits is never written.
	maxBlockCount = maxBits / blockSize

	// selectSampleRange is the number of 1-bits between consecutive select
	// samples.
	selectSampleRange = 256
)

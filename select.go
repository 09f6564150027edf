package succinct

import "math/bits"

// SelectIndex layers a sampled Select index on top of a RankDirectory: it
// records, every selectSampleRange set bits, the small block that sample
// falls in, so a Select query can jump close to the answer before falling
// back to a linear scan over the large and small blocks that hold fewer than
// selectSampleRange set bits between the sample and the answer.
//
// SelectIndex embeds RankDirectory, so it is a Rank as well as a Select.
type SelectIndex struct {
	*RankDirectory
	samples []int32
}

var _ Select = (*SelectIndex)(nil)

// NewSelectIndex builds a select index over vector, which must be sized
// tightly enough to cover size bits.
func NewSelectIndex(vector []uint32, size int) (*SelectIndex, error) {
	d, err := NewRankDirectory(vector, size)
	if err != nil {
		return nil, err
	}
	s := &SelectIndex{
		RankDirectory: d,
		samples:       make([]int32, d.RankTotal()/selectSampleRange+1),
	}
	s.sample()
	return s, nil
}

func (s *SelectIndex) sample() {
	sampleIndex := 1
	sampleRank := selectSampleRange
	for i := 0; i < len(s.large)-1; i++ {
		largeRank := int(s.large[i])
		end := (i + 1) * smallBlockCount
		if end > len(s.small) {
			end = len(s.small)
		}
		for j := i * smallBlockCount; j < end; j++ {
			rank := largeRank + int(s.small[j])
			for sampleRank <= rank {
				s.samples[sampleIndex] = int32(j - 1)
				sampleIndex++
				sampleRank += selectSampleRange
			}
		}
	}
	total := s.RankTotal()
	for sampleRank <= total {
		s.samples[sampleIndex] = int32(len(s.small) - 1)
		sampleIndex++
		sampleRank += selectSampleRange
	}
}

// Select returns the index of the i-th set bit (0-based), or -1 if the
// vector has fewer than i+1 set bits.
func (s *SelectIndex) Select(i int) (int, error) {
	if err := checkIndex(i, s.size); err != nil {
		return 0, err
	}
	if i >= s.RankTotal() {
		return -1, nil
	}

	rank := i + 1

	largeBlockIndex := int(s.samples[rank/selectSampleRange]) / smallBlockCount
	for {
		largeBlockIndex++
		if rank <= int(s.large[largeBlockIndex]) {
			break
		}
	}
	largeBlockIndex--
	rank -= int(s.large[largeBlockIndex])

	smallBlockIndex := largeBlockIndex*smallBlockCount + (rank-1)/blockSize + 1
	boundary := (largeBlockIndex + 1) * smallBlockCount
	if boundary > len(s.small) {
		boundary = len(s.small)
	}
	for smallBlockIndex < boundary && int(s.small[smallBlockIndex]) < rank {
		smallBlockIndex++
	}
	smallBlockIndex--
	rank -= int(s.small[smallBlockIndex])

	word := s.vector[smallBlockIndex]
	for rank > 1 {
		word = (word - 1) & word
		rank--
	}
	return smallBlockIndex*blockSize + bits.TrailingZeros32(word), nil
}

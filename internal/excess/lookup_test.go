package excess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteLookupTablesAgainstNaiveScan(t *testing.T) {
	for b := 0; b < 256; b++ {
		min, max, cur := math.MaxInt8, math.MinInt8, 0
		for i := 0; i < 8; i++ {
			if b&(1<<uint(i)) != 0 {
				cur++
			} else {
				cur--
			}
			if cur < min {
				min = cur
			}
			if cur > max {
				max = cur
			}
		}
		require.Equal(t, int8(min), MinByte[b], "byte %d", b)
		require.Equal(t, int8(max), MaxByte[b], "byte %d", b)
	}
}

func TestByteLookupTablesBoundaryValues(t *testing.T) {
	require.Equal(t, int8(-8), MinByte[0x00])
	require.Equal(t, int8(-1), MaxByte[0x00])
	require.Equal(t, int8(1), MinByte[0xFF])
	require.Equal(t, int8(8), MaxByte[0xFF])
}

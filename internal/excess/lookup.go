// Package excess holds the byte-granularity excess lookup tables and the
// within-word excess scan primitives that the balanced-parentheses range
// tree is built on. It is an implementation detail of the succinct package,
// not part of its public surface.
package excess

import "math"

// MinByte and MaxByte are 256-entry tables of the minimum and maximum
// prefix excess of a byte, treating bit 0 (LSB) as the first parenthesis
// read and a set bit as an open parenthesis (+1) and a clear bit as a
// closed parenthesis (-1). Both are computed once at package init and are
// process-wide constants afterward.
var (
	MinByte [256]int8
	MaxByte [256]int8
)

func init() {
	for b := 0; b < 256; b++ {
		excess := 0
		min, max := math.MaxInt8, math.MinInt8
		for i := 0; i < 8; i++ {
			if b&(1<<uint(i)) != 0 {
				excess++
			} else {
				excess--
			}
			if excess < min {
				min = excess
			}
			if excess > max {
				max = excess
			}
		}
		MinByte[b] = int8(min)
		MaxByte[b] = int8(max)
	}
}

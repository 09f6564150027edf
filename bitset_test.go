package succinct

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitContainerDynamicGrowth(t *testing.T) {
	c := NewBitContainer()
	initialSize := c.Size()
	require.NoError(t, c.SetBit(initialSize+100))

	got, err := c.Get(initialSize + 100)
	require.NoError(t, err)
	require.True(t, got)
	require.Greater(t, c.Size(), initialSize)

	got, err = c.Get(0)
	require.NoError(t, err)
	require.False(t, got)
}

func TestBitContainerFixedRejectsOutOfRange(t *testing.T) {
	c, err := NewFixedBitContainer(64)
	require.NoError(t, err)

	require.NoError(t, c.SetBit(63))
	err = c.SetBit(64)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestBitContainerReservedTopIndex(t *testing.T) {
	c := NewBitContainer()
	err := c.SetBit(maxBits)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))

	err = c.SetBit(maxBits + 1000)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
}

func TestBitContainerSetWord(t *testing.T) {
	c, err := NewFixedBitContainer(64)
	require.NoError(t, err)
	require.NoError(t, c.SetWord(1, 0xF0F0F0F0))

	got, err := c.Get(32 + 4)
	require.NoError(t, err)
	require.True(t, got)

	got, err = c.Get(32)
	require.NoError(t, err)
	require.False(t, got)
}

func TestBitContainerToWordsTrimsTailBits(t *testing.T) {
	c, err := NewFixedBitContainer(40)
	require.NoError(t, err)
	require.NoError(t, c.SetWord(1, 0xFFFFFFFF))

	words := c.ToWords(36)
	require.Len(t, words, 2)
	require.Equal(t, uint32(0x0F), words[1])
}

func TestNewBitContainerFromWordsRejectsUndersizedVector(t *testing.T) {
	_, err := NewBitContainerFromWords([]uint32{0}, 33)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrBadArgument))
}

func TestBitContainerGetOutOfRange(t *testing.T) {
	c, err := NewFixedBitContainer(8)
	require.NoError(t, err)
	_, err = c.Get(8)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
	_, err = c.Get(-1)
	require.Error(t, err)
}

package binfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatterDumpsWordsAndAnnotations(t *testing.T) {
	words := []uint32{0b1011, 0xFFFF0000}
	out := New(words).
		Word(0, "rank base").
		Bit(20, "select sample boundary").
		String()

	require.True(t, strings.Contains(out, "1011"))
	require.True(t, strings.Contains(out, "rank base"))
	require.True(t, strings.Contains(out, "bit 20 (word 0, offset 20)"))
	require.True(t, strings.Contains(out, "select sample boundary"))
}

func TestFormatterWordOutOfRange(t *testing.T) {
	out := New([]uint32{1}).Word(5, "nope").String()
	require.True(t, strings.Contains(out, "<out of range>"))
}

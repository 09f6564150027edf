package succinct

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestBalancedParenthesesConcreteExample(t *testing.T) {
	// "(()(()))" -> bits 1,1,0,1,1,0,0,0
	words, size := wordsFromBits("11011000")
	p, err := NewBalancedParentheses(words, size)
	require.NoError(t, err)

	cases := []struct {
		open, close int
	}{
		{0, 7},
		{1, 2},
		{3, 6},
		{4, 5},
	}
	for _, c := range cases {
		got, err := p.FindClose(c.open)
		require.NoError(t, err)
		require.Equal(t, c.close, got, "findClose(%d)", c.open)

		gotOpen, err := p.FindOpen(c.close)
		require.NoError(t, err)
		require.Equal(t, c.open, gotOpen, "findOpen(%d)", c.close)
	}

	enclose := map[int]int{0: -1, 1: 0, 3: 0, 4: 3}
	for open, want := range enclose {
		got, err := p.Enclose(open)
		require.NoError(t, err)
		require.Equal(t, want, got, "enclose(%d)", open)
	}
}

func TestBalancedParenthesesDegenerateSingleLeaf(t *testing.T) {
	// A single word's worth of parentheses stays within one superblock, so
	// the range tree degenerates to a single leaf.
	rng := rand.New(rand.NewSource(1))
	s := randomBalancedParens(rng, 16) // 32 bits, exactly one word
	words, size := wordsFromBits(s)
	require.Len(t, words, 1)

	p, err := NewBalancedParentheses(words, size)
	require.NoError(t, err)
	require.Equal(t, 1, p.superBlockCount)

	checkBalancedParenthesesProperty(t, s)
}

func TestBalancedParenthesesPropertySmallRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 30; trial++ {
		pairs := 1 + rng.Intn(400)
		s := randomBalancedParens(rng, pairs)
		checkBalancedParenthesesProperty(t, s)
	}
}

func TestBalancedParenthesesPropertyLargeRandom(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large randomized property test in short mode")
	}
	// Property C, scenario 6: a large seeded random balanced-parenthesis
	// sequence checked against a stack baseline for every open position.
	// A balanced sequence has even length; 500,001 pairs (1,000,002 bits)
	// is the even length closest to the scale called for.
	rng := rand.New(rand.NewSource(1000003))
	s := randomBalancedParens(rng, 500001)
	checkBalancedParenthesesProperty(t, s)
}

func checkBalancedParenthesesProperty(t *testing.T, s string) {
	t.Helper()
	words, size := wordsFromBits(s)
	p, err := NewBalancedParentheses(words, size)
	require.NoError(t, err)

	wantClose := stackFindClose(s)
	wantEnclose := stackEnclose(s)

	for i, ch := range s {
		if ch != '1' {
			continue
		}
		closeIndex, err := p.FindClose(i)
		require.NoError(t, err)
		require.Equal(t, wantClose[i], closeIndex, "findClose(%d)", i)

		openIndex, err := p.FindOpen(closeIndex)
		require.NoError(t, err)
		require.Equal(t, i, openIndex, "findOpen(findClose(%d))", i)

		enclose, err := p.Enclose(i)
		require.NoError(t, err)
		require.Equal(t, wantEnclose[i], enclose, "enclose(%d)", i)
	}
}

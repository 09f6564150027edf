// Package binfmt renders a packed word array as an annotated bit dump, for
// use in test failure messages where a raw []uint32 is unreadable. It is a
// trimmed adaptation: the general structured-record formatter this is
// grounded on annotates arbitrary field/span layouts within a byte stream;
// this version only ever needs the one flat, fixed-width case a bit vector
// is, so the field/span machinery is gone and only the annotated-dump
// output remains.
package binfmt

import (
	"fmt"
	"strings"
)

// Formatter accumulates annotated lines describing a word array, one line
// per word, each line showing the word's bits (MSB first) alongside a
// caller-supplied label.
type Formatter struct {
	words []uint32
	lines []string
}

// New returns a Formatter over words.
func New(words []uint32) *Formatter {
	return &Formatter{words: words}
}

// Word appends a line describing word index i with the given label, e.g.
// "word 3: 00000000000000000000000000101101  rank base".
func (f *Formatter) Word(i int, label string) *Formatter {
	if i < 0 || i >= len(f.words) {
		f.lines = append(f.lines, fmt.Sprintf("word %d: <out of range>  %s", i, label))
		return f
	}
	f.lines = append(f.lines, fmt.Sprintf("word %d: %032b  %s", i, f.words[i], label))
	return f
}

// Bit appends a line describing a single bit position, decomposed into its
// word and within-word offset.
func (f *Formatter) Bit(index int, label string) *Formatter {
	word, offset := index/32, index%32
	f.lines = append(f.lines, fmt.Sprintf("bit %d (word %d, offset %d)  %s", index, word, offset, label))
	return f
}

// String renders the accumulated lines, one per line, with the full word
// dump prefixed.
func (f *Formatter) String() string {
	var b strings.Builder
	for i, w := range f.words {
		fmt.Fprintf(&b, "%3d: %032b\n", i, w)
	}
	for _, line := range f.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Package suffixtree builds a suffix tree over a sentinel-terminated string
// using Ukkonen's online algorithm and answers substring queries against it:
// exact membership, all occurrence positions, the longest repeated substring
// and the shortest unique substring.
//
// The alphabet is fixed: the 26 uppercase letters 'A'-'Z' plus the '$'
// sentinel, which must appear exactly once, at the end of the text. Prepare
// converts arbitrary user input into this alphabet.
package suffixtree

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidInput      = errors.New("suffixtree: invalid input text")
	ErrUnsupportedSymbol = errors.New("suffixtree: symbol outside the A-Z$ alphabet")
	ErrIncompleteTree    = errors.New("suffixtree: tree is not fully constructed")
)

// Sentinel terminates every text handed to New. It occurs nowhere else in a
// valid text, so every suffix ends at its own leaf.
const Sentinel byte = '$'

const alphabetSize = 27

// symbolIndex maps a symbol to its child-table slot. The sentinel takes the
// last slot, so it also sorts after every letter in DFS order.
func symbolIndex(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c == Sentinel:
		return alphabetSize - 1
	default:
		return -1
	}
}

// Tree is a suffix tree over a fixed text, built once by New. Queries do
// not mutate the tree structure, but LongestCommonExtension populates a
// cached index on first use, so a Tree is not safe for concurrent use.
type Tree struct {
	text     string
	nodes    []node
	root     int32
	sa       []int
	complete bool

	lce *lceIndex // built lazily by LongestCommonExtension
}

// New constructs the suffix tree for text, which must already carry the
// terminal sentinel. Construction plus leaf indexing run in amortized O(n);
// the returned tree is fully queryable.
func New(text string) (*Tree, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	t := &Tree{text: text, root: 0}
	t.nodes = make([]node, 0, 2*len(text))
	t.newNode(-1, -1)
	b := builder{t: t}
	b.build()
	t.indexLeaves()
	t.complete = true
	return t, nil
}

func validateText(text string) error {
	if len(text) == 0 {
		return fmt.Errorf("%w: empty text", ErrInvalidInput)
	}
	if text[len(text)-1] != Sentinel {
		return fmt.Errorf("%w: text must end with %q", ErrInvalidInput, Sentinel)
	}
	for i := 0; i < len(text)-1; i++ {
		if text[i] == Sentinel {
			return fmt.Errorf("%w: sentinel %q at interior position %d", ErrInvalidInput, Sentinel, i)
		}
		if symbolIndex(text[i]) < 0 {
			return fmt.Errorf("%w: %q at position %d", ErrUnsupportedSymbol, text[i], i)
		}
	}
	return nil
}

// Text returns the source text the tree was built over, sentinel included.
func (t *Tree) Text() string {
	return t.text
}

// ready reports whether t can be queried.
func (t *Tree) ready() bool {
	return t != nil && t.complete
}

var upper = cases.Upper(language.Und)

// Prepare normalizes raw input into the tree alphabet: NFC normalization,
// upper-casing, then a strict A-Z check. It does not append the sentinel;
// the same helper serves both texts (append Sentinel before calling New)
// and query patterns.
func Prepare(s string) (string, error) {
	s = upper.String(norm.NFC.String(strings.TrimSpace(s)))
	if s == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidInput)
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedSymbol, r)
		}
	}
	return s, nil
}

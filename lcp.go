package suffixtree

import (
	"fmt"

	"github.com/viniciusth/rmq"
)

// lceIndex answers longest-common-extension queries in O(1) after O(n)
// preprocessing: rank inverts the suffix array, lcp holds Kasai's array over
// it, and the RMQ finds the minimum LCP between any two ranks.
type lceIndex struct {
	rank []int
	lcp  []int
	rmq  *rmq.RMQHybridNaive[int]
}

// buildLCPArray is Kasai's algorithm: lcp[k] is the length of the longest
// common prefix of the suffixes at sa[k] and sa[k+1].
func buildLCPArray(sa []int, text string) []int {
	rank := make([]int, len(sa))
	for i := range sa {
		rank[sa[i]] = i
	}

	lcp := make([]int, len(sa)-1)
	l := 0
	for i := range sa {
		if rank[i]+1 == len(sa) {
			l = 0
			continue
		}
		j := sa[rank[i]+1]
		for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
			l++
		}
		lcp[rank[i]] = l
		if l > 0 {
			l--
		}
	}
	return lcp
}

func (t *Tree) lceIdx() *lceIndex {
	if t.lce == nil {
		rank := make([]int, len(t.sa))
		for i := range t.sa {
			rank[t.sa[i]] = i
		}
		lcp := buildLCPArray(t.sa, t.text)
		t.lce = &lceIndex{rank: rank, lcp: lcp, rmq: rmq.NewRMQHybridNaive(lcp)}
	}
	return t.lce
}

// LongestCommonExtension returns the length of the longest common prefix of
// the suffixes starting at i and j. Offsets must lie in [0, n) where n is
// the text length, sentinel included.
func (t *Tree) LongestCommonExtension(i, j int) (int, error) {
	if !t.ready() {
		return 0, ErrIncompleteTree
	}
	n := len(t.text)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("%w: offsets (%d, %d) out of range [0, %d)", ErrInvalidInput, i, j, n)
	}
	if i == j {
		return n - i, nil
	}
	idx := t.lceIdx()
	ri, rj := idx.rank[i], idx.rank[j]
	if ri > rj {
		ri, rj = rj, ri
	}
	return idx.lcp[idx.rmq.Query(ri, rj-1)], nil
}

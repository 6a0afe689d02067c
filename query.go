package suffixtree

import "slices"

// walk follows pattern from the root and returns the node at or below which
// the pattern ends. A match may end mid-edge; the returned node is then the
// edge's lower endpoint.
func (t *Tree) walk(pattern string) (int32, bool) {
	v := t.root
	pos := 0
	for pos < len(pattern) {
		idx := symbolIndex(pattern[pos])
		if idx < 0 {
			return nilNode, false
		}
		child := t.nodes[v].children[idx]
		if child == nilNode {
			return nilNode, false
		}
		start := int(t.nodes[child].start)
		l := min(t.edgeLength(child), len(pattern)-pos)
		if t.text[start:start+l] != pattern[pos:pos+l] {
			return nilNode, false
		}
		pos += l
		v = child
	}
	return v, true
}

// Search reports whether pattern occurs in the text. The empty pattern is
// trivially present.
func (t *Tree) Search(pattern string) (bool, error) {
	if !t.ready() {
		return false, ErrIncompleteTree
	}
	_, ok := t.walk(pattern)
	return ok, nil
}

// FindAllMatches returns every 0-based offset at which pattern occurs,
// ascending. An absent pattern yields an empty slice, not an error. The
// empty pattern matches at every offset.
func (t *Tree) FindAllMatches(pattern string) ([]int, error) {
	if !t.ready() {
		return nil, ErrIncompleteTree
	}
	v, ok := t.walk(pattern)
	if !ok {
		return []int{}, nil
	}

	matches := []int{}
	stack := []int32{v}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[u]
		if nd.isLeaf() {
			matches = append(matches, int(nd.suffixIndex))
			continue
		}
		for _, child := range nd.children {
			if child != nilNode {
				stack = append(stack, child)
			}
		}
	}
	slices.Sort(matches)
	return slices.Compact(matches), nil
}

// LongestRepeatedSubstring returns the longest substring occurring at least
// twice, or "" if no symbol repeats. Ties go to the first candidate in
// alphabet-ordered DFS.
func (t *Tree) LongestRepeatedSubstring() (string, error) {
	if !t.ready() {
		return "", ErrIncompleteTree
	}

	// Any internal node below the root marks a repeat: its path label is a
	// prefix of at least two suffixes. The label of the deepest such node
	// is recoverable from its frozen edge end, since a node's path label
	// always ends right where its incoming edge does.
	bestDepth := 0
	bestEnd := 0
	type frame struct {
		v     int32
		depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[f.v]

		children := 0
		for c := alphabetSize - 1; c >= 0; c-- {
			if child := nd.children[c]; child != nilNode {
				children++
				stack = append(stack, frame{child, f.depth + t.edgeLength(child)})
			}
		}
		if children >= 2 && f.depth > bestDepth {
			bestDepth = f.depth
			bestEnd = int(nd.end) + 1
		}
	}
	return t.text[bestEnd-bestDepth : bestEnd], nil
}

// ShortestUniqueSubstring returns the shortest substring occurring exactly
// once, excluding any candidate containing the sentinel, or "" if none
// exists. Ties go to the first candidate in alphabet-ordered DFS.
//
// A subtree with exactly one leaf is the leaf itself, and its full path
// label is the whole suffix, which always ends with the sentinel. The real
// candidates are therefore the implicit positions one symbol past each
// leaf's parent branch: unique already, and one symbol shorter than any
// other unique point on that edge.
func (t *Tree) ShortestUniqueSubstring() (string, error) {
	if !t.ready() {
		return "", ErrIncompleteTree
	}

	n := len(t.text)
	bestLen := n + 1
	bestStart := 0
	type frame struct {
		v     int32
		depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes[f.v]

		if nd.isLeaf() {
			branchDepth := f.depth - t.edgeLength(f.v)
			start := int(nd.suffixIndex)
			length := branchDepth + 1
			if t.text[start+length-1] == Sentinel {
				continue
			}
			if length < bestLen {
				bestLen = length
				bestStart = start
			}
			continue
		}
		for c := alphabetSize - 1; c >= 0; c-- {
			if child := nd.children[c]; child != nilNode {
				stack = append(stack, frame{child, f.depth + t.edgeLength(child)})
			}
		}
	}
	if bestLen > n {
		return "", nil
	}
	return t.text[bestStart : bestStart+bestLen], nil
}

package suffixtree

// indexLeaves assigns every leaf the starting offset of the suffix it
// represents: n minus the cumulative edge length from the root. Children
// are visited in alphabet order, so the leaves come out in lexicographic
// suffix order (sentinel sorting last) and double as the suffix array.
// Runs once, after construction; uses an explicit stack so depth is not
// bounded by the text length.
func (t *Tree) indexLeaves() {
	n := len(t.text)
	t.sa = make([]int, 0, n)

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
			nd.suffixIndex = int32(n - f.depth)
			t.sa = append(t.sa, n-f.depth)
			continue
		}
		// Push in reverse so the smallest symbol pops first.
		for c := alphabetSize - 1; c >= 0; c-- {
			if child := nd.children[c]; child != nilNode {
				stack = append(stack, frame{child, f.depth + t.edgeLength(child)})
			}
		}
	}
}

// SuffixArray returns the offsets of all suffixes in lexicographic order
// under the tree's alphabet, where the sentinel sorts after 'Z'.
func (t *Tree) SuffixArray() ([]int, error) {
	if !t.ready() {
		return nil, ErrIncompleteTree
	}
	sa := make([]int, len(t.sa))
	copy(sa, t.sa)
	return sa, nil
}

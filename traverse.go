package suffixtree

import "iter"

// Traverse yields (depth, edge label) pairs for every edge of the tree in
// DFS order, children in alphabet order, the root's outgoing edges at depth
// zero. The sequence is lazy and finite; ranging over it again restarts
// from the beginning. On an unbuilt tree it yields nothing.
func (t *Tree) Traverse() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if !t.ready() {
			return
		}
		type frame struct {
			v     int32
			depth int
		}
		var stack []frame
		for c := alphabetSize - 1; c >= 0; c-- {
			if child := t.nodes[t.root].children[c]; child != nilNode {
				stack = append(stack, frame{child, 0})
			}
		}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			nd := &t.nodes[f.v]
			if !yield(f.depth, t.text[nd.start:nd.end+1]) {
				return
			}
			for c := alphabetSize - 1; c >= 0; c-- {
				if child := nd.children[c]; child != nilNode {
					stack = append(stack, frame{child, f.depth + 1})
				}
			}
		}
	}
}

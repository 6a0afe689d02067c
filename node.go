package suffixtree

const (
	// nilNode is the empty child/suffix-link slot.
	nilNode int32 = -1
	// openEnd tags a leaf whose edge still grows with the current phase;
	// its effective end is the builder's shared leafEnd cursor until the
	// tree is finalized.
	openEnd int32 = -2
)

// node is one arena slot. The incoming edge label is text[start..end]
// (inclusive); children and suffixLink are arena indices, never pointers,
// so the whole tree is freed as one allocation.
type node struct {
	start       int32
	end         int32
	suffixLink  int32
	suffixIndex int32
	children    [alphabetSize]int32
}

func (n *node) isLeaf() bool {
	for _, c := range n.children {
		if c != nilNode {
			return false
		}
	}
	return true
}

// newNode appends a node to the arena and returns its index. The root is
// created with start = end = -1; leaves are created with end = openEnd.
func (t *Tree) newNode(start, end int32) int32 {
	n := node{
		start:       start,
		end:         end,
		suffixLink:  nilNode,
		suffixIndex: -1,
	}
	for i := range n.children {
		n.children[i] = nilNode
	}
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

// edgeLength is only valid on a finalized tree, where every end is frozen.
func (t *Tree) edgeLength(v int32) int {
	n := &t.nodes[v]
	return int(n.end - n.start + 1)
}

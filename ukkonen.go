package suffixtree

import "fmt"

// builder bundles Ukkonen's construction state: the active point, the
// pending-suffix counter, the shared leaf-end cursor and the internal node
// awaiting a suffix link. It exists only for the duration of build.
type builder struct {
	t    *Tree
	text string

	activeNode   int32
	activeEdge   int // text position of the active edge's first symbol
	activeLength int
	remaining    int
	leafEnd      int32
	lastCreated  int32
}

// build runs one phase per text symbol, then freezes every still-open leaf
// end at the final text position.
func (b *builder) build() {
	b.text = b.t.text
	b.activeNode = b.t.root
	b.leafEnd = -1
	b.lastCreated = nilNode
	for i := range b.text {
		b.extend(i)
	}
	last := int32(len(b.text) - 1)
	for i := range b.t.nodes {
		if b.t.nodes[i].end == openEnd {
			b.t.nodes[i].end = last
		}
	}
}

// liveEdgeLength reads the shared cursor for still-open leaves; edgeLength
// on the Tree is only usable once build has frozen them.
func (b *builder) liveEdgeLength(v int32) int {
	n := &b.t.nodes[v]
	end := n.end
	if end == openEnd {
		end = b.leafEnd
	}
	return int(end - n.start + 1)
}

// linkPending resolves the suffix link of the internal node created earlier
// in this phase, if one is still waiting, and clears it.
func (b *builder) linkPending(v int32) {
	if b.lastCreated != nilNode {
		b.t.nodes[b.lastCreated].suffixLink = v
		b.lastCreated = nilNode
	}
}

// extend runs phase i: bumping the shared cursor implicitly extends every
// open leaf by text[i], then the loop inserts the remaining suffixes one
// extension at a time until rule B stops the phase early.
func (b *builder) extend(i int) {
	b.leafEnd++
	b.remaining++
	b.lastCreated = nilNode

	for b.remaining > 0 {
		if b.activeLength == 0 {
			b.activeEdge = i
		}
		edge := symbolIndex(b.text[b.activeEdge])
		if edge < 0 {
			panic(fmt.Sprintf("suffixtree: inconsistent active point at phase %d", i))
		}
		next := b.t.nodes[b.activeNode].children[edge]

		if next == nilNode {
			// Rule A: no edge starts with the active symbol, grow a leaf.
			leaf := b.t.newNode(int32(i), openEnd)
			b.t.nodes[b.activeNode].children[edge] = leaf
			b.linkPending(b.activeNode)
		} else {
			if el := b.liveEdgeLength(next); b.activeLength >= el {
				// Walk down whole edges instead of one symbol at a time;
				// this is what keeps total work linear.
				b.activeEdge += el
				b.activeLength -= el
				b.activeNode = next
				continue
			}
			if b.text[int(b.t.nodes[next].start)+b.activeLength] == b.text[i] {
				// Rule B: the suffix is already implicitly present. The
				// phase must stop here entirely, not just this extension.
				b.activeLength++
				b.linkPending(b.activeNode)
				break
			}
			// Rule C: mismatch mid-edge, split and branch.
			split := b.splitEdge(next, edge)
			leaf := b.t.newNode(int32(i), openEnd)
			b.t.nodes[split].children[symbolIndex(b.text[i])] = leaf
			b.linkPending(split)
			b.lastCreated = split
		}

		b.remaining--
		if b.activeNode == b.t.root && b.activeLength > 0 {
			b.activeLength--
			b.activeEdge = i - b.remaining + 1
		} else if b.activeNode != b.t.root {
			if sl := b.t.nodes[b.activeNode].suffixLink; sl != nilNode {
				b.activeNode = sl
			} else {
				b.activeNode = b.t.root
			}
		}
	}
}

// splitEdge cuts next's edge activeLength symbols in, freezing the upper
// part into a new internal node that keeps next (trimmed) as a child.
func (b *builder) splitEdge(next int32, edge int) int32 {
	start := b.t.nodes[next].start
	splitEnd := start + int32(b.activeLength) - 1
	split := b.t.newNode(start, splitEnd)
	b.t.nodes[b.activeNode].children[edge] = split
	b.t.nodes[next].start = splitEnd + 1
	b.t.nodes[split].children[symbolIndex(b.text[splitEnd+1])] = next
	return split
}

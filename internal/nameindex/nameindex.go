// Package nameindex tracks the full construct paths a check run has
// already seen, so duplicate definitions across files can be reported.
// Paths are stored in an arena-backed trie: nodes live in one contiguous
// slice and reference children by index, which keeps a large corpus run
// (thousands of inserted paths) cheap on allocation and GC.
package nameindex

import (
	"sort"
	"strings"
)

type nodeIndex int

type node struct {
	children map[string]nodeIndex
	terminal bool
}

// Index is a set of construct paths ("Interface/member/argument"
// segment sequences).
type Index struct {
	nodes []node
	size  int
}

// New returns an empty Index.
func New() *Index {
	idx := &Index{nodes: make([]node, 0, 1024)}
	idx.nodes = append(idx.nodes, node{children: make(map[string]nodeIndex)})
	return idx
}

func (x *Index) newNode() nodeIndex {
	i := nodeIndex(len(x.nodes))
	x.nodes = append(x.nodes, node{children: make(map[string]nodeIndex)})
	return i
}

// Insert adds a path, reporting whether it was already present — the
// duplicate-definition signal callers branch on.
func (x *Index) Insert(path []string) bool {
	current := nodeIndex(0)
	for _, seg := range path {
		n := &x.nodes[current]
		child, ok := n.children[seg]
		if !ok {
			child = x.newNode()
			x.nodes[current].children[seg] = child
		}
		current = child
	}
	if x.nodes[current].terminal {
		return true
	}
	x.nodes[current].terminal = true
	x.size++
	return false
}

// Contains reports whether exactly this path was inserted.
func (x *Index) Contains(path []string) bool {
	current := nodeIndex(0)
	for _, seg := range path {
		child, ok := x.nodes[current].children[seg]
		if !ok {
			return false
		}
		current = child
	}
	return x.nodes[current].terminal
}

// Len is the number of distinct paths inserted.
func (x *Index) Len() int { return x.size }

// String renders the trie with "*" marking path ends, child segments in
// sorted order; used in tests and debug logging.
func (x *Index) String() string {
	return x.stringNode(0)
}

func (x *Index) stringNode(i nodeIndex) string {
	n := x.nodes[i]
	var sb strings.Builder
	if n.terminal {
		sb.WriteString("*")
	}
	keys := make([]string, 0, len(n.children))
	for key := range n.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteString("(")
		sb.WriteString(x.stringNode(n.children[key]))
		sb.WriteString(")")
	}
	return sb.String()
}

package hierarchy

import (
	"cmp"
	"slices"
)

// Sum returns the aggregate value of n: a leaf's own value, or the sum of
// all leaves below a group or root.
func Sum(n *Node) float64 {
	if n == nil {
		return 0
	}
	if n.Kind == KindLeaf {
		return n.Value
	}

	total := 0.0
	for _, c := range n.Children {
		total += Sum(c)
	}

	return total
}

// CountLeaves returns the number of leaves under n, counting n itself if it
// is a leaf.
func CountLeaves(n *Node) int {
	if n == nil {
		return 0
	}
	if n.Kind == KindLeaf {
		return 1
	}

	count := 0
	for _, c := range n.Children {
		count += CountLeaves(c)
	}

	return count
}

// SortByValue returns a deep copy of n with every node's children ordered by
// aggregate value, largest first. Ties keep their original order. Leaf
// records are shared, not copied. n is not modified.
func SortByValue(n *Node) *Node {
	if n == nil {
		return nil
	}

	out := *n
	if n.Children == nil {
		return &out
	}

	type weighted struct {
		node *Node
		sum  float64
	}

	children := make([]weighted, len(n.Children))
	for i, c := range n.Children {
		sorted := SortByValue(c)
		children[i] = weighted{node: sorted, sum: Sum(sorted)}
	}
	slices.SortStableFunc(children, func(a, b weighted) int {
		return cmp.Compare(b.sum, a.sum)
	})

	out.Children = make([]*Node, len(children))
	for i, c := range children {
		out.Children[i] = c.node
	}

	return &out
}

// Walk visits n and its descendants depth-first in child order, passing each
// node's depth (n is depth 0). When fn returns false the node's children are
// skipped.
func Walk(n *Node, fn func(node *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}

	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Find follows path from n by child name, taking the first child with each
// name. An empty path returns n.
func Find(n *Node, path ...string) (*Node, bool) {
	cur := n
	for _, name := range path {
		if cur == nil {
			return nil, false
		}

		idx := slices.IndexFunc(cur.Children, func(c *Node) bool { return c.Name == name })
		if idx < 0 {
			return nil, false
		}
		cur = cur.Children[idx]
	}

	return cur, cur != nil
}

// Leaves returns every leaf under n in depth-first order.
func Leaves(n *Node) []*Node {
	leaves := make([]*Node, 0)
	Walk(n, func(node *Node, _ int) bool {
		if node.Kind == KindLeaf {
			leaves = append(leaves, node)
		}

		return true
	})

	return leaves
}

package ranking

import "hash/fnv"

// Treap ordered by total DESC, then first appearance ASC. "less" means
// ranks earlier, so in-order traversal yields the board from best to worst.
// Priorities come from a hash of the name: the shape is random enough to
// stay balanced but identical across runs.

type node struct {
	name  string
	total int
	first int
	prio  uint64
	left  *node
	right *node
	size  int
}

func nsize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func fix(n *node) {
	if n != nil {
		n.size = 1 + nsize(n.left) + nsize(n.right)
	}
}

// less returns true if (aTotal, aFirst) should appear before (bTotal, bFirst).
func less(aTotal, aFirst, bTotal, bFirst int) bool {
	if aTotal != bTotal {
		return aTotal > bTotal
	}
	return aFirst < bFirst
}

func rotateRight(y *node) *node {
	x := y.left
	t2 := x.right
	x.right = y
	y.left = t2
	fix(y)
	fix(x)
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	t2 := y.left
	y.left = x
	x.right = t2
	fix(x)
	fix(y)
	return y
}

func priority(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}

func insert(n *node, name string, total, first int) *node {
	if n == nil {
		return &node{name: name, total: total, first: first, prio: priority(name), size: 1}
	}
	if less(total, first, n.total, n.first) {
		n.left = insert(n.left, name, total, first)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	} else {
		n.right = insert(n.right, name, total, first)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}
	fix(n)
	return n
}

// position returns the 1-based in-order position of the key, or 0 when it
// is not in the tree.
func position(n *node, total, first int) int {
	pos := 0
	for n != nil {
		switch {
		case n.total == total && n.first == first:
			return pos + nsize(n.left) + 1
		case less(total, first, n.total, n.first):
			n = n.left
		default:
			pos += nsize(n.left) + 1
			n = n.right
		}
	}
	return 0
}

// collect appends up to limit nodes in rank order.
func collect(n *node, limit int, out *[]*node) {
	if n == nil || len(*out) >= limit {
		return
	}
	collect(n.left, limit, out)
	if len(*out) < limit {
		*out = append(*out, n)
	}
	if len(*out) < limit {
		collect(n.right, limit, out)
	}
}

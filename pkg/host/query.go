package host

import "strings"

// QueryPrefix collects the descendants of root whose id carries the given
// prefix, depth-first in document order. The root itself is not matched.
// The scan index of each result is its structural rank.
func QueryPrefix(root *Node, prefix string) []*Node {
	if root == nil {
		return nil
	}
	var out []*Node
	for _, child := range root.Children() {
		child.Walk(func(n *Node) bool {
			if strings.HasPrefix(n.ID(), prefix) {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

// FindByID returns the first descendant of root (or root itself) with the
// given id, or nil.
func FindByID(root *Node, id string) *Node {
	if root == nil {
		return nil
	}
	var found *Node
	root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

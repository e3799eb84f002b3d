package viewtree

import "github.com/muurk/formnav/internal/navigator"

// Walker implements navigator.TreeWalker over a Tree.
type Walker struct {
	tree *Tree
}

var _ navigator.TreeWalker = (*Walker)(nil)

// Walker returns a navigator.TreeWalker for t
func (t *Tree) Walker() *Walker {
	return &Walker{tree: t}
}

// DescendantsFocusable returns the focusable controls below root in
// depth-first order. root may be a *Node or the *Tree itself; anything
// else yields nothing. Hidden subtrees are skipped.
func (w *Walker) DescendantsFocusable(root any) []navigator.Control {
	var start *Node
	switch r := root.(type) {
	case *Node:
		start = r
	case *Tree:
		start = r.root
	default:
		return nil
	}
	if start == nil || !start.visible() {
		return nil
	}

	var out []navigator.Control
	walk(start, func(n *Node) bool {
		if n.Hidden {
			return false
		}
		if n.focusable() {
			out = append(out, n.control)
		}
		return true
	})
	return out
}

// NearestScrollableList returns the closest ScrollList ancestor of c's leaf.
func (w *Walker) NearestScrollableList(c navigator.Control) (any, bool) {
	leaf, ok := w.tree.leaves[c]
	if !ok {
		return nil, false
	}
	for p := leaf.parent; p != nil; p = p.parent {
		if p.Kind == ScrollList {
			return p, true
		}
	}
	return nil, false
}

// SiblingFocusable returns the focusable controls among the direct children
// of c's parent, in child order.
func (w *Walker) SiblingFocusable(c navigator.Control) []navigator.Control {
	leaf, ok := w.tree.leaves[c]
	if !ok || leaf.parent == nil {
		return nil
	}
	var out []navigator.Control
	for _, sibling := range leaf.parent.children {
		if sibling.focusable() {
			out = append(out, sibling.control)
		}
	}
	return out
}

// Attached reports whether c's leaf is still connected to the tree root.
func (w *Walker) Attached(c navigator.Control) bool {
	leaf, ok := w.tree.leaves[c]
	if !ok {
		return false
	}
	n := leaf
	for n.parent != nil {
		n = n.parent
	}
	return n == w.tree.root
}

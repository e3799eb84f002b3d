package viewtree

import (
	"fmt"

	"github.com/muurk/formnav/internal/navigator"
)

// NodeKind identifies what a node represents
type NodeKind int

const (
	// Container groups children without scrolling.
	Container NodeKind = iota
	// ScrollList is a scrollable list; its focusable descendants share one
	// navigation order.
	ScrollList
	// Leaf holds a single control.
	Leaf
)

// String returns a human-readable name for the node kind
func (k NodeKind) String() string {
	switch k {
	case Container:
		return "container"
	case ScrollList:
		return "scroll-list"
	case Leaf:
		return "leaf"
	default:
		return fmt.Sprintf("NodeKind(%d)", k)
	}
}

// Enabler is implemented by controls that can be disabled. Disabled
// controls are not focusable and are skipped by the walker.
type Enabler interface {
	Enabled() bool
}

// Node is an element of a view tree.
type Node struct {
	Name string
	Kind NodeKind
	// Frame is relative to the parent's origin.
	Frame  navigator.Rect
	Tag    int
	Hidden bool

	control  navigator.Control
	parent   *Node
	children []*Node
	tree     *Tree
}

// NewContainer creates a plain container node
func NewContainer(name string, frame navigator.Rect) *Node {
	return &Node{Name: name, Kind: Container, Frame: frame}
}

// NewScrollList creates a scrollable-list node
func NewScrollList(name string, frame navigator.Rect) *Node {
	return &Node{Name: name, Kind: ScrollList, Frame: frame}
}

// NewLeaf creates a leaf node for a control. The control is bound to the
// node when the node is added to a tree.
func NewLeaf(name string, frame navigator.Rect, tag int, c navigator.Control) *Node {
	return &Node{Name: name, Kind: Leaf, Frame: frame, Tag: tag, control: c}
}

// Control returns the leaf's control, or nil for other kinds
func (n *Node) Control() navigator.Control {
	return n.control
}

// Parent returns the parent node, or nil for the root or a detached node
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in traversal order
func (n *Node) Children() []*Node {
	return n.children
}

// Add appends child to n and returns child. Leaves cannot have children.
func (n *Node) Add(child *Node) *Node {
	if n.Kind == Leaf {
		panic(fmt.Sprintf("viewtree: cannot add %q to leaf %q", child.Name, n.Name))
	}
	if child.parent != nil {
		child.Detach()
	}
	child.parent = n
	n.children = append(n.children, child)
	if n.tree != nil {
		n.tree.index(child)
	}
	return child
}

// Detach removes n from its parent. Controls below n are no longer
// attached to the tree.
func (n *Node) Detach() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
	if n.tree != nil {
		n.tree.unindex(n)
	}
}

// ScreenFrame returns the node's frame in screen coordinates.
func (n *Node) ScreenFrame() navigator.Rect {
	frame := n.Frame
	for p := n.parent; p != nil; p = p.parent {
		frame.X += p.Frame.X
		frame.Y += p.Frame.Y
	}
	return frame
}

// visible reports whether n and all its ancestors are shown.
func (n *Node) visible() bool {
	for p := n; p != nil; p = p.parent {
		if p.Hidden {
			return false
		}
	}
	return true
}

// focusable reports whether n is a leaf whose control can take focus now.
func (n *Node) focusable() bool {
	if n.Kind != Leaf || n.control == nil || !n.visible() {
		return false
	}
	if e, ok := n.control.(Enabler); ok && !e.Enabled() {
		return false
	}
	return true
}

// Tree owns a root node and an index from controls to their leaves.
type Tree struct {
	root   *Node
	leaves map[navigator.Control]*Node
}

// New creates a tree rooted at root, indexing every leaf already below it.
func New(root *Node) *Tree {
	t := &Tree{
		root:   root,
		leaves: make(map[navigator.Control]*Node),
	}
	t.index(root)
	return t
}

// Root returns the root node
func (t *Tree) Root() *Node {
	return t.root
}

// NodeFor returns the leaf holding c
func (t *Tree) NodeFor(c navigator.Control) (*Node, bool) {
	n, ok := t.leaves[c]
	return n, ok
}

// Controls returns every control in the tree, focusable or not, in
// traversal order.
func (t *Tree) Controls() []navigator.Control {
	var out []navigator.Control
	walk(t.root, func(n *Node) bool {
		if n.Kind == Leaf && n.control != nil {
			out = append(out, n.control)
		}
		return true
	})
	return out
}

func (t *Tree) index(n *Node) {
	walk(n, func(node *Node) bool {
		node.tree = t
		if node.Kind == Leaf && node.control != nil {
			t.leaves[node.control] = node
		}
		return true
	})
}

func (t *Tree) unindex(n *Node) {
	walk(n, func(node *Node) bool {
		node.tree = nil
		if node.Kind == Leaf && node.control != nil {
			delete(t.leaves, node.control)
		}
		return true
	})
}

// walk visits n and its descendants depth-first. Returning false from
// visit skips the node's children.
func walk(n *Node, visit func(*Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, c := range n.children {
		walk(c, visit)
	}
}

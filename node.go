package wisp

import "strings"

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// nodeIDCounter is a plain counter (no atomic: wisp is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the interactive tree the cursor moves over. A single
// flat struct is used for all element types.
type Node struct {
	// Identity
	ID      uint32
	Name    string
	Element ElementType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Size of the element's box in local coordinates. Zero for pure
	// containers.
	Width, Height float64

	// Computed by updateWorldTransform.
	worldTransform [6]float64
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Ordering
	ZIndex int

	// Text is the node's own text content. Descendant text is included by
	// TextContent.
	Text string

	// Cursor is the optional participation descriptor. Nil opts out.
	Cursor *Hint

	// HitShape overrides the Width/Height box for hit testing.
	HitShape HitShape

	// Metadata
	UserData any

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.Interactable = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a generic node with no box of its own.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Element: ElementGeneric}
	nodeDefaults(n)
	return n
}

// NewBox creates a generic node with a w x h box.
func NewBox(name string, w, h float64) *Node {
	n := &Node{Name: name, Element: ElementGeneric, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// NewAnchor creates a link element with the given text content.
func NewAnchor(name, text string, w, h float64) *Node {
	n := &Node{Name: name, Element: ElementAnchor, Text: text, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// NewButton creates a button element with the given text content.
func NewButton(name, text string, w, h float64) *Node {
	n := &Node{Name: name, Element: ElementButton, Text: text, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// NewTextInput creates an editable text field element.
func NewTextInput(name string, w, h float64) *Node {
	n := &Node{Name: name, Element: ElementTextInput, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// SetHint attaches a participation descriptor and returns the node for
// chaining.
func (n *Node) SetHint(h Hint) *Node {
	n.Cursor = &h
	return n
}

// CursorHint returns the node's descriptor, or the zero Hint if none is set.
func (n *Node) CursorHint() Hint {
	if n.Cursor == nil {
		return Hint{}
	}
	return *n.Cursor
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("wisp: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("wisp: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildren appends each child in order and returns n for chaining.
func (n *Node) AddChildren(children ...*Node) *Node {
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("wisp: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// --- Queries ---

// Closest returns the nearest node, starting with n itself and walking up
// through its ancestors, for which match returns true. Returns nil when none
// matches or n is nil.
func (n *Node) Closest(match func(*Node) bool) *Node {
	for p := n; p != nil; p = p.Parent {
		if match(p) {
			return p
		}
	}
	return nil
}

// TextContent returns the node's own text followed by its descendants' text
// in tree order.
func (n *Node) TextContent() string {
	if len(n.children) == 0 {
		return n.Text
	}
	var b strings.Builder
	appendText(&b, n)
	return b.String()
}

func appendText(b *strings.Builder, n *Node) {
	b.WriteString(n.Text)
	for _, c := range n.children {
		appendText(b, c)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.Cursor = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// rebuildSortedChildren refreshes the ZIndex-ordered child buffer.
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	// Stable insertion sort by ZIndex.
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

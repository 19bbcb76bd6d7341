// Package host provides the headless host-node tree that widgets inflate
// into. A host node carries identity, accessibility attributes, focus
// flags, and event handlers, but no geometry or paint state.
package host

// Handlers holds the event callbacks a node responds to.
type Handlers struct {
	// OnClick is invoked when the node is clicked.
	OnClick func()
	// OnFocus is invoked when the node gains input focus.
	OnFocus func()
	// OnBlur is invoked when the node loses input focus.
	OnBlur func()
}

// Node is a single element of the host tree. Nodes are created detached
// and adopt their document when appended to an attached parent.
type Node struct {
	id       string
	text     string
	parent   *Node
	children []*Node
	document *Document

	attrs map[string]string
	// normalizedRole is true while the current role attribute was applied
	// by tree normalization rather than declared by a widget or consumer.
	normalizedRole bool

	focusable bool
	tabStop   bool
	handlers  Handlers
}

// NewNode creates a detached node with the given id.
func NewNode(id string) *Node {
	return &Node{id: id, attrs: make(map[string]string)}
}

// ID returns the node id.
func (n *Node) ID() string { return n.id }

// Text returns the node's text content.
func (n *Node) Text() string { return n.text }

// SetText sets the node's text content.
func (n *Node) SetText(text string) { n.text = text }

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in document order. The returned slice
// must not be mutated.
func (n *Node) Children() []*Node { return n.children }

// Document returns the owning document, or nil while detached.
func (n *Node) Document() *Document { return n.document }

// AppendChild attaches child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	n.InsertChild(len(n.children), child)
}

// InsertChild attaches child at the given index among n's children.
// Indexes out of range clamp to the nearest end.
func (n *Node) InsertChild(index int, child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	if index < 0 {
		index = 0
	}
	if index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	child.adopt(n.document)
	if n.document != nil {
		n.document.structureChanged(n)
	}
}

// RemoveChild detaches child from n. Unknown children are ignored.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			if n.document != nil {
				n.document.releaseSubtree(child)
				n.document.structureChanged(n)
			}
			child.adopt(nil)
			return
		}
	}
}

// adopt propagates document ownership through the subtree.
func (n *Node) adopt(doc *Document) {
	n.document = doc
	for _, c := range n.children {
		c.adopt(doc)
	}
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from visit skips the node's subtree.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(visit)
	}
}

// Attribute returns a single attribute value.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// Attributes returns a copy of the node's attribute map.
func (n *Node) Attributes() map[string]string {
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// SetAttribute sets a single attribute. Setting a role this way marks the
// role as explicitly declared.
func (n *Node) SetAttribute(name, value string) {
	n.attrs[name] = value
	if name == "role" {
		n.normalizedRole = false
	}
}

// RemoveAttribute deletes an attribute.
func (n *Node) RemoveAttribute(name string) {
	delete(n.attrs, name)
	if name == "role" {
		n.normalizedRole = false
	}
}

// ApplyAttributes replaces the node's attributes wholesale. A role present
// in the map counts as explicitly declared.
func (n *Node) ApplyAttributes(attrs map[string]string) {
	n.attrs = make(map[string]string, len(attrs))
	for k, v := range attrs {
		n.attrs[k] = v
	}
	n.normalizedRole = false
}

// Role returns the node's role attribute, or "" when unset.
func (n *Node) Role() string {
	return n.attrs["role"]
}

// HasExplicitRole reports whether the node's role was declared by a widget
// or consumer, as opposed to applied by tree normalization.
func (n *Node) HasExplicitRole() bool {
	_, ok := n.attrs["role"]
	return ok && !n.normalizedRole
}

// NormalizeRole tags the node with a normalization-applied role. The tag is
// forgotten as soon as anything declares a role explicitly.
func (n *Node) NormalizeRole(role string) {
	n.attrs["role"] = role
	n.normalizedRole = true
}

// Focusable reports whether the node can receive input focus.
func (n *Node) Focusable() bool { return n.focusable }

// SetFocusable marks the node as focusable or not. Making the currently
// focused node unfocusable drops focus.
func (n *Node) SetFocusable(focusable bool) {
	n.focusable = focusable
	if !focusable && n.document != nil && n.document.focused == n {
		n.document.Blur()
	}
}

// TabStop reports whether the node is reachable by sequential keyboard
// navigation.
func (n *Node) TabStop() bool { return n.tabStop }

// SetTabStop marks the node as a sequential-navigation stop.
func (n *Node) SetTabStop(tabStop bool) { n.tabStop = tabStop }

// SetHandlers replaces the node's event handlers.
func (n *Node) SetHandlers(h Handlers) { n.handlers = h }

// IsFocused reports whether the node currently holds input focus.
func (n *Node) IsFocused() bool {
	return n.document != nil && n.document.focused == n
}

// MergeAttributes merges consumer-supplied attributes with toolkit-computed
// ones. Computed attributes win for the keys the toolkit owns; everything
// else passes through.
func MergeAttributes(consumer, computed map[string]string) map[string]string {
	merged := make(map[string]string, len(consumer)+len(computed))
	for k, v := range consumer {
		merged[k] = v
	}
	for k, v := range computed {
		merged[k] = v
	}
	return merged
}

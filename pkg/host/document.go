package host

// Key identifies a keyboard key relevant to widget navigation.
type Key int

const (
	// KeyNone is the zero key.
	KeyNone Key = iota
	// KeyLeft is the left arrow key.
	KeyLeft
	// KeyRight is the right arrow key.
	KeyRight
	// KeyUp is the up arrow key.
	KeyUp
	// KeyDown is the down arrow key.
	KeyDown
	// KeySpace is the space bar.
	KeySpace
	// KeyTab is the tab key.
	KeyTab
	// KeyEnter is the enter key.
	KeyEnter
	// KeyEscape is the escape key.
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeySpace:
		return "space"
	case KeyTab:
		return "tab"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	default:
		return "none"
	}
}

// KeyEvent is a keyboard event delivered to key subscriptions.
type KeyEvent struct {
	Key Key
}

type keySubscription struct {
	scope    *Node
	fn       func(KeyEvent) bool
	released bool
}

type structureObserver struct {
	scope    *Node
	fn       func()
	released bool
}

// Document owns a host tree and its input focus. At most one node holds
// focus at a time; the document enforces that invariant.
type Document struct {
	root    *Node
	focused *Node

	keySubs   []*keySubscription
	structObs []*structureObserver
	// notifying guards against structure mutations re-entering observer
	// notification.
	notifying bool
}

// NewDocument creates a document with an empty attached root node.
func NewDocument() *Document {
	d := &Document{}
	d.root = NewNode("root")
	d.root.document = d
	return d
}

// Root returns the document's root node.
func (d *Document) Root() *Node { return d.root }

// Focused returns the node currently holding input focus, or nil.
func (d *Document) Focused() *Node { return d.focused }

// Focus moves input focus to n. The old node's blur handler fires before
// the new node's focus handler. Focusing the already-focused node, a nil
// node, a detached node, or an unfocusable node is a no-op (use Blur to
// clear focus).
func (d *Document) Focus(n *Node) {
	if n == nil || n == d.focused {
		return
	}
	if n.document != d || !n.focusable {
		return
	}
	prev := d.focused
	d.focused = n
	if prev != nil && prev.handlers.OnBlur != nil {
		prev.handlers.OnBlur()
	}
	if n.handlers.OnFocus != nil {
		n.handlers.OnFocus()
	}
}

// Blur clears input focus, firing the focused node's blur handler.
func (d *Document) Blur() {
	prev := d.focused
	if prev == nil {
		return
	}
	d.focused = nil
	if prev.handlers.OnBlur != nil {
		prev.handlers.OnBlur()
	}
}

// Click dispatches a click to n.
func (d *Document) Click(n *Node) {
	if n == nil || n.document != d {
		return
	}
	if n.handlers.OnClick != nil {
		n.handlers.OnClick()
	}
}

// DispatchKey delivers a key event to subscriptions whose scope contains
// the focused node, in subscription order, stopping at the first consumer.
// It reports whether any subscription consumed the event.
func (d *Document) DispatchKey(ev KeyEvent) bool {
	if d.focused == nil {
		return false
	}
	// Snapshot: handlers may subscribe/release while dispatching.
	subs := make([]*keySubscription, len(d.keySubs))
	copy(subs, d.keySubs)
	for _, sub := range subs {
		if sub.released || sub.scope == nil || !sub.scope.Contains(d.focused) {
			continue
		}
		if sub.fn(ev) {
			return true
		}
	}
	return false
}

// SubscribeKeys registers a key handler scoped to the given node's subtree.
// The handler is consulted only while input focus is inside the scope and
// reports whether it consumed the event. The returned release function
// must be called when the scope unmounts.
func (d *Document) SubscribeKeys(scope *Node, fn func(KeyEvent) bool) func() {
	sub := &keySubscription{scope: scope, fn: fn}
	d.keySubs = append(d.keySubs, sub)
	return func() {
		if sub.released {
			return
		}
		sub.released = true
		for i, s := range d.keySubs {
			if s == sub {
				d.keySubs = append(d.keySubs[:i], d.keySubs[i+1:]...)
				return
			}
		}
	}
}

// ObserveStructure registers a callback fired after the child list of any
// node within scope changes. The returned release function must be called
// when the scope unmounts.
func (d *Document) ObserveStructure(scope *Node, fn func()) func() {
	obs := &structureObserver{scope: scope, fn: fn}
	d.structObs = append(d.structObs, obs)
	return func() {
		if obs.released {
			return
		}
		obs.released = true
		for i, o := range d.structObs {
			if o == obs {
				d.structObs = append(d.structObs[:i], d.structObs[i+1:]...)
				return
			}
		}
	}
}

// structureChanged notifies observers scoped over the mutated parent.
func (d *Document) structureChanged(parent *Node) {
	if d.notifying {
		return
	}
	d.notifying = true
	defer func() { d.notifying = false }()

	obs := make([]*structureObserver, len(d.structObs))
	copy(obs, d.structObs)
	for _, o := range obs {
		if o.released || o.scope == nil {
			continue
		}
		if o.scope.Contains(parent) {
			o.fn()
		}
	}
}

// releaseSubtree drops focus if the focused node is inside a subtree being
// detached. No blur handler fires: the node is leaving the tree.
func (d *Document) releaseSubtree(n *Node) {
	if d.focused != nil && n.Contains(d.focused) {
		d.focused = nil
	}
}

package widgets

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/host"
	"github.com/go-drift/headless/pkg/semantics"
)

// Box is a generic container node. Consumers use it to shape the host tree
// around headless widgets; it carries no semantics unless given a Role.
type Box struct {
	core.HostBase

	// ID is the host-node id. Empty is fine for structural wrappers.
	ID string
	// Role is an explicit semantic role. Role-less boxes inside a
	// RadioGroup are normalized to presentation.
	Role semantics.Role
	// Attributes are applied to the host node.
	Attributes map[string]string
	// Children are laid out in document order.
	Children []core.Widget
}

func (w Box) CreateElement() core.Element { return core.CreateHostElement(w) }

func (w Box) CreateNode(ctx core.BuildContext) *host.Node {
	node := host.NewNode(w.ID)
	w.apply(node)
	return node
}

func (w Box) UpdateNode(ctx core.BuildContext, node *host.Node) {
	w.apply(node)
}

func (w Box) ChildWidgets() []core.Widget { return w.Children }

func (w Box) apply(node *host.Node) {
	// Keep a normalization-applied role across updates unless the widget
	// declares its own.
	normalized := ""
	if !node.HasExplicitRole() {
		normalized = node.Role()
	}
	node.ApplyAttributes(w.Attributes)
	if w.Role != semantics.RoleNone {
		node.SetAttribute(semantics.AttrRole, w.Role.String())
	} else if normalized != "" {
		node.NormalizeRole(normalized)
	}
}

// Text is a leaf node carrying text content.
type Text struct {
	core.HostBase

	// ID is the host-node id.
	ID string
	// Content is the text content.
	Content string
	// Attributes are applied to the host node.
	Attributes map[string]string
}

func (w Text) CreateElement() core.Element { return core.CreateHostElement(w) }

func (w Text) CreateNode(ctx core.BuildContext) *host.Node {
	node := host.NewNode(w.ID)
	w.apply(node)
	return node
}

func (w Text) UpdateNode(ctx core.BuildContext, node *host.Node) {
	w.apply(node)
}

func (w Text) ChildWidgets() []core.Widget { return nil }

func (w Text) apply(node *host.Node) {
	normalized := ""
	if !node.HasExplicitRole() {
		normalized = node.Role()
	}
	node.SetText(w.Content)
	node.ApplyAttributes(w.Attributes)
	if normalized != "" {
		node.NormalizeRole(normalized)
	}
}

// Builder defers widget construction to build time, giving the closure
// access to a BuildContext.
type Builder struct {
	core.StatelessBase

	// Build returns the subtree for the current context.
	BuildFunc func(ctx core.BuildContext) core.Widget
}

func (w Builder) CreateElement() core.Element { return core.CreateStatelessElement(w) }

func (w Builder) Build(ctx core.BuildContext) core.Widget {
	if w.BuildFunc == nil {
		return nil
	}
	return w.BuildFunc(ctx)
}

// Package core provides the widget and element framework interfaces and lifecycle.
//
// This package defines the foundational types for building headless widget
// trees: Widget, Element, State, and BuildContext. It follows a declarative
// model where widgets describe what the host tree should look like, and the
// framework updates the actual host nodes to match.
//
// # Core Types
//
// Widget is an immutable description of part of the tree. Widgets are
// lightweight configuration objects that can be created frequently without
// performance concerns.
//
// Element is the instantiation of a Widget at a particular location in the
// tree. Elements manage the lifecycle and identity of widgets, and attach
// host nodes to the owning document.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    selected string
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: s.selected}
//	}
//
// # Constructor Conventions
//
// Controllers and services use NewX() constructors returning pointers. This
// distinguishes long-lived, mutable objects from immutable configuration
// objects (widgets, which use struct literals or XxxOf() helpers).
package core

import (
	"reflect"

	"github.com/go-drift/headless/pkg/host"
)

// Widget is an immutable description of part of the tree.
type Widget interface {
	// CreateElement instantiates the element that manages this widget.
	CreateElement() Element
	// Key returns the widget's identity key, or nil.
	Key() any
}

// StatelessWidget builds a child widget from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds the mutable state for a StatefulWidget.
type State interface {
	// SetElement stores the element for triggering rebuilds.
	SetElement(element *StatefulElement)
	// InitState is called once after the element is mounted.
	InitState()
	// Build returns the widget subtree for the current state.
	Build(ctx BuildContext) Widget
	// SetState executes fn and schedules a rebuild.
	SetState(fn func())
	// Dispose releases resources held by the state.
	Dispose()
	// DidChangeDependencies is called when an inherited dependency changes.
	DidChangeDependencies()
	// DidUpdateWidget is called when the widget configuration changes.
	DidUpdateWidget(oldWidget StatefulWidget)
}

// InheritedWidget exposes data to descendant widgets via BuildContext.
type InheritedWidget interface {
	Widget
	// ChildWidget returns the subtree the scope wraps.
	ChildWidget() Widget
	// UpdateShouldNotify reports whether dependents must rebuild after
	// the widget was replaced.
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}

// HostWidget creates and maintains a host node directly.
type HostWidget interface {
	Widget
	// CreateNode creates the host node for this widget.
	CreateNode(ctx BuildContext) *host.Node
	// UpdateNode reconfigures an existing host node after a rebuild.
	UpdateNode(ctx BuildContext, node *host.Node)
	// ChildWidgets returns the child widgets in document order.
	ChildWidgets() []Widget
}

// BuildContext is handed to build methods and gives access to the element's
// position in the tree.
type BuildContext interface {
	// DependOnInherited walks up the tree for the nearest inherited widget
	// of the given type, registering the caller as a dependent. Returns
	// nil when no such ancestor exists.
	DependOnInherited(inheritedType reflect.Type) any
	// Document returns the host document the tree is attached to.
	Document() *host.Document
}

// Element is the instantiation of a widget at a location in the tree.
type Element interface {
	BuildContext

	// Widget returns the current widget configuration.
	Widget() Widget
	// Depth returns the element's depth from the root.
	Depth() int
	// Mount attaches the element below parent.
	Mount(parent Element, slot any)
	// Update replaces the widget configuration in place.
	Update(newWidget Widget)
	// Unmount detaches the element and releases its resources.
	Unmount()
	// MarkNeedsBuild schedules the element for rebuild.
	MarkNeedsBuild()
	// RebuildIfNeeded rebuilds the element if it is dirty.
	RebuildIfNeeded()
	// VisitChildren visits direct children; the visitor returns false to stop.
	VisitChildren(visitor func(Element) bool)
}

// MountRoot inflates widget as the root of a tree attached to doc.
func MountRoot(widget Widget, owner *BuildOwner, doc *host.Document) Element {
	return inflateWidget(widget, nil, owner, doc, nil)
}

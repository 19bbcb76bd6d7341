package core

import (
	"github.com/go-drift/headless/pkg/host"
)

// StatelessElement manages a StatelessWidget and its single child.
type StatelessElement struct {
	elementBase
	child Element
}

// NewStatelessElement creates an element for the given stateless widget.
func NewStatelessElement(widget StatelessWidget) *StatelessElement {
	e := &StatelessElement{}
	e.widget = widget
	e.setSelf(e)
	return e
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	e.rebuild()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.rebuild()
}

func (e *StatelessElement) Unmount() {
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.mounted = false
	e.parent = nil
}

func (e *StatelessElement) RebuildIfNeeded() {
	if e.dirty {
		e.rebuild()
	}
}

func (e *StatelessElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

func (e *StatelessElement) rebuild() {
	e.dirty = false
	built := e.safeBuild(func() Widget {
		return e.widget.(StatelessWidget).Build(e)
	})
	e.child = updateChild(e.child, built, e, e.buildOwner, e.document, e.slot)
}

// StatefulElement manages a StatefulWidget, its State, and its single child.
type StatefulElement struct {
	elementBase
	state State
	child Element
}

// NewStatefulElement creates an element and state for the given widget.
func NewStatefulElement(widget StatefulWidget) *StatefulElement {
	e := &StatefulElement{}
	e.widget = widget
	e.state = widget.CreateState()
	e.setSelf(e)
	return e
}

// State returns the state object owned by this element.
func (e *StatefulElement) State() State {
	return e.state
}

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	e.state.SetElement(e)
	e.state.InitState()
	e.state.DidChangeDependencies()
	e.rebuild()
}

func (e *StatefulElement) Update(newWidget Widget) {
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.rebuild()
}

func (e *StatefulElement) Unmount() {
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.state.Dispose()
	e.mounted = false
	e.parent = nil
}

func (e *StatefulElement) RebuildIfNeeded() {
	if e.dirty {
		e.rebuild()
	}
}

func (e *StatefulElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// NotifyDependenciesChanged is called when an inherited ancestor this element
// depends on was replaced with a notifying update.
func (e *StatefulElement) NotifyDependenciesChanged() {
	e.state.DidChangeDependencies()
	e.MarkNeedsBuild()
}

func (e *StatefulElement) rebuild() {
	e.dirty = false
	built := e.safeBuild(func() Widget {
		return e.state.Build(e)
	})
	e.child = updateChild(e.child, built, e, e.buildOwner, e.document, e.slot)
}

// HostElement manages a HostWidget and the host node it owns. Children
// attach their own nodes below this element's node.
type HostElement struct {
	elementBase
	node     *host.Node
	children []Element
}

// NewHostElement creates an element for the given host widget.
func NewHostElement(widget HostWidget) *HostElement {
	e := &HostElement{}
	e.widget = widget
	e.setSelf(e)
	return e
}

// Node returns the host node owned by this element.
func (e *HostElement) Node() *host.Node {
	return e.node
}

func (e *HostElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	e.dirty = false

	widget := e.widget.(HostWidget)
	e.node = widget.CreateNode(e)
	if attachTo := e.parentNode(); attachTo != nil && e.node != nil {
		attachTo.AppendChild(e.node)
	}

	for _, childWidget := range widget.ChildWidgets() {
		if childWidget == nil {
			continue
		}
		e.children = append(e.children, inflateWidget(childWidget, e, e.buildOwner, e.document, nil))
	}
}

func (e *HostElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.rebuild()
}

func (e *HostElement) Unmount() {
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
	if e.node != nil {
		if parent := e.node.Parent(); parent != nil {
			parent.RemoveChild(e.node)
		}
		e.node = nil
	}
	e.mounted = false
	e.parent = nil
}

func (e *HostElement) RebuildIfNeeded() {
	if e.dirty {
		e.rebuild()
	}
}

func (e *HostElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

func (e *HostElement) rebuild() {
	e.dirty = false
	widget := e.widget.(HostWidget)
	if e.node != nil {
		widget.UpdateNode(e, e.node)
	}

	newWidgets := widget.ChildWidgets()
	count := len(e.children)
	if len(newWidgets) < count {
		count = len(newWidgets)
	}
	for i := 0; i < count; i++ {
		e.children[i] = updateChild(e.children[i], newWidgets[i], e, e.buildOwner, e.document, nil)
	}
	for i := count; i < len(e.children); i++ {
		e.children[i].Unmount()
	}
	e.children = e.children[:count]
	for i := count; i < len(newWidgets); i++ {
		if newWidgets[i] == nil {
			continue
		}
		e.children = append(e.children, inflateWidget(newWidgets[i], e, e.buildOwner, e.document, nil))
	}
}

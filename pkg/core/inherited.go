package core

// InheritedElement manages an InheritedWidget, tracking the elements that
// depend on it so they can be rebuilt when the scope's data changes.
type InheritedElement struct {
	elementBase
	child      Element
	dependents map[Element]struct{}
}

// NewInheritedElement creates an element for the given inherited widget.
func NewInheritedElement(widget InheritedWidget) *InheritedElement {
	e := &InheritedElement{
		dependents: make(map[Element]struct{}),
	}
	e.widget = widget
	e.setSelf(e)
	return e
}

// AddDependent registers an element to be notified when the scope updates.
func (e *InheritedElement) AddDependent(dependent Element) {
	if dependent == nil {
		return
	}
	e.dependents[dependent] = struct{}{}
}

// RemoveDependent drops a previously registered dependent.
func (e *InheritedElement) RemoveDependent(dependent Element) {
	delete(e.dependents, dependent)
}

func (e *InheritedElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	e.dirty = false
	e.child = updateChild(nil, e.widget.(InheritedWidget).ChildWidget(), e, e.buildOwner, e.document, e.slot)
}

func (e *InheritedElement) Update(newWidget Widget) {
	oldWidget := e.widget.(InheritedWidget)
	e.widget = newWidget
	if newWidget.(InheritedWidget).UpdateShouldNotify(oldWidget) {
		e.notifyDependents()
	}
	e.child = updateChild(e.child, newWidget.(InheritedWidget).ChildWidget(), e, e.buildOwner, e.document, e.slot)
}

func (e *InheritedElement) Unmount() {
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.dependents = nil
	e.mounted = false
	e.parent = nil
}

func (e *InheritedElement) RebuildIfNeeded() {
	if e.dirty {
		e.dirty = false
		e.child = updateChild(e.child, e.widget.(InheritedWidget).ChildWidget(), e, e.buildOwner, e.document, e.slot)
	}
}

func (e *InheritedElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

func (e *InheritedElement) notifyDependents() {
	for dependent := range e.dependents {
		if notifiable, ok := dependent.(interface{ NotifyDependenciesChanged() }); ok {
			notifiable.NotifyDependenciesChanged()
		} else {
			dependent.MarkNeedsBuild()
		}
	}
}

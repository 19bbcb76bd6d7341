package core

import (
	"reflect"
	"time"

	"github.com/go-drift/headless/pkg/errors"
	"github.com/go-drift/headless/pkg/host"
)

type elementBase struct {
	widget     Widget
	parent     Element
	depth      int
	slot       any
	buildOwner *BuildOwner
	document   *host.Document
	dirty      bool
	self       Element
	mounted    bool
}

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) Document() *host.Document {
	return e.document
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) parentElement() Element {
	return e.parent
}

func (e *elementBase) setSelf(self Element) {
	e.self = self
}

func (e *elementBase) setBuildOwner(owner *BuildOwner) {
	e.buildOwner = owner
}

func (e *elementBase) setDocument(doc *host.Document) {
	e.document = doc
}

func (e *elementBase) isMounted() bool {
	return e.mounted
}

func (e *elementBase) mount(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
	e.dirty = true
}

// DependOnInherited walks up the element tree to find the nearest
// InheritedElement hosting a widget of the requested type, registering the
// caller as a dependent of it.
func (e *elementBase) DependOnInherited(inheritedType reflect.Type) any {
	current := e.parent
	for current != nil {
		if inherited, ok := current.(*InheritedElement); ok {
			widgetType := reflect.TypeOf(inherited.widget)
			if widgetType == inheritedType || (widgetType.Kind() == reflect.Pointer && widgetType.Elem() == inheritedType) {
				inherited.AddDependent(e.self)
				return inherited.widget
			}
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

// findHostParent walks up the element tree to the nearest HostElement.
func (e *elementBase) findHostParent() *HostElement {
	current := e.parent
	for current != nil {
		if hostElement, ok := current.(*HostElement); ok {
			return hostElement
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

// parentNode returns the host node new nodes should attach under.
func (e *elementBase) parentNode() *host.Node {
	if hostParent := e.findHostParent(); hostParent != nil {
		return hostParent.node
	}
	if e.document != nil {
		return e.document.Root()
	}
	return nil
}

// safeBuild executes a build function with panic recovery.
// If the build panics, it reports the error and returns nil.
func (e *elementBase) safeBuild(buildFn func() Widget) Widget {
	var built Widget
	var buildErr *errors.BuildError

	func() {
		defer func() {
			if r := recover(); r != nil {
				buildErr = &errors.BuildError{
					Widget:     reflect.TypeOf(e.widget).String(),
					Element:    reflect.TypeOf(e.self).String(),
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		built = buildFn()
	}()

	if buildErr != nil {
		errors.ReportBuildError(buildErr)
		return nil
	}
	return built
}

// canUpdate reports whether an element holding old can be updated in place
// to hold new.
func canUpdate(old, new Widget) bool {
	if reflect.TypeOf(old) != reflect.TypeOf(new) {
		return false
	}
	return old.Key() == new.Key()
}

// inflateWidget creates, wires, and mounts an element for widget.
func inflateWidget(widget Widget, parent Element, owner *BuildOwner, doc *host.Document, slot any) Element {
	if widget == nil {
		return nil
	}
	element := widget.CreateElement()
	if wirable, ok := element.(interface {
		setBuildOwner(*BuildOwner)
		setDocument(*host.Document)
	}); ok {
		wirable.setBuildOwner(owner)
		wirable.setDocument(doc)
	}
	element.Mount(parent, slot)
	return element
}

// updateChild reconciles a single child element against a new widget.
func updateChild(child Element, newWidget Widget, parent Element, owner *BuildOwner, doc *host.Document, slot any) Element {
	if newWidget == nil {
		if child != nil {
			child.Unmount()
		}
		return nil
	}
	if child != nil {
		if canUpdate(child.Widget(), newWidget) {
			child.Update(newWidget)
			return child
		}
		child.Unmount()
	}
	return inflateWidget(newWidget, parent, owner, doc, slot)
}

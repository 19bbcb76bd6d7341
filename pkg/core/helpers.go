package core

// The base structs below give widget types their CreateElement wiring via
// embedding. A widget embeds the base matching its kind and implements the
// rest of the interface on itself.

// StatelessBase wires a StatelessWidget to its element type.
type StatelessBase struct {
	WidgetKey any
}

func (b StatelessBase) Key() any { return b.WidgetKey }

// CreateStatelessElement builds the element for a stateless widget. Widgets
// embedding StatelessBase implement CreateElement as a one-line call to this
// with themselves as the argument.
func CreateStatelessElement(widget StatelessWidget) Element {
	return NewStatelessElement(widget)
}

// StatefulBase wires a StatefulWidget to its element type.
type StatefulBase struct {
	WidgetKey any
}

func (b StatefulBase) Key() any { return b.WidgetKey }

// CreateStatefulElement builds the element for a stateful widget.
func CreateStatefulElement(widget StatefulWidget) Element {
	return NewStatefulElement(widget)
}

// InheritedBase wires an InheritedWidget to its element type.
type InheritedBase struct {
	WidgetKey any
}

func (b InheritedBase) Key() any { return b.WidgetKey }

// CreateInheritedElement builds the element for an inherited widget.
func CreateInheritedElement(widget InheritedWidget) Element {
	return NewInheritedElement(widget)
}

// HostBase wires a HostWidget to its element type.
type HostBase struct {
	WidgetKey any
}

func (b HostBase) Key() any { return b.WidgetKey }

// CreateHostElement builds the element for a host widget.
func CreateHostElement(widget HostWidget) Element {
	return NewHostElement(widget)
}

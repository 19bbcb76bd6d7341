package widgets

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/errors"
	"github.com/go-drift/headless/pkg/host"
	"github.com/go-drift/headless/pkg/ids"
)

// GroupLabel renders label text for the enclosing [RadioGroup] and wires
// its node id into the group's labelledby attribute. It must be placed
// inside a group.
type GroupLabel struct {
	core.StatefulBase

	// Text is the label content.
	Text string
	// Attributes are consumer attributes applied to the label host node.
	Attributes map[string]string
}

func (w GroupLabel) CreateElement() core.Element { return core.CreateStatefulElement(w) }

func (w GroupLabel) CreateState() core.State {
	return &groupLabelState{register: (*RadioGroupState).addLabelID, unregister: (*RadioGroupState).removeLabelID, component: "GroupLabel", newID: ids.NewLabelID}
}

// GroupDescription renders descriptive text for the enclosing [RadioGroup]
// and wires its node id into the group's describedby attribute. It must be
// placed inside a group.
type GroupDescription struct {
	core.StatefulBase

	// Text is the description content.
	Text string
	// Attributes are consumer attributes applied to the description host node.
	Attributes map[string]string
}

func (w GroupDescription) CreateElement() core.Element { return core.CreateStatefulElement(w) }

func (w GroupDescription) CreateState() core.State {
	return &groupLabelState{register: (*RadioGroupState).addDescriptionID, unregister: (*RadioGroupState).removeDescriptionID, component: "GroupDescription", newID: ids.NewDescriptionID}
}

// groupLabelState backs both label and description widgets; the two differ
// only in which id list on the group they register into.
type groupLabelState struct {
	core.StateBase

	register   func(*RadioGroupState, string)
	unregister func(*RadioGroupState, string)
	component  string
	newID      func() string

	id    string
	group *RadioGroupState
}

func (s *groupLabelState) InitState() {
	s.id = s.newID()
	s.OnDispose(func() {
		if s.group != nil {
			s.unregister(s.group, s.id)
			s.group = nil
		}
	})
}

func (s *groupLabelState) Build(ctx core.BuildContext) core.Widget {
	group := RadioGroupOf(ctx)
	if group == nil {
		panic(&errors.MissingContextError{Component: s.component, Scope: "RadioGroup"})
	}
	if group != s.group {
		if s.group != nil {
			s.unregister(s.group, s.id)
		}
		s.group = group
		s.register(group, s.id)
	}

	text, attrs := s.content()
	return labelHost{id: s.id, text: text, attrs: attrs}
}

func (s *groupLabelState) content() (string, map[string]string) {
	switch w := s.Element().Widget().(type) {
	case GroupLabel:
		return w.Text, w.Attributes
	case GroupDescription:
		return w.Text, w.Attributes
	}
	return "", nil
}

// labelHost owns the plain text node labels and descriptions render into.
type labelHost struct {
	core.HostBase
	id    string
	text  string
	attrs map[string]string
}

func (l labelHost) CreateElement() core.Element { return core.CreateHostElement(l) }

func (l labelHost) CreateNode(ctx core.BuildContext) *host.Node {
	node := host.NewNode(l.id)
	l.apply(node)
	return node
}

func (l labelHost) UpdateNode(ctx core.BuildContext, node *host.Node) {
	l.apply(node)
}

func (l labelHost) ChildWidgets() []core.Widget { return nil }

func (l labelHost) apply(node *host.Node) {
	node.SetText(l.text)
	node.ApplyAttributes(l.attrs)
}

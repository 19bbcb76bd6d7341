package widgets

import (
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/errors"
	"github.com/go-drift/headless/pkg/host"
	"github.com/go-drift/headless/pkg/ids"
	"github.com/go-drift/headless/pkg/semantics"
)

// OptionRef is a group's handle on a mounted option.
type OptionRef struct {
	// ID is the option's host-node id, unique for the mount's lifetime.
	ID string
	// Node is the option's host node, nil before the node is created.
	Node *host.Node
	// Value reads the option's current value. The value may change while
	// the option is mounted, so the group reads through this cell rather
	// than holding a copy.
	Value func() any
}

// OptionContext is handed to [RadioOption] class resolvers.
type OptionContext struct {
	// Checked is true when the option's value equals the group's value.
	Checked bool
	// Active is true between focus/click and the next blur.
	Active bool
}

// optionPhase is the option's local interaction state. It is set by the
// option's own handlers only and never synchronized across options.
type optionPhase int

const (
	phaseIdle optionPhase = iota
	phaseActive
)

// RadioOption is a single selectable value inside a [RadioGroup]. It must
// be placed inside a group; mounting one elsewhere reports a configuration
// error naming the widget.
type RadioOption struct {
	core.StatefulBase

	// Value is this option's selection value. Any equality-comparable
	// value works; non-comparable values fall back to deep comparison.
	Value any
	// Disabled removes the option from focus traversal.
	Disabled bool
	// Label is the option's accessibility label.
	Label string
	// Attributes are consumer attributes merged onto the option host node.
	Attributes map[string]string
	// Class is a static style class passed through to the host node.
	Class string
	// ClassFunc computes the style class from the option's current state.
	// When set it takes precedence over Class.
	ClassFunc func(OptionContext) string
	// Child is the option content.
	Child core.Widget
}

func (w RadioOption) CreateElement() core.Element { return core.CreateStatefulElement(w) }

func (w RadioOption) CreateState() core.State { return &RadioOptionState{} }

// RadioOptionState holds an option's local state and event handlers.
type RadioOptionState struct {
	core.StateBase

	id    string
	ref   *OptionRef
	group *RadioGroupState
	phase optionPhase
}

// InitState allocates the option id and wires unregistration on dispose.
func (s *RadioOptionState) InitState() {
	s.id = ids.NewOptionID()
	s.ref = &OptionRef{
		ID: s.id,
		Value: func() any {
			return s.widget().Value
		},
	}
	s.OnDispose(func() {
		if s.group != nil {
			s.group.UnregisterOption(s.id)
			s.group = nil
		}
	})
}

// Build registers with the enclosing group and renders the option host.
func (s *RadioOptionState) Build(ctx core.BuildContext) core.Widget {
	group := RadioGroupOf(ctx)
	if group == nil {
		panic(&errors.MissingContextError{Component: "RadioOption", Scope: "RadioGroup"})
	}
	s.registerWithGroup(group)
	return optionHost{state: s, child: s.widget().Child}
}

func (s *RadioOptionState) registerWithGroup(group *RadioGroupState) {
	if group == s.group {
		return
	}
	if s.group != nil {
		s.group.UnregisterOption(s.id)
	}
	s.group = group
	group.RegisterOption(s.ref)
}

func (s *RadioOptionState) widget() RadioOption {
	if s.Element() == nil {
		return RadioOption{}
	}
	return s.Element().Widget().(RadioOption)
}

// ID returns the option's host-node id.
func (s *RadioOptionState) ID() string { return s.id }

// Checked reports whether this option's value equals the group's value.
func (s *RadioOptionState) Checked() bool {
	return s.group != nil && s.group.isChecked(s.ref)
}

// Active reports whether the option is in its active interaction phase.
func (s *RadioOptionState) Active() bool {
	return s.phase == phaseActive
}

// handleClick activates the option, requests the selection change, and
// moves input focus onto it. Clicking the already-checked option is a
// no-op. A disabled group swallows the change request inside Change.
func (s *RadioOptionState) handleClick() {
	if s.group == nil || s.ref.Node == nil {
		return
	}
	if s.group.isChecked(s.ref) {
		return
	}
	s.SetState(func() { s.phase = phaseActive })
	s.group.Change(s.widget().Value)
	if doc := s.ref.Node.Document(); doc != nil {
		doc.Focus(s.ref.Node)
	}
}

func (s *RadioOptionState) handleFocus() {
	s.SetState(func() { s.phase = phaseActive })
}

func (s *RadioOptionState) handleBlur() {
	s.SetState(func() { s.phase = phaseIdle })
}

// apply writes the option's computed state onto its host node: focus flags,
// the roving tab stop, accessibility attributes, and the resolved class.
func (s *RadioOptionState) apply(node *host.Node) {
	w := s.widget()
	checked := s.group.isChecked(s.ref)
	tabStop := s.group.isTabStop(s.ref)
	enabled := !w.Disabled && !s.group.Disabled()

	node.SetFocusable(!w.Disabled)
	node.SetTabStop(tabStop)

	props := semantics.Properties{
		Role:  semantics.RoleRadio,
		Label: w.Label,
		Flags: semantics.HasCheckedState |
			semantics.HasEnabledState |
			semantics.IsInMutuallyExclusiveGroup |
			semantics.IsFocusable,
	}
	if checked {
		props.Flags = props.Flags.Set(semantics.IsChecked)
	}
	if enabled {
		props.Flags = props.Flags.Set(semantics.IsEnabled)
	}
	if tabStop {
		props.Flags = props.Flags.Set(semantics.IsTabStop)
	}

	attrs := host.MergeAttributes(w.Attributes, semantics.Attributes(props))
	if class := s.resolveClass(checked); class != "" {
		attrs["class"] = class
	}
	node.ApplyAttributes(attrs)
}

func (s *RadioOptionState) resolveClass(checked bool) string {
	w := s.widget()
	if w.ClassFunc != nil {
		return w.ClassFunc(OptionContext{Checked: checked, Active: s.Active()})
	}
	return w.Class
}

// optionHost owns the option's host node.
type optionHost struct {
	core.HostBase
	state *RadioOptionState
	child core.Widget
}

func (o optionHost) CreateElement() core.Element { return core.CreateHostElement(o) }

func (o optionHost) CreateNode(ctx core.BuildContext) *host.Node {
	node := host.NewNode(o.state.id)
	o.state.ref.Node = node
	node.SetHandlers(host.Handlers{
		OnClick: o.state.handleClick,
		OnFocus: o.state.handleFocus,
		OnBlur:  o.state.handleBlur,
	})
	o.state.apply(node)
	return node
}

func (o optionHost) UpdateNode(ctx core.BuildContext, node *host.Node) {
	o.state.apply(node)
}

func (o optionHost) ChildWidgets() []core.Widget { return []core.Widget{o.child} }

package widgets

import (
	"reflect"
	"sort"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/host"
	"github.com/go-drift/headless/pkg/ids"
	"github.com/go-drift/headless/pkg/semantics"
)

// RadioGroup is a container managing a set of mutually exclusive
// [RadioOption] children. It is headless: it owns selection mediation,
// keyboard navigation, and accessibility semantics, and leaves presentation
// to the subtree the consumer supplies as Child.
//
// The group never stores the selection itself. Value is a one-way binding
// read from an external source of truth; selecting an option emits a change
// request through OnChanged, and the consumer updates the source.
//
// Example:
//
//	var size any = "small"
//
//	widgets.RadioGroup{
//	    Value:     size,
//	    OnChanged: func(v any) { s.SetState(func() { s.size = v }) },
//	    Label:     "Shirt size",
//	    Child: widgets.Box{Children: []core.Widget{
//	        widgets.RadioOption{Value: "small", Child: widgets.Text{Content: "Small"}},
//	        widgets.RadioOption{Value: "medium", Child: widgets.Text{Content: "Medium"}},
//	        widgets.RadioOption{Value: "large", Child: widgets.Text{Content: "Large"}},
//	    }},
//	}
type RadioGroup struct {
	core.StatefulBase

	// Value is the currently selected value, bound from an external source
	// of truth. Compared to option values by value equality.
	Value any
	// OnChanged is called with the value of the option requesting selection.
	OnChanged func(any)
	// Disabled suppresses all change requests when true.
	Disabled bool
	// Label is the group's accessibility label.
	Label string
	// Attributes are consumer attributes merged onto the group host node.
	// Computed accessibility attributes win for the keys the toolkit owns.
	Attributes map[string]string
	// Child is the group content.
	Child core.Widget
}

func (w RadioGroup) CreateElement() core.Element { return core.CreateStatefulElement(w) }

func (w RadioGroup) CreateState() core.State { return &RadioGroupState{} }

// RadioGroupState is the controller for a [RadioGroup]. It owns the ordered
// option list and mediates every selection change.
//
// Obtain it from within the group's subtree with [RadioGroupOf].
type RadioGroupState struct {
	core.StateBase

	groupID    string
	node       *host.Node
	options    []*OptionRef
	generation int

	labelIDs       []string
	descriptionIDs []string

	releaseKeys      func()
	releaseStructure func()
}

// InitState allocates the group id and wires teardown of the key
// subscription and structure observer.
func (s *RadioGroupState) InitState() {
	s.groupID = ids.NewGroupID()
	s.OnDispose(func() {
		if s.releaseKeys != nil {
			s.releaseKeys()
		}
		if s.releaseStructure != nil {
			s.releaseStructure()
		}
		s.options = nil
		s.node = nil
	})
}

// Build renders the group scope around the host node and consumer content.
func (s *RadioGroupState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return radioGroupScope{
		state:      s,
		generation: s.generation,
		child:      groupHost{state: s, child: w.Child},
	}
}

// DidUpdateWidget rebuilds dependents when the bound value or disabled flag
// changed, so options recompute checked state and tab stops.
func (s *RadioGroupState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(RadioGroup)
	w := s.widget()
	if !valuesEqual(old.Value, w.Value) || old.Disabled != w.Disabled {
		s.generation++
	}
}

func (s *RadioGroupState) widget() RadioGroup {
	if s.Element() == nil {
		return RadioGroup{}
	}
	return s.Element().Widget().(RadioGroup)
}

// Value returns the currently bound selection value.
func (s *RadioGroupState) Value() any { return s.widget().Value }

// Disabled reports whether the group is disabled.
func (s *RadioGroupState) Disabled() bool { return s.widget().Disabled }

// Node returns the group's host node, or nil before mount.
func (s *RadioGroupState) Node() *host.Node { return s.node }

// Change requests a selection change to next. It is a no-op when the group
// is disabled or when next equals the bound value. The controller never
// mutates the bound value itself; the consumer updates the external source
// and the group reads the new value on the next build.
func (s *RadioGroupState) Change(next any) {
	w := s.widget()
	if w.Disabled {
		return
	}
	if valuesEqual(w.Value, next) {
		return
	}
	if w.OnChanged != nil {
		w.OnChanged(next)
	}
}

// RegisterOption adds ref to the option list and re-sorts the list by the
// live structural position of each option's host node. The final order
// matches document order regardless of registration order. Registering the
// same ref twice is a no-op.
func (s *RadioGroupState) RegisterOption(ref *OptionRef) {
	if ref == nil {
		return
	}
	for _, existing := range s.options {
		if existing == ref || existing.ID == ref.ID {
			return
		}
	}
	s.options = append(s.options, ref)
	s.resortOptions()
	s.bumpGeneration()
}

// UnregisterOption removes the option with the given id. Unknown ids are
// silently ignored, so out-of-order teardown is harmless.
func (s *RadioGroupState) UnregisterOption(id string) {
	for i, ref := range s.options {
		if ref.ID == id {
			s.options = append(s.options[:i], s.options[i+1:]...)
			s.bumpGeneration()
			return
		}
	}
}

// Options returns the registered options in document order.
func (s *RadioGroupState) Options() []*OptionRef {
	out := make([]*OptionRef, len(s.options))
	copy(out, s.options)
	return out
}

// resortOptions recomputes list order from the live host tree. Each option
// node under the group is ranked by its scan index; refs whose nodes are
// not yet attached sort after the ranked ones, keeping their relative order.
func (s *RadioGroupState) resortOptions() {
	if s.node == nil {
		return
	}
	rank := make(map[string]int)
	for i, n := range host.QueryPrefix(s.node, ids.OptionPrefix) {
		rank[n.ID()] = i
	}
	sort.SliceStable(s.options, func(i, j int) bool {
		ri, iok := rank[s.options[i].ID]
		rj, jok := rank[s.options[j].ID]
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ri < rj
	})
}

// isChecked reports whether ref's current value equals the bound value.
func (s *RadioGroupState) isChecked(ref *OptionRef) bool {
	if ref == nil || ref.Value == nil {
		return false
	}
	return valuesEqual(s.widget().Value, ref.Value())
}

// hasCheckedOption reports whether any registered option is checked.
func (s *RadioGroupState) hasCheckedOption() bool {
	for _, ref := range s.options {
		if s.isChecked(ref) {
			return true
		}
	}
	return false
}

// isTabStop reports whether ref is the group's single sequential-navigation
// stop: the checked option, or the first option when nothing is checked.
func (s *RadioGroupState) isTabStop(ref *OptionRef) bool {
	if s.isChecked(ref) {
		return true
	}
	if s.hasCheckedOption() {
		return false
	}
	return len(s.options) > 0 && s.options[0] == ref
}

// optionNodes returns the mounted option host nodes in document order.
func (s *RadioGroupState) optionNodes() []*host.Node {
	out := make([]*host.Node, 0, len(s.options))
	for _, ref := range s.options {
		if ref.Node != nil {
			out = append(out, ref.Node)
		}
	}
	return out
}

// refForNode looks up the registered option owning node.
func (s *RadioGroupState) refForNode(node *host.Node) *OptionRef {
	if node == nil {
		return nil
	}
	for _, ref := range s.options {
		if ref.Node == node {
			return ref
		}
	}
	return nil
}

func (s *RadioGroupState) addLabelID(id string) {
	s.labelIDs = append(s.labelIDs, id)
	s.bumpGeneration()
}

func (s *RadioGroupState) removeLabelID(id string) {
	s.labelIDs = removeID(s.labelIDs, id)
	s.bumpGeneration()
}

func (s *RadioGroupState) addDescriptionID(id string) {
	s.descriptionIDs = append(s.descriptionIDs, id)
	s.bumpGeneration()
}

func (s *RadioGroupState) removeDescriptionID(id string) {
	s.descriptionIDs = removeID(s.descriptionIDs, id)
	s.bumpGeneration()
}

func removeID(list []string, id string) []string {
	for i, v := range list {
		if v == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func (s *RadioGroupState) bumpGeneration() {
	s.SetState(func() {
		s.generation++
	})
}

// attachNode wires the group's host node to the document: a key
// subscription scoped to the group subtree, and a structure observer that
// re-ranks options and normalizes roles after subtree changes.
func (s *RadioGroupState) attachNode(doc *host.Document, node *host.Node) {
	s.node = node
	if doc == nil {
		return
	}
	s.releaseKeys = doc.SubscribeKeys(node, s.handleKey)
	s.releaseStructure = doc.ObserveStructure(node, s.onStructureChanged)
}

func (s *RadioGroupState) onStructureChanged() {
	s.resortOptions()
	s.normalize()
}

// groupHost owns the group's host node.
type groupHost struct {
	core.HostBase
	state *RadioGroupState
	child core.Widget
}

func (g groupHost) CreateElement() core.Element { return core.CreateHostElement(g) }

func (g groupHost) CreateNode(ctx core.BuildContext) *host.Node {
	node := host.NewNode(g.state.groupID)
	g.state.attachNode(ctx.Document(), node)
	g.apply(node)
	return node
}

func (g groupHost) UpdateNode(ctx core.BuildContext, node *host.Node) {
	g.apply(node)
}

func (g groupHost) ChildWidgets() []core.Widget { return []core.Widget{g.child} }

func (g groupHost) apply(node *host.Node) {
	w := g.state.widget()
	props := semantics.Properties{
		Role:        semantics.RoleRadioGroup,
		Label:       w.Label,
		LabelledBy:  g.state.labelIDs,
		DescribedBy: g.state.descriptionIDs,
		Flags:       semantics.HasEnabledState,
	}
	if !w.Disabled {
		props.Flags = props.Flags.Set(semantics.IsEnabled)
	}
	node.ApplyAttributes(host.MergeAttributes(w.Attributes, semantics.Attributes(props)))
}

// radioGroupScope exposes the controller to the group's subtree.
type radioGroupScope struct {
	core.InheritedBase
	state      *RadioGroupState
	generation int
	child      core.Widget
}

func (s radioGroupScope) CreateElement() core.Element { return core.CreateInheritedElement(s) }

func (s radioGroupScope) ChildWidget() core.Widget { return s.child }

func (s radioGroupScope) UpdateShouldNotify(oldWidget core.InheritedWidget) bool {
	if old, ok := oldWidget.(radioGroupScope); ok {
		return s.generation != old.generation
	}
	return true
}

var radioGroupScopeType = reflect.TypeOf((*radioGroupScope)(nil)).Elem()

// RadioGroupOf returns the [RadioGroupState] of the nearest ancestor
// [RadioGroup], or nil when there is no group ancestor.
func RadioGroupOf(ctx core.BuildContext) *RadioGroupState {
	if scope, ok := ctx.DependOnInherited(radioGroupScopeType).(radioGroupScope); ok {
		return scope.state
	}
	return nil
}

// valuesEqual compares selection values. Comparable values use ==, anything
// else falls back to a deep comparison. Malformed or absent values compare
// unequal rather than erroring, so the option simply renders unchecked.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Package widgets provides the headless accessible components.
//
// The flagship composite is the radio group: [RadioGroup] owns the ordered
// option list, keyboard navigation, and accessibility semantics, while
// [RadioOption] children carry per-option state and event handlers. Neither
// prescribes presentation; consumers shape the host tree around them with
// [Box] and [Text] and read computed state back through host-node
// attributes and class resolvers.
//
// # Widget Construction
//
// Widgets are plain struct literals:
//
//	widgets.RadioGroup{
//	    Value:     selected,
//	    OnChanged: onSelect,
//	    Child: widgets.Box{Children: []core.Widget{
//	        widgets.GroupLabel{Text: "Shirt size"},
//	        widgets.RadioOption{Value: "small", Child: widgets.Text{Content: "Small"}},
//	        widgets.RadioOption{Value: "large", Child: widgets.Text{Content: "Large"}},
//	    }},
//	}
//
// # Selection Flow
//
// The group never stores the selection. Clicking an option, pressing Space,
// or arrow-navigating emits a change request through RadioGroup.OnChanged;
// the consumer updates their source of truth and the group reads the new
// value on the next build. Change requests are suppressed while the group
// is disabled and when the requested value already equals the bound value.
//
// # Keyboard Model
//
// The group follows the roving-tabindex pattern: exactly one option is
// reachable by sequential Tab navigation (the checked option, or the first
// when nothing is checked), and arrow keys move focus between options with
// wraparound, selecting as they go.
package widgets

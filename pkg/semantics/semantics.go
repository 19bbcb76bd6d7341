// Package semantics describes accessibility semantics for host nodes.
package semantics

import "strings"

// Role defines the semantic role of a host node.
type Role int

const (
	// RoleNone indicates no role has been assigned.
	RoleNone Role = iota
	// RolePresentation marks a node as purely presentational wrapper
	// structure that assistive technology should not announce.
	RolePresentation
	// RoleGroup marks a generic grouping container.
	RoleGroup
	// RoleRadioGroup marks a container of mutually exclusive options.
	RoleRadioGroup
	// RoleRadio marks a single option within a mutually exclusive group.
	RoleRadio
	// RoleButton marks an activatable control.
	RoleButton
	// RoleHeading marks a section heading.
	RoleHeading
	// RoleText marks static text content.
	RoleText
)

func (r Role) String() string {
	switch r {
	case RolePresentation:
		return "presentation"
	case RoleGroup:
		return "group"
	case RoleRadioGroup:
		return "radiogroup"
	case RoleRadio:
		return "radio"
	case RoleButton:
		return "button"
	case RoleHeading:
		return "heading"
	case RoleText:
		return "text"
	default:
		return ""
	}
}

// Flag is a bitset of boolean semantic states.
type Flag uint32

const (
	// HasCheckedState indicates the node exposes a checked/unchecked state.
	HasCheckedState Flag = 1 << iota
	// IsChecked indicates the node is currently checked.
	IsChecked
	// HasEnabledState indicates the node exposes an enabled/disabled state.
	HasEnabledState
	// IsEnabled indicates the node is currently enabled.
	IsEnabled
	// IsInMutuallyExclusiveGroup indicates checking the node unchecks its
	// siblings.
	IsInMutuallyExclusiveGroup
	// IsFocusable indicates the node can receive input focus.
	IsFocusable
	// IsTabStop indicates the node is reachable by sequential keyboard
	// navigation. In a roving-focus composite exactly one member carries it.
	IsTabStop
)

// Has reports whether all bits of other are set.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// Set returns f with the bits of other set.
func (f Flag) Set(other Flag) Flag {
	return f | other
}

// Clear returns f with the bits of other cleared.
func (f Flag) Clear(other Flag) Flag {
	return f &^ other
}

// Properties contains semantic property values for a host node.
type Properties struct {
	// Label is the primary accessibility label.
	Label string

	// LabelledBy lists ids of nodes that label this node.
	LabelledBy []string

	// DescribedBy lists ids of nodes that describe this node.
	DescribedBy []string

	// Role defines the semantic role.
	Role Role

	// Flags contains boolean state flags.
	Flags Flag
}

// IsEmpty reports whether the properties carry any semantic information.
func (p Properties) IsEmpty() bool {
	return p.Label == "" &&
		len(p.LabelledBy) == 0 &&
		len(p.DescribedBy) == 0 &&
		p.Role == RoleNone &&
		p.Flags == 0
}

// Merge combines other into p, with other taking precedence for scalar
// fields and id lists concatenating.
func (p Properties) Merge(other Properties) Properties {
	merged := p
	if other.Label != "" {
		merged.Label = other.Label
	}
	if other.Role != RoleNone {
		merged.Role = other.Role
	}
	merged.Flags = p.Flags.Set(other.Flags)
	merged.LabelledBy = append(append([]string(nil), p.LabelledBy...), other.LabelledBy...)
	merged.DescribedBy = append(append([]string(nil), p.DescribedBy...), other.DescribedBy...)
	return merged
}

// joinIDs joins id references into a space-separated attribute value.
func joinIDs(ids []string) string {
	return strings.Join(ids, " ")
}

package semantics

// Attribute names emitted by Attributes. Consumers merging their own
// attributes should treat these keys as owned by the toolkit.
const (
	AttrRole        = "role"
	AttrChecked     = "aria-checked"
	AttrDisabled    = "aria-disabled"
	AttrLabel       = "aria-label"
	AttrLabelledBy  = "aria-labelledby"
	AttrDescribedBy = "aria-describedby"
	AttrTabIndex    = "tabindex"
)

// Attributes computes the wire-level attribute map for a set of semantic
// properties. Only states the properties actually expose are emitted:
// a node without HasCheckedState gets no checked attribute at all.
func Attributes(p Properties) map[string]string {
	attrs := make(map[string]string)

	if p.Role != RoleNone {
		attrs[AttrRole] = p.Role.String()
	}
	if p.Label != "" {
		attrs[AttrLabel] = p.Label
	}
	if len(p.LabelledBy) > 0 {
		attrs[AttrLabelledBy] = joinIDs(p.LabelledBy)
	}
	if len(p.DescribedBy) > 0 {
		attrs[AttrDescribedBy] = joinIDs(p.DescribedBy)
	}

	if p.Flags.Has(HasCheckedState) {
		if p.Flags.Has(IsChecked) {
			attrs[AttrChecked] = "true"
		} else {
			attrs[AttrChecked] = "false"
		}
	}
	if p.Flags.Has(HasEnabledState) && !p.Flags.Has(IsEnabled) {
		attrs[AttrDisabled] = "true"
	}

	if p.Flags.Has(IsFocusable) {
		if p.Flags.Has(IsTabStop) {
			attrs[AttrTabIndex] = "0"
		} else {
			attrs[AttrTabIndex] = "-1"
		}
	}

	return attrs
}

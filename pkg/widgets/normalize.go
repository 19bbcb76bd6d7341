package widgets

import (
	"strings"

	"github.com/go-drift/headless/pkg/host"
	"github.com/go-drift/headless/pkg/ids"
	"github.com/go-drift/headless/pkg/semantics"
)

// normalize suppresses incidental semantic structure inside the group.
// Wrapper nodes between the group and its options would otherwise be
// announced by assistive technology as meaningful structure.
//
// Option nodes are excluded. A descendant that declares an explicit role is
// left untouched and its subtree is not descended into; a role-less
// descendant is tagged presentation and its children are visited.
func (s *RadioGroupState) normalize() {
	if s.node == nil {
		return
	}
	for _, child := range s.node.Children() {
		normalizeSubtree(child)
	}
}

func normalizeSubtree(n *host.Node) {
	if strings.HasPrefix(n.ID(), ids.OptionPrefix) {
		return
	}
	if n.HasExplicitRole() {
		return
	}
	n.NormalizeRole(semantics.RolePresentation.String())
	for _, child := range n.Children() {
		normalizeSubtree(child)
	}
}
